package core

import (
	"context"

	"github.com/golang-jwt/jwt"

	"starksnap/internal/filter"
	"starksnap/internal/starknet"
	"starksnap/internal/state"
	tokenIssuer "starksnap/pkg/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name DataClient . DataClient
type DataClient interface {
	GetTransactionsSince(ctx context.Context, address string, cutoff int64) ([]*state.Transaction, error)
}

//counterfeiter:generate -o fake -fake-name StatusClient . StatusClient
type StatusClient interface {
	GetTransactionStatus(ctx context.Context, hash string) (*starknet.TransactionStatus, error)
	FetchStatuses(ctx context.Context, hashes []string) ([]*starknet.TransactionStatus, error)
}

//counterfeiter:generate -o fake -fake-name TransactionRepository . TransactionRepository
type TransactionRepository interface {
	FindTransactions(ctx context.Context, filters ...filter.Filter[*state.Transaction]) ([]*state.Transaction, error)
	UpdateTransaction(ctx context.Context, txn *state.Transaction) error
	RemoveTransactions(ctx context.Context, filters ...filter.Filter[*state.Transaction]) error
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}
