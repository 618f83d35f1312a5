package state

import (
	"context"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Store persists the whole state document. It is atomic at document
// granularity only.
//
//counterfeiter:generate -o fake -fake-name Store . Store
type Store interface {
	Get(ctx context.Context) (*SnapState, error)
	Set(ctx context.Context, state *SnapState) error
}
