package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	tokenIssuer "starksnap/pkg/jwt"
)

var ErrInvalidSession = errors.New("invalid session")

const sessionTTL = 24 * time.Hour

// SessionService issues and checks the tokens dapps use to reach the wallet.
type SessionService struct {
	logs      *zap.SugaredLogger
	jwtIssuer JWTIssuer
}

func NewSessionService(logger *zap.SugaredLogger, jwt JWTIssuer) *SessionService {
	return &SessionService{
		logs:      logger,
		jwtIssuer: jwt,
	}
}

// Connect issues a session token bound to the dapp origin.
func (s *SessionService) Connect(_ context.Context, msg ConnectMessage) (string, error) {
	tokenInfo := tokenIssuer.TokenInfo{
		Subject: msg.Origin,
		Origin:  msg.Origin,
		TTL:     sessionTTL,
	}
	token := s.jwtIssuer.Generate(tokenInfo)
	signed, err := s.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	s.logs.Infow("session issued", "origin", msg.Origin)
	return signed, nil
}

// Validate returns the session a token was issued for.
func (s *SessionService) Validate(token string) (Session, error) {
	claims, err := s.jwtIssuer.Validate(token)
	if err != nil {
		return Session{}, fmt.Errorf("validate jwt token: %w", err)
	}

	origin, ok := claims["sub"].(string)
	if !ok || origin == "" {
		return Session{}, ErrInvalidSession
	}
	return Session{Origin: origin}, nil
}
