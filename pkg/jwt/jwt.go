// Package jwt signs and checks the session tokens handed out to dapps.
package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

var (
	TimeNow = time.Now

	ErrTokenNotValid = errors.New("token is not valid")
	ErrTokenExpired  = errors.New("token expired")
)

const (
	ClaimOrigin    = "origin"
	ClaimSessionID = "sid"
)

type TokenInfo struct {
	Subject string
	Origin  string
	TTL     time.Duration
}

type JWTService struct {
	secret []byte
	method jwt.SigningMethod
}

func NewJWTService(secret []byte) *JWTService {
	return &JWTService{
		secret: secret,
		method: jwt.SigningMethodHS512,
	}
}

// Generate builds an unsigned token valid for data.TTL from now. Every token
// gets a fresh session id.
func (s *JWTService) Generate(data TokenInfo) *jwt.Token {
	issuedAt := TimeNow()
	return jwt.NewWithClaims(s.method, jwt.MapClaims{
		"sub":          data.Subject,
		"iat":          issuedAt.Unix(),
		"exp":          issuedAt.Add(data.TTL).Unix(),
		ClaimOrigin:    data.Origin,
		ClaimSessionID: uuid.NewString(),
	})
}

func (s *JWTService) Sign(token *jwt.Token) (string, error) {
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Validate checks the signature and expiry of token and returns its claims.
func (s *JWTService) Validate(token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{
		ValidMethods:         []string{s.method.Alg()},
		SkipClaimsValidation: true,
	}
	_, err := parser.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse session token: %w: %w", err, ErrTokenNotValid)
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, fmt.Errorf("missing exp claim: %w", ErrTokenNotValid)
	}
	if expiresAt := time.Unix(int64(exp), 0); !TimeNow().Before(expiresAt) {
		return nil, fmt.Errorf("token expired at %v: %w", expiresAt, ErrTokenExpired)
	}

	return claims, nil
}
