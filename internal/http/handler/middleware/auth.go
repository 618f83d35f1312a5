package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"starksnap/internal/core"
)

const SessionKey ctxKey = "session"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name SessionValidator . SessionValidator
type SessionValidator interface {
	Validate(token string) (core.Session, error)
}

type AuthMiddleware struct {
	logs      *zap.SugaredLogger
	validator SessionValidator
}

func NewAuthMiddleware(logger *zap.SugaredLogger, validator SessionValidator) *AuthMiddleware {
	return &AuthMiddleware{
		logs:      logger,
		validator: validator,
	}
}

// Authenticate requires a bearer session token and stores the session in
// the request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" {
			m.unauthorized(w, r, "missing bearer token")
			return
		}

		session, err := m.validator.Validate(token)
		if err != nil {
			m.logs.Warnw("session rejected", "error", err, "request_id", GetRequestID(r.Context()))
			m.unauthorized(w, r, "invalid session token")
			return
		}

		ctx := context.WithValue(r.Context(), SessionKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *AuthMiddleware) unauthorized(w http.ResponseWriter, r *http.Request, reason string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"message": "Authentication failed",
		"error":   reason,
	}); err != nil {
		m.logs.Errorw("failed to encode response", "error", err, "request_id", GetRequestID(r.Context()))
	}
}

// GetSession returns the session stored by Authenticate.
func GetSession(ctx context.Context) (core.Session, bool) {
	session, ok := ctx.Value(SessionKey).(core.Session)
	return session, ok
}
