package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

type LoggingMiddleware struct {
	logs *zap.SugaredLogger
}

func NewLoggingMiddleware(logger *zap.SugaredLogger) *LoggingMiddleware {
	return &LoggingMiddleware{
		logs: logger,
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (m *LoggingMiddleware) Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		m.logs.Infow("request served",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
			"request_id", GetRequestID(r.Context()),
		)
	})
}
