package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

type HTTPServer struct {
	logs   *zap.SugaredLogger
	server *http.Server
}

func NewHTTP(logger *zap.SugaredLogger, handler http.Handler, port string) *HTTPServer {
	return &HTTPServer{
		logs: logger,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%s", port),
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}
}

// Run starts serving in the background. The returned channel receives the
// error that stopped the server.
func (s *HTTPServer) Run() <-chan error {
	errChan := make(chan error, 1)
	go func() {
		s.logs.Infow("http server started", "address", s.server.Addr)
		errChan <- s.server.ListenAndServe()
	}()
	return errChan
}

func (s *HTTPServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	s.logs.Infow("http server stopped")
	return nil
}
