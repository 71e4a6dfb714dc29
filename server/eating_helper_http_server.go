package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const SHUTDOWN_TIMEOUT = 5 * time.Second

type EatingHelperHttpServer struct {
	router    *Router
	muxRouter *mux.Router
	addr      string
	logger    *zap.Logger
}

func NewEatingHelperHttpServer(router *Router, muxRouter *mux.Router, addr string, logger *zap.Logger) *EatingHelperHttpServer {
	return &EatingHelperHttpServer{
		router:    router,
		muxRouter: muxRouter,
		addr:      addr,
		logger:    logger.Named("http_server"),
	}
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *EatingHelperHttpServer) Start(ctx context.Context) error {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.muxRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting server", zap.String("addr", s.addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down the server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), SHUTDOWN_TIMEOUT)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Info("server exiting")
	return nil
}
