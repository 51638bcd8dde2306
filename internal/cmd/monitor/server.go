package monitor

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// httpServer runs an http.Server until the context is canceled.
type httpServer struct {
	server *http.Server
}

func newHTTPServer(addr string, handler http.Handler) *httpServer {
	return &httpServer{server: &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}}
}

func (s *httpServer) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(shutdownCtx)
}
