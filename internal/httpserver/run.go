package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"
)

const defaultShutdownTimeout = 15 * time.Second

var errPanic = errors.New("panic recovered")

// Run serves until ctx is cancelled, then drains in-flight requests.
func (srv *HTTPServer) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", ":"+strconv.Itoa(srv.port))
	if err != nil {
		return fmt.Errorf("listen on port %d: %w", srv.port, err)
	}
	return srv.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (srv *HTTPServer) Serve(ctx context.Context, ln net.Listener) error {
	httpSrv := &http.Server{
		Handler:           srv.gin,
		ReadTimeout:       srv.readTimeout,
		ReadHeaderTimeout: srv.readTimeout,
		WriteTimeout:      srv.writeTimeout,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	errCh := make(chan error, 1)
	go func() {
		srv.l.Infof(ctx, "HTTP server listening on %s", ln.Addr())
		errCh <- httpSrv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	srv.l.Info(ctx, "Shutting down HTTP server...")

	timeout := srv.shutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	if srv.tracing != nil {
		if err := srv.tracing.Shutdown(shutdownCtx); err != nil {
			srv.l.Warnf(ctx, "tracing shutdown: %v", err)
		}
	}

	return nil
}
