// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/coolerselect/internal/logging"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer is what the service needs from *http.Server.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// HTTPServerService runs the API listener under the api-layer supervisor.
// When the tree stops, in-flight selections and imports get drain time to
// finish before the listener is torn down.
//
//	srv := &http.Server{Addr: ":8080", Handler: router.SetupChi()}
//	tree.Add(supervisor.LayerAPI, services.NewHTTPServerService(srv, 10*time.Second))
type HTTPServerService struct {
	server          HTTPServer
	shutdownTimeout time.Duration
}

// NewHTTPServerService wraps server. shutdownTimeout <= 0 means 10s.
func NewHTTPServerService(server HTTPServer, shutdownTimeout time.Duration) *HTTPServerService {
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}
	return &HTTPServerService{server: server, shutdownTimeout: shutdownTimeout}
}

// listen runs ListenAndServe and delivers its result, with the normal
// post-Shutdown http.ErrServerClosed reported as nil.
func (h *HTTPServerService) listen() <-chan error {
	done := make(chan error, 1)
	go func() {
		err := h.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		done <- err
	}()
	return done
}

// Serve implements suture.Service. A listener failure (port in use) is
// returned so the supervisor retries with backoff.
func (h *HTTPServerService) Serve(ctx context.Context) error {
	done := h.listen()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("http listener: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	// ctx is already done, so the drain gets its own deadline.
	drainCtx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
	defer cancel()

	start := time.Now()
	if err := h.server.Shutdown(drainCtx); err != nil {
		return fmt.Errorf("http drain: %w", err)
	}
	<-done
	logging.Debug().Dur("took", time.Since(start)).Msg("HTTP server drained")
	return ctx.Err()
}

func (h *HTTPServerService) String() string {
	return "http-server"
}
