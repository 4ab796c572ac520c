package server

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Health is a plain-text liveness responder, independent of the bot
// transport. Hosting platforms poll it to decide the process is alive.
type Health struct {
	srv    *http.Server
	logger *zap.Logger
}

// NewHealth creates a health server listening on the given port
func NewHealth(port string, logger *zap.Logger) *Health {
	h := &Health{logger: logger}
	h.srv = &http.Server{
		Addr:              ":" + port,
		Handler:           h.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return h
}

// Handler returns the liveness handler
func (h *Health) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	return mux
}

// Start blocks serving liveness requests until Shutdown
func (h *Health) Start() {
	h.logger.Info("Starting health check server", zap.String("addr", h.srv.Addr))
	if err := h.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		h.logger.Error("Health check server failed", zap.Error(err))
	}
}

// Shutdown stops the server gracefully
func (h *Health) Shutdown(ctx context.Context) {
	if err := h.srv.Shutdown(ctx); err != nil {
		h.logger.Warn("Health check server shutdown failed", zap.Error(err))
	}
}
