package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/nprnops/routing-reconciler/internal/infrastructure/config"
	"github.com/nprnops/routing-reconciler/internal/service/reconcile"
)

// Server wraps the HTTP transport around the reconciliation service.
type Server struct {
	httpServer *http.Server
	cfg        *config.ServerConfig
	logger     *zap.Logger
}

// NewServer creates the HTTP server with the full route table.
func NewServer(cfg *config.ServerConfig, svc reconcile.Service, logger *zap.Logger) *Server {
	h := NewHandler(svc, logger)

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(RequestLogger(logger))

	r.Get("/", serveIndex)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	r.Group(func(r chi.Router) {
		r.Use(APITokenAuth(cfg.APIToken))
		r.Post("/fix/enp", h.FixENP)
		r.Post("/fix/nprn", h.FixNPRN)
		r.Post("/fix/disp", h.FixDisp)
	})

	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Handler:      r,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		cfg:    cfg,
		logger: logger,
	}
}

func serveIndex(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, "static/index.html")
}

// Start serves until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("http server listening", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests within the configured timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
