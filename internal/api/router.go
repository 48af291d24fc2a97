package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/senmay/Geo-Asystent-AI/internal/api/handlers/http/chat"
	"github.com/senmay/Geo-Asystent-AI/internal/api/handlers/http/layers"
	"github.com/senmay/Geo-Asystent-AI/internal/api/handlers/http/system"
	"github.com/senmay/Geo-Asystent-AI/internal/config"
	"github.com/senmay/Geo-Asystent-AI/internal/middleware"
	"github.com/senmay/Geo-Asystent-AI/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service) *Server {
	chatHandler := chat.NewHandler(logger, svc.Dispatcher)
	layersHandler := layers.NewHandler(logger, svc.GIS)
	systemHandler := system.NewHandler(logger)

	r := InitRouter(chatHandler, layersHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(chatHandler *chat.Handler, layersHandler *layers.Handler, systemHandler *system.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		// CHAT: each query costs an LLM round trip, so the limit is tight
		api.Route("/chat", func(cr chi.Router) {
			cr.Use(middleware.Limit(2, 5, 10*time.Minute, logger))
			cr.Post("/", chatHandler.Chat)
		})

		// LAYERS
		api.Route("/layers", func(lr chi.Router) {
			lr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))

			lr.Get("/", layersHandler.LayerList)

			lr.Route("/{layerName}", func(rr chi.Router) {
				rr.Get("/", layersHandler.LayerGet)
				rr.Get("/info", layersHandler.LayerInfo)
				rr.Get("/statistics", layersHandler.LayerStatistics)
				rr.Get("/validate", layersHandler.LayerValidate)
			})
		})

		// SYSTEM
		api.Get("/health", systemHandler.SystemHealth)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("🚀 Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("🛑 Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
