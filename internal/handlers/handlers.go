package handlers

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"Sekkrit/internal/config"
	"Sekkrit/internal/middleware"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithLogging)
	r.Use(middleware.WithGzip)
	r.Use(middleware.WithAuth(config.AuthSecret))

	detailHandler := NewDetailHandler(logger)

	r.Get("/api/ping", detailHandler.Ping)
	r.Post("/api/details/inspect", detailHandler.Inspect)

	return &Handler{Router: r}
}
