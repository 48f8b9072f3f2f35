package admin

import (
	"log"

	"github.com/go-chi/chi/v5"
	adminapp "github.com/sngm3741/matjip-map/api/internal/admin/application"
)

// Handler wires admin HTTP endpoints to application services.
type Handler struct {
	logger       *log.Logger
	placeService adminapp.PlaceService
}

// Config provides dependencies for Handler.
type Config struct {
	Logger       *log.Logger
	PlaceService adminapp.PlaceService
}

// NewHandler constructs an admin HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:       cfg.Logger,
		placeService: cfg.PlaceService,
	}
}

// Register mounts admin routes onto router. Callers apply authentication.
func (h *Handler) Register(r chi.Router) {
	r.Get("/places", h.placeSearchHandler())
	r.Post("/places", h.placeCreateHandler())
}
