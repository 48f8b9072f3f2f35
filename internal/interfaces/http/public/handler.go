package public

import (
	"log"

	"github.com/go-chi/chi/v5"
	publicapp "github.com/sngm3741/matjip-map/api/internal/public/application"
)

// Handler wires public HTTP endpoints to application services.
type Handler struct {
	logger         *log.Logger
	placeQueries   publicapp.PlaceQueryService
	reviewQueries  publicapp.ReviewQueryService
	reviewCommands publicapp.ReviewCommandService
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger         *log.Logger
	PlaceQueries   publicapp.PlaceQueryService
	ReviewQueries  publicapp.ReviewQueryService
	ReviewCommands publicapp.ReviewCommandService
}

// NewHandler constructs a public HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:         cfg.Logger,
		placeQueries:   cfg.PlaceQueries,
		reviewQueries:  cfg.ReviewQueries,
		reviewCommands: cfg.ReviewCommands,
	}
}

// Register mounts all public routes onto the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/api/places", func(r chi.Router) {
		r.Get("/nearby", h.placeNearbyHandler())
		r.Get("/search", h.placeSearchHandler())
		r.Get("/{id}", h.placeDetailHandler())
		r.Get("/{id}/reviews", h.reviewListHandler())
		r.Post("/{id}/reviews", h.reviewCreateHandler())
	})
}
