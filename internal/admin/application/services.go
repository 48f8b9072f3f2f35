package application

import (
	"context"

	admindomain "github.com/sngm3741/matjip-map/api/internal/admin/domain"
)

// PlaceRepository exposes admin operations on places.
type PlaceRepository interface {
	Find(ctx context.Context, filter PlaceFilter) ([]admindomain.Place, error)
	Create(ctx context.Context, place *admindomain.Place) error
}

// PlaceFilter expresses admin search criteria.
type PlaceFilter struct {
	Keyword string
	Limit   int
}

// PlaceService describes admin place use-cases.
type PlaceService interface {
	List(ctx context.Context, filter PlaceFilter) ([]admindomain.Place, error)
	Create(ctx context.Context, cmd CreatePlaceCommand) (*admindomain.Place, error)
}

// CreatePlaceCommand contains inputs for registering a place.
type CreatePlaceCommand struct {
	Name      string
	Address   string
	Category  string
	Latitude  float64
	Longitude float64
}
