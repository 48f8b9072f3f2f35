package application

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	admindomain "github.com/sngm3741/matjip-map/api/internal/admin/domain"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// placeService implements PlaceService.
type placeService struct {
	repo PlaceRepository
	now  func() time.Time
}

func NewPlaceService(repo PlaceRepository) PlaceService {
	return &placeService{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (s *placeService) List(ctx context.Context, filter PlaceFilter) ([]admindomain.Place, error) {
	filter.Keyword = strings.TrimSpace(filter.Keyword)
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}
	return s.repo.Find(ctx, filter)
}

// Create validates cmd and stores a new place with a fresh UUID.
func (s *placeService) Create(ctx context.Context, cmd CreatePlaceCommand) (*admindomain.Place, error) {
	place, err := admindomain.NewPlace(cmd.Name, cmd.Address, cmd.Category, cmd.Latitude, cmd.Longitude)
	if err != nil {
		return nil, &ValidationError{Err: err}
	}
	place.ID = uuid.NewString()
	place.CreatedAt = s.now()
	if err := s.repo.Create(ctx, place); err != nil {
		return nil, err
	}
	return place, nil
}

// ValidationError wraps value object failures so handlers can answer 400.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
