package application

import (
	"context"
	"errors"
	"time"

	"github.com/sngm3741/matjip-map/api/internal/geo"
	"github.com/sngm3741/matjip-map/api/internal/public/domain"
)

// ErrNotFound is returned by repositories when the requested row does not exist.
var ErrNotFound = errors.New("not found")

// PlaceRepository abstracts read access to places.
// PlaceRepository は公開 API から場所を読み取るためのポート。
type PlaceRepository interface {
	FindWithinBounds(ctx context.Context, box geo.BoundingBox, limit int) ([]domain.Place, error)
	FindByID(ctx context.Context, id string) (*domain.Place, error)
	CountByName(ctx context.Context, keyword string) (int, error)
	FindByName(ctx context.Context, keyword string, paging Paging) ([]domain.Place, error)
}

// ReviewRepository handles review reads/writes.
type ReviewRepository interface {
	RatingsByPlace(ctx context.Context, placeID string) ([]int, error)
	CountByPlace(ctx context.Context, placeID string) (int, error)
	FindByPlace(ctx context.Context, placeID string, paging Paging) ([]domain.Review, error)
	Create(ctx context.Context, review *domain.Review) error
}

// PasswordHasher turns a plaintext review password into a one-way hash.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// SearchProvider is an external keyword search backend.
type SearchProvider interface {
	Search(ctx context.Context, query string, paging Paging) (*domain.SearchPage, error)
}

// ReviewNotifier receives newly created reviews. Implementations must not block the caller.
type ReviewNotifier interface {
	NotifyReview(ctx context.Context, place *domain.Place, review *domain.Review)
}

// Paging controls pagination. Page is 1-based.
type Paging struct {
	Page  int
	Limit int
}

// Offset returns the number of rows to skip.
func (p Paging) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// HasMore reports whether rows remain after this page.
func (p Paging) HasMore(total int) bool {
	return total > p.Offset()+p.Limit
}

// NearbyQuery is a center point plus a radius in meters.
type NearbyQuery struct {
	Lat    float64
	Lng    float64
	Radius float64
}

// SearchQuery is a keyword plus pagination.
type SearchQuery struct {
	Q string
	Paging
}

// PlaceQueryService describes place read use-cases.
// PlaceQueryService は場所に関する参照ユースケース。
type PlaceQueryService interface {
	Nearby(ctx context.Context, q NearbyQuery) ([]domain.Place, error)
	Detail(ctx context.Context, id string) (*domain.PlaceDetail, error)
	Search(ctx context.Context, q SearchQuery) (*domain.SearchPage, error)
}

// ReviewQueryService describes review read use-cases.
type ReviewQueryService interface {
	List(ctx context.Context, placeID string, paging Paging) (*domain.ReviewPage, error)
}

// ReviewCommandService handles review writes.
type ReviewCommandService interface {
	Create(ctx context.Context, placeID string, cmd CreateReviewCommand) (*domain.Review, error)
}

// CreateReviewCommand captures already validated review input.
type CreateReviewCommand struct {
	AuthorName string
	Rating     int
	Content    string
	Password   string
}

// Clock returns the current time. Tests replace it.
type Clock func() time.Time
