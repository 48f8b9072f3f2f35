package application

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strings"

	"github.com/sngm3741/matjip-map/api/internal/geo"
	"github.com/sngm3741/matjip-map/api/internal/public/domain"
)

// placeQueryService is the concrete implementation of PlaceQueryService.
type placeQueryService struct {
	places   PlaceRepository
	reviews  ReviewRepository
	provider SearchProvider
}

// NewPlaceQueryService creates a place query service. A nil provider switches
// keyword search to the local place table.
func NewPlaceQueryService(places PlaceRepository, reviews ReviewRepository, provider SearchProvider) PlaceQueryService {
	return &placeQueryService{places: places, reviews: reviews, provider: provider}
}

func (s *placeQueryService) Nearby(ctx context.Context, q NearbyQuery) ([]domain.Place, error) {
	if !domain.ValidCoordinates(q.Lat, q.Lng) || q.Radius <= 0 {
		return nil, domain.NewError(http.StatusBadRequest, domain.CodeInvalidLocation, "위치 정보가 올바르지 않습니다.", nil)
	}
	box := geo.NewBoundingBox(q.Lat, q.Lng, q.Radius)
	places, err := s.places.FindWithinBounds(ctx, box, geo.NearbyLimit)
	if err != nil {
		return nil, domain.NewError(http.StatusInternalServerError, domain.CodeFetchFailed, "주변 장소 조회에 실패했습니다.", err)
	}
	return places, nil
}

func (s *placeQueryService) Detail(ctx context.Context, id string) (*domain.PlaceDetail, error) {
	place, err := s.places.FindByID(ctx, id)
	if err != nil || place == nil {
		return nil, domain.PlaceNotFound(err)
	}

	ratings, err := s.reviews.RatingsByPlace(ctx, id)
	if err != nil {
		return nil, domain.NewError(http.StatusInternalServerError, domain.CodeFetchFailed, "장소 정보 조회에 실패했습니다.", err)
	}

	return &domain.PlaceDetail{
		Place:         *place,
		AverageRating: AverageRating(ratings),
		ReviewCount:   len(ratings),
	}, nil
}

func (s *placeQueryService) Search(ctx context.Context, q SearchQuery) (*domain.SearchPage, error) {
	keyword := strings.TrimSpace(q.Q)
	if keyword == "" {
		return nil, domain.ValidationError("검색어가 필요합니다.")
	}
	if s.provider != nil {
		return s.searchProvider(ctx, keyword, q.Paging)
	}
	return s.searchLocal(ctx, keyword, q.Paging)
}

func (s *placeQueryService) searchProvider(ctx context.Context, keyword string, paging Paging) (*domain.SearchPage, error) {
	page, err := s.provider.Search(ctx, keyword, paging)
	if err != nil {
		var derr *domain.Error
		if errors.As(err, &derr) {
			return nil, derr
		}
		return nil, domain.NewError(http.StatusInternalServerError, domain.CodeSearchFailed, "검색 중 오류가 발생했습니다.", err)
	}
	page.Source = domain.SourceNaver
	for i := range page.Places {
		page.Places[i].Source = domain.SourceNaver
	}
	return page, nil
}

func (s *placeQueryService) searchLocal(ctx context.Context, keyword string, paging Paging) (*domain.SearchPage, error) {
	total, err := s.places.CountByName(ctx, keyword)
	if err != nil {
		return nil, domain.NewError(http.StatusInternalServerError, domain.CodeSearchFailed, "검색 중 오류가 발생했습니다.", err)
	}
	places, err := s.places.FindByName(ctx, keyword, paging)
	if err != nil {
		return nil, domain.NewError(http.StatusInternalServerError, domain.CodeSearchFailed, "검색 중 오류가 발생했습니다.", err)
	}

	items := make([]domain.SearchPlace, 0, len(places))
	for _, p := range places {
		items = append(items, domain.SearchPlace{Place: p, Source: domain.SourceLocal})
	}
	return &domain.SearchPage{
		Places:  items,
		Total:   total,
		HasMore: paging.HasMore(total),
		Source:  domain.SourceLocal,
	}, nil
}

// AverageRating returns the mean rounded to one decimal, or 0 for no ratings.
func AverageRating(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return math.Round(float64(sum)/float64(len(ratings))*10) / 10
}
