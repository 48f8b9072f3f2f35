package application

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/sngm3741/matjip-map/api/internal/geo"
	"github.com/sngm3741/matjip-map/api/internal/public/domain"
)

var errStore = errors.New("store down")

type memoryPlaces struct {
	places  []domain.Place
	err     error
	findErr error
	lastBox geo.BoundingBox
	limit   int
}

func (m *memoryPlaces) FindWithinBounds(_ context.Context, box geo.BoundingBox, limit int) ([]domain.Place, error) {
	m.lastBox, m.limit = box, limit
	if m.err != nil {
		return nil, m.err
	}
	result := []domain.Place{}
	for _, p := range m.places {
		if box.Contains(p.Latitude, p.Longitude) && len(result) < limit {
			result = append(result, p)
		}
	}
	return result, nil
}

func (m *memoryPlaces) FindByID(_ context.Context, id string) (*domain.Place, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	for _, p := range m.places {
		if p.ID == id {
			place := p
			return &place, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memoryPlaces) matching(keyword string) []domain.Place {
	result := []domain.Place{}
	for _, p := range m.places {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(keyword)) {
			result = append(result, p)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

func (m *memoryPlaces) CountByName(_ context.Context, keyword string) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return len(m.matching(keyword)), nil
}

func (m *memoryPlaces) FindByName(_ context.Context, keyword string, paging Paging) ([]domain.Place, error) {
	if m.err != nil {
		return nil, m.err
	}
	return window(m.matching(keyword), paging), nil
}

type memoryReviews struct {
	mu        sync.Mutex
	reviews   []domain.Review
	err       error
	createErr error
}

func (m *memoryReviews) forPlace(placeID string) []domain.Review {
	result := []domain.Review{}
	for _, r := range m.reviews {
		if r.PlaceID == placeID {
			result = append(result, r)
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result
}

func (m *memoryReviews) RatingsByPlace(_ context.Context, placeID string) ([]int, error) {
	if m.err != nil {
		return nil, m.err
	}
	ratings := []int{}
	for _, r := range m.forPlace(placeID) {
		ratings = append(ratings, r.Rating)
	}
	return ratings, nil
}

func (m *memoryReviews) CountByPlace(_ context.Context, placeID string) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return len(m.forPlace(placeID)), nil
}

func (m *memoryReviews) FindByPlace(_ context.Context, placeID string, paging Paging) ([]domain.Review, error) {
	if m.err != nil {
		return nil, m.err
	}
	return window(m.forPlace(placeID), paging), nil
}

func (m *memoryReviews) Create(_ context.Context, review *domain.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	m.reviews = append(m.reviews, *review)
	return nil
}

func window[T any](items []T, paging Paging) []T {
	start := paging.Offset()
	if start >= len(items) {
		return []T{}
	}
	end := start + paging.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

type stubHasher struct {
	err error
}

func (s stubHasher) Hash(password string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "hashed:" + password, nil
}

type stubProvider struct {
	page  *domain.SearchPage
	err   error
	calls []Paging
}

func (s *stubProvider) Search(_ context.Context, _ string, paging Paging) (*domain.SearchPage, error) {
	s.calls = append(s.calls, paging)
	return s.page, s.err
}

type recordingNotifier struct {
	reviews []domain.Review
}

func (r *recordingNotifier) NotifyReview(_ context.Context, _ *domain.Place, review *domain.Review) {
	r.reviews = append(r.reviews, *review)
}
