package application

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	admindomain "github.com/sngm3741/matjip-map/api/internal/admin/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePlaceRepo struct {
	created    []admindomain.Place
	lastFilter PlaceFilter
	createErr  error
}

func (f *fakePlaceRepo) Find(_ context.Context, filter PlaceFilter) ([]admindomain.Place, error) {
	f.lastFilter = filter
	return f.created, nil
}

func (f *fakePlaceRepo) Create(_ context.Context, place *admindomain.Place) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, *place)
	return nil
}

func TestPlaceServiceCreate(t *testing.T) {
	repo := &fakePlaceRepo{}
	svc := NewPlaceService(repo)

	place, err := svc.Create(context.Background(), CreatePlaceCommand{
		Name: "광장시장 빈대떡", Address: "서울 종로구 창경궁로 88", Category: "korean>전", Latitude: 37.57, Longitude: 126.99,
	})
	require.NoError(t, err)
	_, parseErr := uuid.Parse(place.ID)
	assert.NoError(t, parseErr)
	assert.False(t, place.CreatedAt.IsZero())
	assert.Equal(t, "한식>전", place.Category.String())
	require.Len(t, repo.created, 1)

	t.Run("invalid input is a validation error", func(t *testing.T) {
		_, err := svc.Create(context.Background(), CreatePlaceCommand{Name: "", Address: "x"})
		var verr *ValidationError
		assert.True(t, errors.As(err, &verr))
		assert.Len(t, repo.created, 1)
	})

	t.Run("duplicate passes through", func(t *testing.T) {
		svc := NewPlaceService(&fakePlaceRepo{createErr: admindomain.ErrDuplicatePlace})
		_, err := svc.Create(context.Background(), CreatePlaceCommand{Name: "a", Address: "b"})
		assert.ErrorIs(t, err, admindomain.ErrDuplicatePlace)
	})
}

func TestPlaceServiceListClampsLimit(t *testing.T) {
	repo := &fakePlaceRepo{}
	svc := NewPlaceService(repo)

	_, err := svc.List(context.Background(), PlaceFilter{Keyword: "  국밥 ", Limit: 500})
	require.NoError(t, err)
	assert.Equal(t, "국밥", repo.lastFilter.Keyword)
	assert.Equal(t, maxListLimit, repo.lastFilter.Limit)

	_, _ = svc.List(context.Background(), PlaceFilter{})
	assert.Equal(t, defaultListLimit, repo.lastFilter.Limit)
}
