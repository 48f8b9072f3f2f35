package mongo

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	adminapp "github.com/sngm3741/matjip-map/api/internal/admin/application"
	admindomain "github.com/sngm3741/matjip-map/api/internal/admin/domain"
	"github.com/sngm3741/matjip-map/api/internal/geo"
	"github.com/sngm3741/matjip-map/api/internal/public/application"
	"github.com/sngm3741/matjip-map/api/internal/public/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPlace(t *testing.T, repo *AdminPlaceRepository, id, name string, lat, lng float64) {
	t.Helper()
	place, err := admindomain.NewPlace(name, "서울 "+name, "한식", lat, lng)
	require.NoError(t, err)
	place.ID = id
	place.CreatedAt = time.Now().UTC()
	require.NoError(t, repo.Create(context.Background(), place))
}

func TestPlaceRepository(t *testing.T) {
	db := initDB(t)
	ctx := context.Background()
	admin := NewAdminPlaceRepository(db, "places")
	repo := NewPlaceRepository(db, "places")

	seedPlace(t, admin, "p-1", "을지로 골뱅이", 37.5665, 126.978)
	seedPlace(t, admin, "p-2", "명동 칼국수", 37.5636, 126.9850)
	seedPlace(t, admin, "p-3", "부산 돼지국밥", 35.1796, 129.0756)

	t.Run("within bounds", func(t *testing.T) {
		places, err := repo.FindWithinBounds(ctx, geo.NewBoundingBox(37.5665, 126.978, 1000), geo.NearbyLimit)
		require.NoError(t, err)
		ids := []string{}
		for _, p := range places {
			ids = append(ids, p.ID)
		}
		assert.ElementsMatch(t, []string{"p-1", "p-2"}, ids)

		limited, err := repo.FindWithinBounds(ctx, geo.NewBoundingBox(37.5665, 126.978, 1000), 1)
		require.NoError(t, err)
		assert.Len(t, limited, 1)
	})

	t.Run("find by id", func(t *testing.T) {
		place, err := repo.FindByID(ctx, "p-3")
		require.NoError(t, err)
		assert.Equal(t, "부산 돼지국밥", place.Name)

		_, err = repo.FindByID(ctx, "missing")
		assert.ErrorIs(t, err, application.ErrNotFound)
	})

	t.Run("name search is case insensitive and escaped", func(t *testing.T) {
		total, err := repo.CountByName(ctx, "국")
		require.NoError(t, err)
		assert.Equal(t, 2, total)

		page, err := repo.FindByName(ctx, "국", application.Paging{Page: 1, Limit: 1})
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.Equal(t, "명동 칼국수", page[0].Name)

		total, err = repo.CountByName(ctx, ".*")
		require.NoError(t, err)
		assert.Zero(t, total)
	})

	t.Run("duplicate admin create", func(t *testing.T) {
		place, err := admindomain.NewPlace("을지로 골뱅이", "서울 을지로 골뱅이", "", 37.5, 127)
		require.NoError(t, err)
		place.ID = "p-dup"
		assert.ErrorIs(t, admin.Create(ctx, place), admindomain.ErrDuplicatePlace)
	})

	t.Run("admin list", func(t *testing.T) {
		places, err := admin.Find(ctx, adminapp.PlaceFilter{Keyword: "부산", Limit: 10})
		require.NoError(t, err)
		require.Len(t, places, 1)
		assert.Equal(t, "p-3", places[0].ID)
	})
}

func TestReviewRepository(t *testing.T) {
	db := initDB(t)
	ctx := context.Background()
	repo := NewReviewRepository(db, "reviews")

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 15; i++ {
		require.NoError(t, repo.Create(ctx, &domain.Review{
			ID:           fmt.Sprintf("r-%02d", i),
			PlaceID:      "p-1",
			AuthorName:   "a@b.co",
			Rating:       i%5 + 1,
			Content:      "맛있어요 정말 맛있어요",
			PasswordHash: "hash",
			CreatedAt:    base.Add(time.Duration(i) * time.Minute),
		}))
	}

	total, err := repo.CountByPlace(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, 15, total)

	first, err := repo.FindByPlace(ctx, "p-1", application.Paging{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, first, 10)
	assert.Equal(t, "r-14", first[0].ID)

	second, err := repo.FindByPlace(ctx, "p-1", application.Paging{Page: 2, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, second, 5)
	assert.Equal(t, "r-00", second[4].ID)

	ratings, err := repo.RatingsByPlace(ctx, "p-1")
	require.NoError(t, err)
	assert.Len(t, ratings, 15)

	none, err := repo.RatingsByPlace(ctx, "p-2")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestAdminFindReturnsExternallyIngestedDocuments(t *testing.T) {
	db := initDB(t)
	ctx := context.Background()
	admin := NewAdminPlaceRepository(db, "places")

	longCategory := "한식>" + strings.Repeat("국밥", 40)
	_, err := db.Collection("places").InsertOne(ctx, PlaceDocument{
		ID:        "ext-1",
		Name:      "외부 수집 장소",
		Address:   "서울 중구",
		Category:  longCategory,
		Latitude:  37.56,
		Longitude: 126.97,
		CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)

	places, err := admin.Find(ctx, adminapp.PlaceFilter{Limit: 10})
	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, longCategory, places[0].Category.String())
}
