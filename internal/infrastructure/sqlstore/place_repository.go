package sqlstore

import (
	"context"
	"errors"
	"strings"

	adminapp "github.com/sngm3741/matjip-map/api/internal/admin/application"
	admindomain "github.com/sngm3741/matjip-map/api/internal/admin/domain"
	"github.com/sngm3741/matjip-map/api/internal/geo"
	"github.com/sngm3741/matjip-map/api/internal/public/application"
	"github.com/sngm3741/matjip-map/api/internal/public/domain"
	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// PlaceRepository implements application.PlaceRepository on gorm.
type PlaceRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) *PlaceRepository {
	return &PlaceRepository{db: db}
}

func (r *PlaceRepository) FindWithinBounds(ctx context.Context, box geo.BoundingBox, limit int) ([]domain.Place, error) {
	var rows []placeRow
	err := r.db.WithContext(ctx).
		Where("latitude BETWEEN ? AND ?", box.MinLat, box.MaxLat).
		Where("longitude BETWEEN ? AND ?", box.MinLng, box.MaxLng).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return mapPlaceRows(rows), nil
}

func (r *PlaceRepository) FindByID(ctx context.Context, id string) (*domain.Place, error) {
	var row placeRow
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, application.ErrNotFound
		}
		return nil, err
	}
	place := mapPlaceRow(row)
	return &place, nil
}

func (r *PlaceRepository) CountByName(ctx context.Context, keyword string) (int, error) {
	var count int64
	if err := r.nameQuery(ctx, keyword).Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

func (r *PlaceRepository) FindByName(ctx context.Context, keyword string, paging application.Paging) ([]domain.Place, error) {
	var rows []placeRow
	err := r.nameQuery(ctx, keyword).
		Order("name ASC").
		Offset(paging.Offset()).
		Limit(paging.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return mapPlaceRows(rows), nil
}

// nameQuery is a case-insensitive substring match that works on both MySQL and SQLite.
func (r *PlaceRepository) nameQuery(ctx context.Context, keyword string) *gorm.DB {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(keyword)) + "%"
	return r.db.WithContext(ctx).Model(&placeRow{}).Where("LOWER(name) LIKE ? ESCAPE '!'", pattern)
}

func mapPlaceRows(rows []placeRow) []domain.Place {
	places := make([]domain.Place, 0, len(rows))
	for _, row := range rows {
		places = append(places, mapPlaceRow(row))
	}
	return places
}

func mapPlaceRow(row placeRow) domain.Place {
	return domain.Place{
		ID:        row.ID,
		Name:      row.Name,
		Address:   row.Address,
		Category:  row.Category,
		Latitude:  row.Latitude,
		Longitude: row.Longitude,
		CreatedAt: row.CreatedAt,
	}
}

// AdminPlaceRepository implements the admin place port on gorm.
type AdminPlaceRepository struct {
	db *gorm.DB
}

func NewAdminPlaceRepository(db *gorm.DB) *AdminPlaceRepository {
	return &AdminPlaceRepository{db: db}
}

func (r *AdminPlaceRepository) Find(ctx context.Context, filter adminapp.PlaceFilter) ([]admindomain.Place, error) {
	query := r.db.WithContext(ctx).Model(&placeRow{})
	if filter.Keyword != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(filter.Keyword)) + "%"
		query = query.Where("LOWER(name) LIKE ? ESCAPE '!' OR LOWER(address) LIKE ? ESCAPE '!'", pattern, pattern)
	}

	var rows []placeRow
	if err := query.Order("created_at DESC").Order("name ASC").Limit(filter.Limit).Find(&rows).Error; err != nil {
		return nil, err
	}

	places := make([]admindomain.Place, 0, len(rows))
	for _, row := range rows {
		places = append(places, admindomain.RestorePlace(row.ID, row.Name, row.Address, row.Category, row.Latitude, row.Longitude, row.CreatedAt))
	}
	return places, nil
}

func (r *AdminPlaceRepository) Create(ctx context.Context, place *admindomain.Place) error {
	var count int64
	err := r.db.WithContext(ctx).Model(&placeRow{}).
		Where("name = ? AND address = ?", place.Name.String(), place.Address.String()).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return admindomain.ErrDuplicatePlace
	}
	return r.db.WithContext(ctx).Create(&placeRow{
		ID:        place.ID,
		Name:      place.Name.String(),
		Address:   place.Address.String(),
		Category:  place.Category.String(),
		Latitude:  place.Location.Lat,
		Longitude: place.Location.Lng,
		CreatedAt: place.CreatedAt,
	}).Error
}
