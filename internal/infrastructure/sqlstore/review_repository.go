package sqlstore

import (
	"context"

	"github.com/sngm3741/matjip-map/api/internal/public/application"
	"github.com/sngm3741/matjip-map/api/internal/public/domain"
	"gorm.io/gorm"
)

// ReviewRepository implements application.ReviewRepository on gorm.
type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) RatingsByPlace(ctx context.Context, placeID string) ([]int, error) {
	ratings := make([]int, 0)
	err := r.db.WithContext(ctx).Model(&reviewRow{}).
		Where("place_id = ?", placeID).
		Pluck("rating", &ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *ReviewRepository) CountByPlace(ctx context.Context, placeID string) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&reviewRow{}).Where("place_id = ?", placeID).Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

func (r *ReviewRepository) FindByPlace(ctx context.Context, placeID string, paging application.Paging) ([]domain.Review, error) {
	var rows []reviewRow
	err := r.db.WithContext(ctx).
		Where("place_id = ?", placeID).
		Order("created_at DESC").
		Order("id ASC").
		Offset(paging.Offset()).
		Limit(paging.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	reviews := make([]domain.Review, 0, len(rows))
	for _, row := range rows {
		reviews = append(reviews, domain.Review{
			ID:           row.ID,
			PlaceID:      row.PlaceID,
			AuthorName:   row.AuthorName,
			Rating:       row.Rating,
			Content:      row.Content,
			PasswordHash: row.PasswordHash,
			CreatedAt:    row.CreatedAt,
		})
	}
	return reviews, nil
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	return r.db.WithContext(ctx).Omit("Place").Create(&reviewRow{
		ID:           review.ID,
		PlaceID:      review.PlaceID,
		AuthorName:   review.AuthorName,
		Rating:       review.Rating,
		Content:      review.Content,
		PasswordHash: review.PasswordHash,
		CreatedAt:    review.CreatedAt,
	}).Error
}
