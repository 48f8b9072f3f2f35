package mongo

import (
	"context"

	"github.com/sngm3741/matjip-map/api/internal/public/application"
	"github.com/sngm3741/matjip-map/api/internal/public/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReviewRepository はレビューを MongoDB で扱う実装リポジトリ。
type ReviewRepository struct {
	collection *mongo.Collection
}

// NewReviewRepository はレビューコレクションを束縛したリポジトリを構築する。
func NewReviewRepository(db *mongo.Database, collectionName string) *ReviewRepository {
	return &ReviewRepository{collection: db.Collection(collectionName)}
}

// RatingsByPlace は平均計算用に rating だけを射影して返す。
func (r *ReviewRepository) RatingsByPlace(ctx context.Context, placeID string) ([]int, error) {
	opts := options.Find().SetProjection(bson.M{"rating": 1})
	cursor, err := r.collection.Find(ctx, bson.M{"placeId": placeID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	ratings := make([]int, 0)
	for cursor.Next(ctx) {
		var doc struct {
			Rating int `bson:"rating"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		ratings = append(ratings, doc.Rating)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return ratings, nil
}

// CountByPlace counts the reviews of a place.
func (r *ReviewRepository) CountByPlace(ctx context.Context, placeID string) (int, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"placeId": placeID})
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

// FindByPlace returns one page of a place's reviews, newest first.
func (r *ReviewRepository) FindByPlace(ctx context.Context, placeID string, paging application.Paging) ([]domain.Review, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}}).
		SetSkip(int64(paging.Offset())).
		SetLimit(int64(paging.Limit))
	cursor, err := r.collection.Find(ctx, bson.M{"placeId": placeID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reviews := make([]domain.Review, 0)
	for cursor.Next(ctx) {
		var doc ReviewDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		reviews = append(reviews, mapReviewDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return reviews, nil
}

// Create inserts a review. Callers have already checked that the place exists.
func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	_, err := r.collection.InsertOne(ctx, ReviewDocument{
		ID:           review.ID,
		PlaceID:      review.PlaceID,
		AuthorName:   review.AuthorName,
		Rating:       review.Rating,
		Content:      review.Content,
		PasswordHash: review.PasswordHash,
		CreatedAt:    review.CreatedAt,
	})
	return err
}

func mapReviewDocument(doc ReviewDocument) domain.Review {
	return domain.Review{
		ID:           doc.ID,
		PlaceID:      doc.PlaceID,
		AuthorName:   doc.AuthorName,
		Rating:       doc.Rating,
		Content:      doc.Content,
		PasswordHash: doc.PasswordHash,
		CreatedAt:    doc.CreatedAt,
	}
}
