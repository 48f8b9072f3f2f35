package mongo

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/sngm3741/matjip-map/api/internal/geo"
	"github.com/sngm3741/matjip-map/api/internal/public/application"
	"github.com/sngm3741/matjip-map/api/internal/public/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PlaceRepository implements application.PlaceRepository using MongoDB.
type PlaceRepository struct {
	collection *mongo.Collection
}

// NewPlaceRepository creates a new Mongo-backed place repository.
func NewPlaceRepository(db *mongo.Database, collectionName string) *PlaceRepository {
	return &PlaceRepository{collection: db.Collection(collectionName)}
}

// FindWithinBounds returns at most limit places inside box, in natural order.
func (r *PlaceRepository) FindWithinBounds(ctx context.Context, box geo.BoundingBox, limit int) ([]domain.Place, error) {
	filter := bson.M{
		"latitude":  bson.M{"$gte": box.MinLat, "$lte": box.MaxLat},
		"longitude": bson.M{"$gte": box.MinLng, "$lte": box.MaxLng},
	}
	return r.find(ctx, filter, options.Find().SetLimit(int64(limit)))
}

// FindByID returns a single place by its identifier.
func (r *PlaceRepository) FindByID(ctx context.Context, id string) (*domain.Place, error) {
	var doc PlaceDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": strings.TrimSpace(id)}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, application.ErrNotFound
		}
		return nil, err
	}
	place := mapPlaceDocument(doc)
	return &place, nil
}

// CountByName counts places whose name contains keyword, case-insensitively.
func (r *PlaceRepository) CountByName(ctx context.Context, keyword string) (int, error) {
	count, err := r.collection.CountDocuments(ctx, nameFilter(keyword))
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

// FindByName returns one page of places whose name contains keyword, ordered by name.
func (r *PlaceRepository) FindByName(ctx context.Context, keyword string, paging application.Paging) ([]domain.Place, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip(int64(paging.Offset())).
		SetLimit(int64(paging.Limit))
	return r.find(ctx, nameFilter(keyword), opts)
}

func (r *PlaceRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]domain.Place, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	places := make([]domain.Place, 0)
	for cursor.Next(ctx) {
		var doc PlaceDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		places = append(places, mapPlaceDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return places, nil
}

// nameFilter はユーザー入力をエスケープした部分一致の正規表現フィルタを返す。
func nameFilter(keyword string) bson.M {
	return bson.M{"name": primitive.Regex{Pattern: regexp.QuoteMeta(keyword), Options: "i"}}
}

func mapPlaceDocument(doc PlaceDocument) domain.Place {
	return domain.Place{
		ID:        doc.ID,
		Name:      doc.Name,
		Address:   doc.Address,
		Category:  doc.Category,
		Latitude:  doc.Latitude,
		Longitude: doc.Longitude,
		CreatedAt: doc.CreatedAt,
	}
}
