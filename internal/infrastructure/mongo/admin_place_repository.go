package mongo

import (
	"context"
	"errors"
	"regexp"

	adminapp "github.com/sngm3741/matjip-map/api/internal/admin/application"
	admindomain "github.com/sngm3741/matjip-map/api/internal/admin/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AdminPlaceRepository は管理者向け Place 集約の Mongo 実装。
type AdminPlaceRepository struct {
	collection *mongo.Collection
}

// NewAdminPlaceRepository は MongoDB コレクションを束縛した AdminPlaceRepository を生成する。
func NewAdminPlaceRepository(db *mongo.Database, collection string) *AdminPlaceRepository {
	return &AdminPlaceRepository{collection: db.Collection(collection)}
}

// Find は名前・住所の部分一致で新しい順に場所を返す。
func (r *AdminPlaceRepository) Find(ctx context.Context, filter adminapp.PlaceFilter) ([]admindomain.Place, error) {
	mongoFilter := bson.M{}
	if filter.Keyword != "" {
		regex := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Keyword), Options: "i"}
		mongoFilter["$or"] = bson.A{
			bson.M{"name": regex},
			bson.M{"address": regex},
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "name", Value: 1}})
	opts.SetLimit(int64(filter.Limit))

	cursor, err := r.collection.Find(ctx, mongoFilter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	places := make([]admindomain.Place, 0)
	for cursor.Next(ctx) {
		var doc PlaceDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		places = append(places, mapAdminPlace(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return places, nil
}

// Create は名前+住所の重複チェックを行った上で Place を新規作成する。
func (r *AdminPlaceRepository) Create(ctx context.Context, place *admindomain.Place) error {
	filter := bson.M{
		"name":    place.Name.String(),
		"address": place.Address.String(),
	}
	if err := r.collection.FindOne(ctx, filter).Err(); err == nil {
		return admindomain.ErrDuplicatePlace
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}
	_, err := r.collection.InsertOne(ctx, PlaceDocument{
		ID:        place.ID,
		Name:      place.Name.String(),
		Address:   place.Address.String(),
		Category:  place.Category.String(),
		Latitude:  place.Location.Lat,
		Longitude: place.Location.Lng,
		CreatedAt: place.CreatedAt,
	})
	return err
}

// mapAdminPlace は Mongo ドキュメントを Admin ドメインの Place に変換する。検証はしない。
func mapAdminPlace(doc PlaceDocument) admindomain.Place {
	return admindomain.RestorePlace(doc.ID, doc.Name, doc.Address, doc.Category, doc.Latitude, doc.Longitude, doc.CreatedAt)
}
