package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes は近傍検索とレビュー一覧で使うインデックスを作成する。既存なら何もしない。
func EnsureIndexes(ctx context.Context, db *mongo.Database, placeCollection, reviewCollection string) error {
	if _, err := db.Collection(placeCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "latitude", Value: 1}, {Key: "longitude", Value: 1}}},
		{Keys: bson.D{{Key: "name", Value: 1}}},
	}); err != nil {
		return err
	}
	_, err := db.Collection(reviewCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "placeId", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	return err
}
