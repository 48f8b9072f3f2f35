package server

import (
	"context"
	"fmt"

	adminapp "github.com/sngm3741/matjip-map/api/internal/admin/application"
	"github.com/sngm3741/matjip-map/api/internal/config"
	mongodoc "github.com/sngm3741/matjip-map/api/internal/infrastructure/mongo"
	"github.com/sngm3741/matjip-map/api/internal/infrastructure/sqlstore"
	publicapp "github.com/sngm3741/matjip-map/api/internal/public/application"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Stores bundles the repositories of one storage backend.
type Stores struct {
	Places      publicapp.PlaceRepository
	Reviews     publicapp.ReviewRepository
	AdminPlaces adminapp.PlaceRepository
	Ping        func(ctx context.Context) error
	Close       func(ctx context.Context) error
}

// OpenStores connects to the backend selected by cfg.StoreDriver.
func OpenStores(ctx context.Context, cfg config.Config) (*Stores, error) {
	switch cfg.StoreDriver {
	case config.DriverMongo:
		return openMongo(ctx, cfg)
	case config.DriverMySQL:
		return openSQL("mysql", cfg.MySQLDSN)
	case config.DriverSQLite:
		return openSQL("sqlite", cfg.SQLiteFile)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

func openMongo(ctx context.Context, cfg config.Config) (*Stores, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("MongoDB への接続に失敗: %w", err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("MongoDB への疎通確認に失敗: %w", err)
	}

	db := client.Database(cfg.MongoDatabase)
	if err := mongodoc.EnsureIndexes(connectCtx, db, cfg.PlaceCollection, cfg.ReviewCollection); err != nil {
		cfg.ServerLog.Printf("インデックス作成に失敗: %v", err)
	}

	return &Stores{
		Places:      mongodoc.NewPlaceRepository(db, cfg.PlaceCollection),
		Reviews:     mongodoc.NewReviewRepository(db, cfg.ReviewCollection),
		AdminPlaces: mongodoc.NewAdminPlaceRepository(db, cfg.PlaceCollection),
		Ping: func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		},
		Close: client.Disconnect,
	}, nil
}

func openSQL(driver, dsn string) (*Stores, error) {
	db, err := sqlstore.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("%s への接続に失敗: %w", driver, err)
	}
	return &Stores{
		Places:      sqlstore.NewPlaceRepository(db),
		Reviews:     sqlstore.NewReviewRepository(db),
		AdminPlaces: sqlstore.NewAdminPlaceRepository(db),
		Ping: func(ctx context.Context) error {
			return sqlstore.Ping(db.WithContext(ctx))
		},
		Close: func(context.Context) error {
			return sqlstore.Close(db)
		},
	}, nil
}
