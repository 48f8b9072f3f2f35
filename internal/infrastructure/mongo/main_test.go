package mongo

import (
	"context"
	"flag"
	"log"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var mongoURI string

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	ctx := context.Background()
	container, err := mongodb.Run(ctx, "mongo:7")
	if err != nil {
		// Docker が無い環境ではコンテナテストを飛ばす。
		log.Printf("mongo container unavailable, skipping repository tests: %v", err)
		os.Exit(m.Run())
	}

	mongoURI, err = container.ConnectionString(ctx)
	if err != nil {
		log.Fatalf("error reading mongo connection string: %v", err)
	}

	code := m.Run()

	if err := container.Terminate(ctx); err != nil {
		log.Printf("error tearing down mongo container: %v", err)
	}
	os.Exit(code)
}

// initDB returns a fresh database per test.
func initDB(t *testing.T) *mongo.Database {
	t.Helper()
	if mongoURI == "" {
		t.Skip("mongo container not running")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	require.NoError(t, err)

	db := client.Database("test_" + uuid.NewString()[:8])
	require.NoError(t, EnsureIndexes(ctx, db, "places", "reviews"))

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})
	return db
}
