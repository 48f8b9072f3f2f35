package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"math/rand"
	"time"

	adminapp "github.com/sngm3741/matjip-map/api/internal/admin/application"
	admindomain "github.com/sngm3741/matjip-map/api/internal/admin/domain"
	"github.com/sngm3741/matjip-map/api/internal/config"
	"github.com/sngm3741/matjip-map/api/internal/infrastructure/password"
	publicapp "github.com/sngm3741/matjip-map/api/internal/public/application"
	"github.com/sngm3741/matjip-map/api/internal/server"
)

type seedOptions struct {
	placeCount  int
	reviewCount int
	randomSeed  int64
}

func main() {
	opts := parseFlags()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("環境変数の読み込みに失敗しました: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	stores, err := server.OpenStores(ctx, cfg)
	if err != nil {
		log.Fatalf("ストア接続に失敗しました: %v", err)
	}
	defer func() {
		_ = stores.Close(context.Background())
	}()

	rng := rand.New(rand.NewSource(opts.randomSeed))
	placeService := adminapp.NewPlaceService(stores.AdminPlaces)
	reviewService := publicapp.NewReviewCommandService(stores.Places, stores.Reviews, password.NewHasher(cfg.BcryptCost))

	var placeIDs []string
	skipped := 0
	for _, cmd := range generatePlaces(rng, opts.placeCount) {
		place, err := placeService.Create(ctx, cmd)
		if errors.Is(err, admindomain.ErrDuplicatePlace) {
			skipped++
			continue
		}
		if err != nil {
			log.Fatalf("場所データの挿入に失敗しました (%s): %v", cmd.Name, err)
		}
		placeIDs = append(placeIDs, place.ID)
	}
	if len(placeIDs) == 0 {
		log.Printf("新規の場所がありません (skipped=%d)", skipped)
		return
	}

	reviews := 0
	for i, count := range distribute(opts.reviewCount, len(placeIDs), 0, 8, rng) {
		for j := 0; j < count; j++ {
			if _, err := reviewService.Create(ctx, placeIDs[i], generateReview(rng)); err != nil {
				log.Fatalf("レビューの挿入に失敗しました: %v", err)
			}
			reviews++
		}
	}

	log.Printf("Seed 完了: places=%d skipped=%d reviews=%d (store=%s)", len(placeIDs), skipped, reviews, cfg.StoreDriver)
}

func parseFlags() seedOptions {
	var opts seedOptions
	flag.IntVar(&opts.placeCount, "places", 12, "生成する場所数")
	flag.IntVar(&opts.reviewCount, "reviews", 40, "生成するレビュー総数")
	flag.Int64Var(&opts.randomSeed, "seed", time.Now().UnixNano(), "乱数シード（再現用）")
	flag.Parse()

	if opts.placeCount <= 0 {
		log.Fatal("places は 1 以上を指定してください")
	}
	if opts.reviewCount < 0 {
		opts.reviewCount = 0
	}
	return opts
}
