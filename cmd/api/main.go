package main

import (
	"context"
	"log"

	"github.com/sngm3741/matjip-map/api/internal/config"
	"github.com/sngm3741/matjip-map/api/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗: %v", err)
	}

	stores, err := server.OpenStores(context.Background(), cfg)
	if err != nil {
		cfg.ServerLog.Fatalf("ストア接続に失敗しました: %v", err)
	}

	app := server.New(cfg, stores)
	if err := app.Run(); err != nil {
		log.Fatalf("サーバー起動に失敗: %v", err)
	}
}
