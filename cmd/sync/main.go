package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"recipe-catalog/internal/core/search"
	"recipe-catalog/internal/infrastructure/config"
	"recipe-catalog/internal/infrastructure/store"
	"recipe-catalog/internal/pkg/common"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// 全量重建搜尋索引的命令列工具
func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := common.InitLogger(cfg.LogLevel); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	if !cfg.Algolia.Enabled() {
		common.LogError("搜尋索引未設定，請檢查 ALGOLIA_APP_ID 與 ALGOLIA_ADMIN_KEY")
		os.Exit(1)
	}

	pg, err := store.NewPostgresStore(cfg.Database)
	if err != nil {
		common.LogFatal("Failed to connect to database", zap.Error(err))
	}
	defer pg.Close()

	syncer := search.NewSyncer(search.NewClient(cfg.Algolia), cfg.Sync)
	defer syncer.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	count, err := syncer.SyncAll(ctx, pg)
	if err != nil {
		common.LogError("索引重建失敗", zap.Error(err))
		os.Exit(1)
	}

	fmt.Printf("Synced %d recipes to index %q\n", count, cfg.Algolia.IndexName)
}
