package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"recipe-catalog/internal/infrastructure/config"
	"recipe-catalog/internal/infrastructure/store"
	"recipe-catalog/internal/pkg/common"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// 寫入示範食譜的命令列工具
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

	pg, err := store.NewPostgresStore(cfg.Database)
	if err != nil {
		common.LogFatal("Failed to connect to database", zap.Error(err))
	}
	defer pg.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	samples := store.SampleRecipes()
	for i := range samples {
		r := samples[i]
		if err := pg.Create(ctx, &r); err != nil {
			common.LogError("示範食譜寫入失敗",
				zap.Error(err),
				zap.String("title", r.Title),
			)
			os.Exit(1)
		}
		common.LogInfo("示範食譜已寫入",
			zap.String("id", r.ID),
			zap.String("title", r.Title),
		)
	}

	fmt.Printf("Seeded %d recipes\n", len(samples))
}
