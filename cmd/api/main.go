package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"recipe-catalog/internal/api"
	aiService "recipe-catalog/internal/core/ai"
	"recipe-catalog/internal/core/ai/cache"
	"recipe-catalog/internal/core/ai/provider"
	"recipe-catalog/internal/core/image"
	recipeService "recipe-catalog/internal/core/recipe"
	"recipe-catalog/internal/core/search"
	"recipe-catalog/internal/infrastructure/config"
	"recipe-catalog/internal/infrastructure/store"
	"recipe-catalog/internal/pkg/common"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 載入 .env
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found")
	}

	// 載入設定
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 初始化 logger（需在載入 config 後）
	if err := common.InitLogger(cfg.LogLevel); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	common.LogInfo("載入設定",
		zap.String("ai_provider", cfg.AI.Provider),
		zap.String("api_key", config.MaskAPIKey(cfg.AI.APIKey)),
		zap.Bool("search_enabled", cfg.Algolia.Enabled()),
	)

	// 資料庫
	pg, err := store.NewPostgresStore(cfg.Database)
	if err != nil {
		common.LogFatal("Failed to connect to database", zap.Error(err))
	}
	defer pg.Close()

	// AI 供應商
	var p provider.Provider
	switch cfg.AI.Provider {
	case "gemini":
		p, err = provider.NewGemini(context.Background(), cfg.AI)
		if err != nil {
			common.LogFatal("Failed to initialize Gemini provider", zap.Error(err))
		}
	default:
		p = provider.NewOpenRouter(cfg.AI)
	}

	// 快取
	aiCache, err := cache.New(cfg.Cache)
	if err != nil {
		common.LogFatal("Failed to initialize cache", zap.Error(err))
	}

	ai := aiService.NewService(p, aiCache)
	defer ai.Close()

	// 搜尋索引同步
	syncer := search.NewSyncer(search.NewClient(cfg.Algolia), cfg.Sync)
	defer syncer.Close()

	recipes := recipeService.NewService(pg, syncer)
	assembler := recipeService.NewAssembler(image.NewPexelsService(cfg.Pexels))

	router := api.SetupRouter(cfg, api.Dependencies{
		Recipes:   recipes,
		Assembler: assembler,
		AI:        ai,
		Syncer:    syncer,
		Source:    pg,
		DB:        pg,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		common.LogInfo("啟動應用",
			zap.String("version", cfg.App.Version),
			zap.String("env", cfg.App.Env),
			zap.Int("port", cfg.Server.Port),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			common.LogError("Failed to start server", zap.Error(err))
			os.Exit(1)
		}
	}()

	// 等待中斷信號
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	common.LogInfo("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		common.LogError("Server forced to shutdown", zap.Error(err))
		os.Exit(1)
	}

	common.LogInfo("Server exited")
}
