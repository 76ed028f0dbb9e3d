package api

import (
	"context"
	"net/http"
	"time"

	aiHandler "recipe-catalog/internal/api/handlers/ai"
	"recipe-catalog/internal/api/handlers/health"
	recipeHandler "recipe-catalog/internal/api/handlers/recipe"
	searchHandler "recipe-catalog/internal/api/handlers/search"
	"recipe-catalog/internal/api/middleware"
	aiService "recipe-catalog/internal/core/ai"
	recipeService "recipe-catalog/internal/core/recipe"
	searchService "recipe-catalog/internal/core/search"
	"recipe-catalog/internal/infrastructure/config"
	"recipe-catalog/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 請求超時
const timeoutDuration = 120 * time.Second

// Dependencies 路由所需的服務，由 main 組裝後注入
type Dependencies struct {
	Recipes   *recipeService.Service
	Assembler *recipeService.Assembler
	AI        *aiService.Service
	Syncer    *searchService.Syncer
	Source    searchService.RecipeSource
	DB        health.Pinger
}

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, deps Dependencies) *gin.Engine {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.BodySizeLimit(cfg.Server.MaxBodySize))

	// 請求超時
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetHeader("X-Request-ID")),
				zap.Duration("timeout", timeoutDuration),
			)
			c.AbortWithStatusJSON(http.StatusGatewayTimeout, gin.H{
				"success": false,
				"error":   common.ErrRequestTimeout.Message,
			})
		}
	})

	healthH := health.NewHandler(cfg, deps.DB, deps.Syncer)
	router.GET("/health", healthH.HealthCheck)
	router.GET("/ready", healthH.ReadinessCheck)
	router.GET("/live", healthH.LivenessCheck)

	recipeH := recipeHandler.NewHandler(deps.Recipes)
	searchH := searchHandler.NewHandler(deps.Recipes, deps.Syncer, deps.Source)
	aiH := aiHandler.NewHandler(deps.AI, deps.Assembler, deps.Recipes)

	api := router.Group("/api")
	if cfg.RateLimit.Enabled {
		api.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}
	{
		recipes := api.Group("/recipes")
		{
			recipes.GET("", recipeH.HandleList)
			recipes.POST("", recipeH.HandleCreate)
			recipes.GET("/featured", recipeH.HandleFeatured)
			recipes.GET("/:id", recipeH.HandleGet)
			recipes.PUT("/:id", recipeH.HandleUpdate)
			recipes.DELETE("/:id", recipeH.HandleDelete)
		}

		api.POST("/search/ingredients", searchH.HandleIngredientSearch)
		api.POST("/sync-algolia", searchH.HandleSyncAll)

		api.POST("/discover", aiH.HandleDiscover)
		api.POST("/assistant", aiH.HandleAssistant)
	}

	common.LogInfo("Router setup completed",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.Bool("rate_limit_enabled", cfg.RateLimit.Enabled),
		zap.Int64("max_body_size", cfg.Server.MaxBodySize),
		zap.Duration("timeout", timeoutDuration),
	)

	return router
}
