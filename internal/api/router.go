package api

import (
	"fmt"
	"time"

	"flavoria/internal/api/handlers/health"
	sessionHandler "flavoria/internal/api/handlers/session"
	"flavoria/internal/api/middleware"
	"flavoria/internal/core/cache"
	"flavoria/internal/core/mealdb"
	sessionCore "flavoria/internal/core/session"
	"flavoria/internal/infrastructure/config"
	"flavoria/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupRouter 設置路由；store 可為 nil（未啟用快取）
func SetupRouter(cfg *config.Config, client *mealdb.Client, sessions *sessionCore.Manager, store cache.Store) (*gin.Engine, error) {
	if client == nil || sessions == nil {
		return nil, fmt.Errorf("catalog client and session manager are required")
	}

	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	// 設置 gin 模式
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// 註冊基礎中間件
	router.Use(middleware.Recovery())
	router.Use(requestid.New())
	router.Use(middleware.Logger())

	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))

	router.Use(middleware.BodySizeLimit(cfg.MaxBodySize))
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}
	router.Use(middleware.Timeout(cfg.Server.RequestTimeout))

	router.Use(func(c *gin.Context) {
		c.Set("config", cfg)
		c.Next()
	})

	// 健康檢查路由
	healthHandler := health.NewHandler(cfg, sessions, store)
	router.GET("/health", healthHandler.HealthCheck)
	router.GET("/ready", healthHandler.ReadinessCheck)
	router.GET("/live", healthHandler.LivenessCheck)

	if err := sessionHandler.RegisterValidations(); err != nil {
		return nil, fmt.Errorf("failed to register validations: %w", err)
	}
	h := sessionHandler.NewHandler(cfg, sessions, client)

	api := router.Group("/api/v1")
	{
		api.GET("/categories", h.ListCategories)
		api.POST("/sessions", h.CreateSession)

		s := api.Group("/sessions/:id", h.LoadSession())
		{
			s.GET("", h.GetSession)
			s.DELETE("", h.DeleteSession)

			s.GET("/catalog", h.GetCatalog)
			s.PUT("/catalog/filter", h.ApplyFilter)

			s.POST("/navigation/select", h.SelectRecipe)
			s.POST("/navigation/profile", h.OpenProfile)
			s.POST("/navigation/back", h.Back)

			s.GET("/detail", h.GetDetail)

			s.GET("/favorites", h.ListFavorites)
			s.POST("/favorites/toggle", h.ToggleFavorite)

			s.GET("/profile", h.GetProfile)
			s.PUT("/profile", h.UpdateProfile)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(common.ErrNotFound.Status, common.ErrNotFound.Response(false))
	})

	common.LogInfo("Router setup completed successfully",
		zap.Bool("cache_enabled", store != nil),
		zap.Bool("rate_limit_enabled", cfg.RateLimit.Enabled),
		zap.Duration("request_timeout", cfg.Server.RequestTimeout),
		zap.Int64("max_body_size", cfg.MaxBodySize),
	)

	return router, nil
}
