// Command userservice serves account registration and login, issuing the
// bearer tokens the todo service verifies.
package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/todoboard/backend/internal/config"
	"github.com/todoboard/backend/internal/db"
	"github.com/todoboard/backend/internal/handler"
	"github.com/todoboard/backend/internal/service"
	"github.com/todoboard/backend/internal/token"
)

func main() {
	_ = godotenv.Load()

	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}
	if cfg.Auth.DevSecret {
		logger.Warn("JWT_SECRET not set, using development signing key")
	}

	ctx := context.Background()

	if err := db.Migrate(ctx, cfg.Postgres); err != nil {
		logger.Fatal("migrate", zap.Error(err))
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Postgres)
	if err != nil {
		logger.Fatal("connect postgres", zap.Error(err))
	}
	defer pool.Close()

	store := &db.Postgres{Pool: pool}
	issuer := token.NewIssuer(cfg.Auth.JWTSecret, token.AccessTTL)
	userHandler := handler.NewUserHandler(service.NewUserService(store, issuer), logger)

	router := gin.New()
	router.Use(gin.Recovery(), handler.CORSMiddleware(cfg.App.AllowedOrigins))

	router.GET("/health", handler.NewHealthHandler(pool).Health)

	users := router.Group("/api/users")
	users.POST("/register", userHandler.Register)
	users.POST("/login", userHandler.Login)

	logger.Info("starting user service",
		zap.String("port", cfg.App.Port),
		zap.String("env", cfg.App.Env),
	)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
