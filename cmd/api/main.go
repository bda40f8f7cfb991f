package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tienda-arte/internal/cache"
	"tienda-arte/internal/catalog"
	"tienda-arte/internal/config"
	"tienda-arte/internal/database"
	"tienda-arte/internal/handlers"
	"tienda-arte/internal/identity"
	"tienda-arte/internal/links"
	"tienda-arte/internal/repository"
	"tienda-arte/internal/routes"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cfg := config.LoadConfig()

	client, err := database.Connect(cfg.MongoURI)
	if err != nil {
		zap.L().Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	db := client.Database(cfg.MongoDB)

	repo := repository.NewStoreRepository(db)
	loader := catalog.NewLoader(repo)
	snapshots := cache.New(cfg.CacheTTL)
	linkBuilder := links.NewBuilder(cfg.WhatsAppNumber)
	verifier := identity.NewVerifier(cfg.JWTSecret)
	handler := handlers.NewStorefrontHandler(loader, repo, linkBuilder, snapshots)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	routes.RegisterRoutes(router, handler, verifier)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		zap.L().Info("🚀 Tienda running on port", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Fatal("Server forced to shutdown", zap.Error(err))
	}

	if err := database.Close(client); err != nil {
		zap.L().Error("Failed to close MongoDB", zap.Error(err))
	}
	zap.L().Info("Server stopped gracefully")
}
