package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"TaskerGo/config"
	"TaskerGo/middleware"
	"TaskerGo/models"
	"TaskerGo/routes"
	"TaskerGo/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := config.InitLogger(); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer config.Logger.Sync()

	conf, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := config.InitDB(conf); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Redis is optional; without it logout falls back to cookie clearing.
	if conf.RedisHost != "" {
		if err := config.InitRedis(conf); err != nil {
			log.Fatalf("failed to initialize redis: %v", err)
		}
	}

	utils.InitJWT(conf.JWTSecret)
	if conf.MinPasswordLength > 0 {
		models.MinPasswordLength = conf.MinPasswordLength
	}

	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	middleware.SetupMiddleware(r)

	r.LoadHTMLGlob("templates/*.html")

	routes.RegisterRoutes(r)

	srv := &http.Server{
		Addr:    ":" + conf.ServerPort,
		Handler: r,
	}

	go func() {
		config.Logger.Infow("server starting", "port", conf.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	// Graceful shutdown on interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	config.Logger.Infow("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	config.Logger.Infow("server stopped")
}
