// Package main is the entry point for the Cosmos Reader API server.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cosmos-reader/cosmos-reader-api/internal/cache"
	"github.com/cosmos-reader/cosmos-reader-api/internal/config"
	"github.com/cosmos-reader/cosmos-reader-api/internal/database"
	"github.com/cosmos-reader/cosmos-reader-api/internal/router"
	"github.com/cosmos-reader/cosmos-reader-api/internal/services/ai"
	"github.com/cosmos-reader/cosmos-reader-api/internal/services/spaceweather"
	"github.com/cosmos-reader/cosmos-reader-api/internal/services/worker"
	"github.com/cosmos-reader/cosmos-reader-api/internal/storage"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("🚀 Cosmos Reader API %s starting...", Version)

	// Step 1: Load Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	log.Printf("📋 Config loaded: port=%s, workers=%d, gin_mode=%s", cfg.Port, cfg.WorkerCount, cfg.GinMode)

	os.Setenv("GIN_MODE", cfg.GinMode)

	// Step 2: Connect to Database
	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Println("✅ Database connected")

	// Run migrations
	if err := db.RunMigrations("migrations"); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}

	// Step 3: Create Services
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStartup()

	redisCache, err := cache.New(startupCtx, cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	if redisCache != nil {
		defer redisCache.Close()
		log.Println("✅ Redis cache connected")
	} else {
		log.Println("⚠️  Redis not configured (set REDIS_ADDR to enable leaderboard/space-weather caching)")
	}

	store, err := storage.New(startupCtx, cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to object storage: %v", err)
	}
	log.Printf("✅ Object storage connected (bucket %q)", cfg.MinioBucket)

	aiSvc := ai.New(cfg.AIGatewayURL, cfg.AIGatewayAPIKey, cfg.AIModel, cfg.AIImageModel)
	if aiSvc.Configured() {
		log.Printf("✅ AI gateway enabled (model %s)", cfg.AIModel)
	} else {
		log.Println("⚠️  AI gateway disabled (set AI_GATEWAY_API_KEY — keyword analysis will use local frequency extraction)")
	}

	sw := spaceweather.New(cfg.NASAAPIKey)
	if cfg.NASAAPIKey == "DEMO_KEY" {
		log.Println("⚠️  Using NASA DEMO_KEY (30 requests/hour — set NASA_API_KEY for production)")
	}

	// Step 4: Create and Start Worker Pool
	wp := worker.NewPool(cfg.WorkerCount, cfg.JobQueueSize, db, aiSvc)
	wp.Start()
	defer wp.Stop()

	// Step 5: Setup HTTP Router
	r := router.Setup(db, wp, aiSvc, sw, store, redisCache, cfg.JWTSecret, cfg.UserRateLimit, cfg.AllowedOrigins)

	// Step 6: Start the HTTP Server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("🌐 Server listening on http://localhost:%s", cfg.Port)
		log.Printf("📖 Health check: http://localhost:%s/api/v1/health", cfg.Port)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Server failed: %v", err)
		}
	}()

	// Step 7: Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	log.Printf("🛑 Received signal %v, shutting down gracefully...", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("⚠️  Server forced to shutdown: %v", err)
	}

	log.Println("👋 Server stopped. Goodbye!")
}
