package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/devnow-platform/onboarding-backend/config"
	"github.com/devnow-platform/onboarding-backend/internal/assistant"
	"github.com/devnow-platform/onboarding-backend/internal/assistant/gemini"
	"github.com/devnow-platform/onboarding-backend/internal/assistant/rules"
	"github.com/devnow-platform/onboarding-backend/internal/auth"
	"github.com/devnow-platform/onboarding-backend/internal/bootstrap"
	"github.com/devnow-platform/onboarding-backend/internal/jobs"
	"github.com/devnow-platform/onboarding-backend/internal/uploads"
)

const serviceName = "onboarding-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	db, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: cfg.Database.PostgresDSN()})
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer db.Close()

	sqlDB, err := bootstrap.OpenSQLDB(ctx, cfg.Database.PostgresDSN())
	if err != nil {
		log.Fatalf("postgres (sql): %v", err)
	}
	defer sqlDB.Close()

	rdb, err := bootstrap.OpenRedis(ctx, cfg.Redis)
	if err != nil {
		log.Printf("redis unavailable, caching and activity feed disabled: %v", err)
		rdb = nil
	}

	authClient, err := auth.InitializeFirebase(&cfg.Firebase)
	if err != nil {
		log.Fatalf("firebase: %v", err)
	}
	if authClient == nil {
		log.Println("Firebase credentials not configured, running with header auth (development only)")
	}

	var engine assistant.Engine
	switch cfg.Assistant.Provider {
	case "gemini":
		engine, err = gemini.New(ctx, cfg.Assistant.APIKey, cfg.Assistant.Model)
		if err != nil {
			log.Fatalf("gemini: %v", err)
		}
	default:
		engine = rules.New()
	}

	var store *uploads.Store
	if cfg.Storage.Bucket != "" {
		store, err = uploads.NewStore(ctx, &cfg.Storage)
		if err != nil {
			log.Fatalf("storage: %v", err)
		}
	}

	router, adminService := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:  serviceName,
		Version:      cfg.App.Version,
		AllowOrigins: cfg.Server.AllowOrigins,
		DB:           db,
		SQLDB:        sqlDB,
		RDB:          rdb,
		AuthClient:   authClient,
		Engine:       engine,
		Uploads:      store,
	})

	scheduler := jobs.NewScheduler(adminService)
	scheduler.Start()
	defer scheduler.Stop()

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Printf("%s listening on :%s", serviceName, cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
