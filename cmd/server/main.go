package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"

	"tf2schema-service/internal/adapters/primary/http/handlers"
	"tf2schema-service/internal/adapters/primary/http/middleware"
	"tf2schema-service/internal/adapters/secondary/postgres"
	"tf2schema-service/internal/adapters/secondary/schemafile"
	"tf2schema-service/internal/adapters/secondary/steam"
	"tf2schema-service/internal/config"
	ports "tf2schema-service/internal/core/ports/output"
	"tf2schema-service/internal/core/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	// Snapshot repository (optional - based on config)
	var snapshotRepo ports.SnapshotRepository
	if cfg.Database.Enabled {
		poolCfg, err := pgxpool.ParseConfig(cfg.Database.DSN())
		if err != nil {
			log.Fatalf("parse db config: %v", err)
		}
		poolCfg.MaxConns = int32(cfg.Database.MaxOpenConns)
		poolCfg.MinConns = int32(cfg.Database.MaxIdleConns)
		poolCfg.MaxConnLifetime = cfg.Database.ConnMaxLifetime

		pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
		if err != nil {
			log.Fatalf("create db pool: %v", err)
		}
		defer pool.Close()

		if err := pool.Ping(context.Background()); err != nil {
			log.Fatalf("ping db: %v", err)
		}
		log.Info("database connection established")

		snapshotRepo = postgres.NewSnapshotRepository(pool)
	} else {
		log.Info("snapshot history disabled")
	}

	// Secondary adapters
	steamClient := steam.NewClient(&cfg.Steam)
	store := schemafile.NewStore(cfg.Schema.FilePath)

	// Core services
	manager := services.NewSchemaManagerService(steamClient, store, snapshotRepo, services.ManagerOptions{
		SaveToFile:     cfg.Schema.SaveToFile,
		FileOnly:       cfg.Schema.FileOnly,
		UpdateInterval: cfg.Schema.UpdateInterval,
		MaxAge:         cfg.Schema.MaxAge,
	})
	lookup := services.NewLookupService(manager)

	// Background schema updates
	runCtx, stopRun := context.WithCancel(context.Background())
	defer stopRun()
	go manager.Run(runCtx)

	// Primary adapter (HTTP handlers)
	h := handlers.New(manager, lookup)

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())

	api := router.Group("/api/v1/schema")
	h.RegisterRoutes(api)

	// Health check reports ready once a schema is loaded
	router.GET("/healthz", func(c *gin.Context) {
		if _, err := manager.Current(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	stopRun()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
