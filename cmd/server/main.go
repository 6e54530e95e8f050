package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"shuttle_tracker/internal/config"
	"shuttle_tracker/internal/controllers"
	"shuttle_tracker/internal/logger"
	"shuttle_tracker/internal/middleware"
	"shuttle_tracker/internal/routes"
	"shuttle_tracker/internal/session"
	"shuttle_tracker/internal/store"
)

// Absolute session lifetime; the cookie and the server-side record expire
// together.
const sessionTTL = 24 * time.Hour

func main() {
	cfg := config.Load()

	// Initialize structured logging
	logger.Setup(cfg.LogFile)

	// Storage backend: in-memory for development, Postgres in production.
	var st store.Store
	if cfg.AppEnv == "production" {
		db, err := config.ConnectDB(cfg)
		if err != nil {
			log.Fatalf("database setup failed: %v", err)
		}
		st = store.NewGormStore(db)
	} else {
		st = store.NewMemoryStore()
	}

	if err := store.Seed(context.Background(), st); err != nil {
		log.Fatalf("seeding initial data failed: %v", err)
	}

	// Session backend: Redis when configured, otherwise in-memory with
	// periodic eviction of expired records.
	var sessionStore session.Store
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		sessionStore = session.NewRedisStore(redis.NewClient(opts))
	} else {
		sessionStore = session.NewMemoryStore(time.Hour)
	}
	sessions := session.NewManager(sessionStore, cfg.SessionSecret, sessionTTL)

	r := routes.SetupRouter(routes.Deps{
		Auth:     controllers.NewAuthController(st, sessions),
		Admin:    controllers.NewAdminController(st),
		Bus:      controllers.NewBusController(st),
		Driver:   controllers.NewDriverController(st),
		Schedule: controllers.NewScheduleController(st),
		Config:   controllers.NewConfigController(cfg.MapsAPIKey),
		Guard:    middleware.NewAuth(sessions),
	})

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	log.Printf("🚀 Server running at :%s", cfg.Port)
	log.Fatal(http.ListenAndServe("0.0.0.0:"+cfg.Port, handler))
}
