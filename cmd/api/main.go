package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/harshangowda84/Harish-sub000/internal/adapters/handler"
	"github.com/harshangowda84/Harish-sub000/internal/adapters/middleware"
	"github.com/harshangowda84/Harish-sub000/internal/adapters/reader"
	"github.com/harshangowda84/Harish-sub000/internal/adapters/repository"
	"github.com/harshangowda84/Harish-sub000/internal/config"
	"github.com/harshangowda84/Harish-sub000/internal/core/domain"
	"github.com/harshangowda84/Harish-sub000/internal/core/ports"
	"github.com/harshangowda84/Harish-sub000/internal/core/services"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	db, err := repository.Open(cfg.DatabaseURL, cfg.AutoMigrate)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	log.Println("Authenticated with Redis successfully")

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("failed to create upload dir: %v", err)
	}

	passRepo := repository.NewPassRepository(db)
	userRepo := repository.NewUserRepository(db)

	clock := domain.NewOverrideClock()

	var cardReader ports.CardReader = reader.NewSerialReader(cfg.ReaderPort)
	simulator := reader.NewSimulatedReader()
	if cfg.ReaderSimulate {
		log.Println("READER_SIMULATE set: binding simulated UIDs for all approvals")
		cardReader = simulator
	}

	lifecycleService := services.NewLifecycleService(passRepo, cardReader, simulator, clock)
	validationService := services.NewValidationService(passRepo, cardReader, clock)
	registrationService := services.NewRegistrationService(passRepo)
	authService := services.NewAuthService(userRepo, cfg.JWTPrivateKey, redisClient)

	authMiddleware := middleware.NewAuthMiddleware(cfg.JWTPublicKey, redisClient)

	authHandler := handler.NewAuthHandler(authService)
	registrationHandler := handler.NewRegistrationHandler(registrationService, cfg.UploadDir)
	passHandler := handler.NewPassHandler(lifecycleService, passRepo)
	conductorHandler := handler.NewConductorHandler(validationService)
	adminHandler := handler.NewAdminHandler(clock)
	healthHandler := handler.NewHealthHandler(db, redisClient)

	admin := []string{"ADMIN"}
	adminOrCollege := []string{"ADMIN", "COLLEGE"}
	conductor := []string{"ADMIN", "CONDUCTOR"}
	anyRole := []string{"ADMIN", "COLLEGE", "CONDUCTOR", "PASSENGER"}

	mux := http.NewServeMux()

	// Health endpoints
	mux.HandleFunc("/health", healthHandler.Health)
	mux.HandleFunc("/health/ready", healthHandler.Ready)
	mux.HandleFunc("/health/live", healthHandler.Live)
	mux.Handle("/metrics", promhttp.Handler())

	// Auth
	mux.HandleFunc("/login", authHandler.Login)
	mux.Handle("/logout",
		authMiddleware.RequireRole(anyRole, http.HandlerFunc(authHandler.Logout)),
	)

	// Registration
	mux.Handle("/students",
		authMiddleware.RequireRole(adminOrCollege, http.HandlerFunc(registrationHandler.RegisterStudent)),
	)
	mux.HandleFunc("/passengers/apply", registrationHandler.ApplyPassenger)

	// Pass lifecycle (admin panel)
	mux.Handle("/passes",
		authMiddleware.RequireRole(adminOrCollege, http.HandlerFunc(passHandler.List)),
	)
	mux.Handle("/passes/approve",
		authMiddleware.RequireRole(admin, http.HandlerFunc(passHandler.Approve)),
	)
	mux.Handle("/passes/decline",
		authMiddleware.RequireRole(admin, http.HandlerFunc(passHandler.Decline)),
	)
	mux.Handle("/passes/erase-card",
		authMiddleware.RequireRole(admin, http.HandlerFunc(passHandler.EraseCard)),
	)
	mux.Handle("/passes/hide",
		authMiddleware.RequireRole(admin, http.HandlerFunc(passHandler.Hide)),
	)
	mux.Handle("/passes/request-renewal",
		authMiddleware.RequireRole(anyRole, http.HandlerFunc(passHandler.RequestRenewal)),
	)

	// Conductor panel
	mux.Handle("/conductor/scan",
		authMiddleware.RequireRole(conductor, http.HandlerFunc(conductorHandler.Scan)),
	)

	// Date override for exercising expiry
	mux.Handle("/admin/clock-override",
		authMiddleware.RequireRole(admin, http.HandlerFunc(adminHandler.ClockOverride)),
	)

	corsWrapped := middleware.CORSMiddleware(cfg.AllowedOrigins)(mux)

	log.Printf("Starting server on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, corsWrapped); err != nil {
		log.Fatalf("Could not start server: %s\n", err)
	}
}
