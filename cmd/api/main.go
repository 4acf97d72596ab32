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

	"github.com/joho/godotenv"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/taskhawk/taskhawk-api/internal/adapters/cache"
	adapterHTTP "github.com/taskhawk/taskhawk-api/internal/adapters/handler/http"
	"github.com/taskhawk/taskhawk-api/internal/adapters/repository"
	"github.com/taskhawk/taskhawk-api/internal/core/domain"
	"github.com/taskhawk/taskhawk-api/internal/core/services"
	"github.com/taskhawk/taskhawk-api/internal/core/workers"
)

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	startTime := time.Now()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")
	dbHost := getenv("DB_HOST", "localhost")
	dbPort := getenv("DB_PORT", "5432")
	serverPort := getenv("PORT", "8080")

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("Critical: JWT_SECRET is not set")
	}

	// Analytics bucketing zone. Every day/week/month boundary in one request
	// is computed in this zone.
	loc, err := time.LoadLocation(getenv("APP_TIMEZONE", "Local"))
	if err != nil {
		log.Fatalf("Critical: invalid APP_TIMEZONE: %v", err)
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		dbUser, dbPass, dbHost, dbPort, dbName)

	log.Println("Connecting to database...")

	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		log.Fatalf("Critical: Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	log.Println("Database connected successfully.")

	rdb, err := cache.NewRedisClient(
		getenv("REDIS_HOST", "localhost"),
		getenv("REDIS_PORT", "6379"),
		os.Getenv("REDIS_PASSWORD"),
		0,
	)
	if err != nil {
		log.Printf("Redis unavailable, continuing without cache: %v", err)
		rdb = nil
	}

	userRepo := repository.NewPostgresUserRepository(db.DB)
	eventRepo := repository.NewPostgresEventRepository(db)

	var taskRepo domain.TaskRepository = repository.NewPostgresTaskRepository(db)
	if rdb != nil {
		taskRepo = repository.NewCachedTaskRepository(taskRepo, rdb)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reminderWorker := workers.NewReminderWorker(taskRepo, workers.LogNotifier{}, 24*time.Hour)
	reminderWorker.Start(ctx)

	tokenService := services.NewTokenService(jwtSecret, "taskhawk-api", 24*time.Hour, userRepo)
	authService := services.NewAuthService(userRepo, tokenService)
	taskService := services.NewTaskService(taskRepo, reminderWorker)
	calendarService := services.NewCalendarService(eventRepo, taskRepo)
	analyticsService := services.NewAnalyticsService(taskRepo, loc)

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		AuthHandler:      adapterHTTP.NewAuthHandler(authService),
		TaskHandler:      adapterHTTP.NewTaskHandler(taskService),
		CalendarHandler:  adapterHTTP.NewCalendarHandler(calendarService),
		AnalyticsHandler: adapterHTTP.NewAnalyticsHandler(analyticsService, userRepo),
		TokenService:     tokenService,
		DB:               db,
		Redis:            rdb,
		StartTime:        startTime,
	})

	srv := &http.Server{
		Addr:         ":" + serverPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("TaskHawk API running on http://localhost:%s", serverPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Critical server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Stop signal received. Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Forced shutdown error:", err)
	}

	log.Println("Server stopped gracefully.")
}
