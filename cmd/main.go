package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/lynkr/lynkr-backend/internal/handlers"
	"github.com/lynkr/lynkr-backend/internal/jwt"
	"github.com/lynkr/lynkr-backend/internal/logger"
	"github.com/lynkr/lynkr-backend/internal/middlewares"
	"github.com/lynkr/lynkr-backend/internal/repositories"
	"github.com/lynkr/lynkr-backend/internal/services"
	"github.com/lynkr/lynkr-backend/migrations"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lynkr/lynkr-backend/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title lynkr-backend API
// @version 1.0.0
// @description Link-in-bio backend: username claims, public profiles and click analytics
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns, profileCacheExp,
		kafkaBrokers, kafkaTopic,
		jwtSecret, jwtExp,
		rateLimitRPS, rateLimitBurst,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns, profileCacheExp,
		kafkaBrokers, kafkaTopic,
		jwtSecret, jwtExp,
		rateLimitRPS, rateLimitBurst,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// all application, database, Redis, Kafka, JWT, and rate limiting
// configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns, profileCacheExp int,
	kafkaBrokers, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
	rateLimitRPS float64, rateLimitBurst int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "lynkr")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}
	if profileCacheExp, err = strconv.Atoi(getEnv("PROFILE_CACHE_EXP_SECOND", "60")); err != nil {
		return
	}

	// Kafka config; empty brokers disables event publishing
	kafkaBrokers = getEnv("KAFKA_BROKERS", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "lynkr-events")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	// Rate limiting for public profile traffic
	if rateLimitRPS, err = strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "10"), 64); err != nil {
		return
	}
	if rateLimitBurst, err = strconv.Atoi(getEnv("RATE_LIMIT_BURST", "20")); err != nil {
		return
	}

	return
}

// runMigrations applies the embedded schema migrations.
func runMigrations(databaseURL string) error {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// run initializes the logger, database, Redis, Kafka, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns, profileCacheExp int,
	kafkaBrokers, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
	rateLimitRPS float64, rateLimitBurst int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Apply schema migrations
	if err := runMigrations(dsn); err != nil {
		logger.Log.Fatal("Migration error:", err)
	}
	logger.Log.Info("Schema migrations applied")

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for downstream event consumers, optional
	var kafkaWriter services.KafkaWriter
	if kafkaBrokers != "" {
		writer := &kafka.Writer{
			Addr:     kafka.TCP(strings.Split(kafkaBrokers, ",")...),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer writer.Close()
		kafkaWriter = writer
		logger.Log.Infof("Kafka publishing enabled on topic %s", kafkaTopic)
	}

	// Initialize JWT service
	jwt := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	linkReadRepo := repositories.NewLinkReadRepository(db)
	eventWriteRepo := repositories.NewEventWriteRepository(db)
	eventReadRepo := repositories.NewEventReadRepository(db)
	profileCacheRepo := repositories.NewProfileCacheRepository(rdb, time.Duration(profileCacheExp)*time.Second)

	// Initialize services
	identityService := services.NewIdentityService(userWriteRepo)
	usernameService := services.NewUsernameService(userReadRepo, userWriteRepo, profileCacheRepo)
	profileService := services.NewProfileService(userReadRepo, linkReadRepo, profileCacheRepo)
	analyticsService := services.NewAnalyticsService(eventReadRepo, linkReadRepo)
	eventService := services.NewEventService(eventWriteRepo, eventWriteRepo, kafkaWriter)
	eventService.Start()
	defer eventService.Stop()

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(identityService, jwt)
	checkUsernameHandler := handlers.NewCheckUsernameHandler(usernameService)
	claimUsernameHandler := handlers.NewClaimUsernameHandler(usernameService, jwt)
	getProfileHandler := handlers.NewGetProfileHandler(profileService, eventService)
	getOwnProfileHandler := handlers.NewGetOwnProfileHandler(profileService, jwt)
	clickRedirectHandler := handlers.NewClickRedirectHandler(linkReadRepo, eventService)
	getAnalyticsHandler := handlers.NewGetAnalyticsHandler(analyticsService, profileService, jwt)
	getTopLinksHandler := handlers.NewGetTopLinksHandler(analyticsService, profileService, jwt)
	getDailyVisitsHandler := handlers.NewGetDailyVisitsHandler(analyticsService, profileService, jwt)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	// Protected routes with JWT middleware
	authMiddleware := middlewares.AuthMiddleware(jwt)
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/session", sessionHandler)
		r.Get("/username/check", checkUsernameHandler)
		r.Post("/username/claim", claimUsernameHandler)
		r.Get("/profile/me", getOwnProfileHandler)
		r.Get("/analytics", getAnalyticsHandler)
		r.Get("/analytics/links/top", getTopLinksHandler)
		r.Get("/analytics/visits/daily", getDailyVisitsHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	// Public visitor-facing routes, rate limited per client IP
	rateLimiter := middlewares.NewRateLimiter(middlewares.RateLimiterConfig{
		RequestsPerSecond: rateLimitRPS,
		BurstSize:         rateLimitBurst,
		CleanupInterval:   time.Minute,
	})
	r.Group(func(r chi.Router) {
		r.Use(rateLimiter.Middleware)
		r.Get("/r/{linkID}", clickRedirectHandler)
		r.Get("/{username}", getProfileHandler)
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
