// File: cmd/auth-service/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/overskilled/backend-movie-api/internal/catalog"
	"github.com/overskilled/backend-movie-api/internal/config"
	"github.com/overskilled/backend-movie-api/internal/domain/interfaces"
	"github.com/overskilled/backend-movie-api/internal/events/kafka"
	httpHandler "github.com/overskilled/backend-movie-api/internal/handler/http"
	"github.com/overskilled/backend-movie-api/internal/infrastructure/database"
	mongoInfra "github.com/overskilled/backend-movie-api/internal/infrastructure/database/mongo"
	"github.com/overskilled/backend-movie-api/internal/infrastructure/database/postgres"
	redisInfra "github.com/overskilled/backend-movie-api/internal/infrastructure/database/redis"
	"github.com/overskilled/backend-movie-api/internal/infrastructure/security"
	"github.com/overskilled/backend-movie-api/internal/service"
	"github.com/overskilled/backend-movie-api/internal/utils/logger"
)

func main() {
	// A missing .env file is fine; config falls back to defaults and the
	// process environment.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync() //nolint:errcheck

	if err := run(cfg, log); err != nil {
		log.Fatal("Service terminated", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Database.AutoMigrate {
		if err := runMigrations(cfg.Database, log); err != nil {
			return fmt.Errorf("migrations failed: %w", err)
		}
	}

	pool, err := postgres.NewDBPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("postgres connection failed: %w", err)
	}
	defer pool.Close()
	log.Info("Connected to PostgreSQL", zap.String("host", cfg.Database.Host))

	users := database.NewPgxUserRepository(pool)
	passwords := security.NewBcryptPasswordService()
	totp := security.NewTOTPService(cfg.MFA.TOTPIssuerName)

	tokens, err := security.NewTokenManager(cfg.JWT)
	if err != nil {
		return fmt.Errorf("token manager setup failed: %w", err)
	}

	var events interfaces.EventPublisher = kafka.NopPublisher{}
	if cfg.Kafka.Enabled {
		producer, err := kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic, "/auth-service", log)
		if err != nil {
			return fmt.Errorf("kafka producer setup failed: %w", err)
		}
		defer producer.Close() //nolint:errcheck
		events = producer
		log.Info("Kafka producer ready", zap.Strings("brokers", cfg.Kafka.Brokers))
	}

	authService := service.NewAuthService(users, passwords, tokens, events, log)
	twoFAService := service.NewTwoFactorService(users, totp, tokens, events, log)
	userService := service.NewUserService(users, passwords, log)
	guard := service.NewAccessGuard(users, tokens, log)

	catalogHandler, cleanup := setupCatalog(ctx, cfg, log)
	defer cleanup()

	router := httpHandler.NewRouter(httpHandler.RouterDeps{
		Auth:    httpHandler.NewAuthHandler(authService, twoFAService, log),
		Users:   httpHandler.NewUserHandler(userService, log),
		Catalog: catalogHandler,
		Guard:   guard,
		Logger:  log,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", zap.Int("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	log.Info("Shutdown complete")
	return nil
}

// setupCatalog wires the optional movie catalog. The catalog is a read-only
// side surface: when Mongo is unreachable the service still starts, just
// without the /movies routes, and a broken Redis only disables caching.
func setupCatalog(ctx context.Context, cfg *config.Config, log *zap.Logger) (*httpHandler.CatalogHandler, func()) {
	mongoClient, err := mongoInfra.NewClient(ctx, cfg.Mongo)
	if err != nil {
		log.Warn("Mongo unavailable, catalog disabled", zap.Error(err))
		return nil, func() {}
	}
	log.Info("Connected to MongoDB", zap.String("database", cfg.Mongo.Database))

	var cache catalog.PageCache = catalog.NopPageCache{}
	redisClient, err := redisInfra.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		log.Warn("Redis unavailable, catalog cache disabled", zap.Error(err))
	} else {
		cache = catalog.NewRedisPageCache(redisClient, cfg.Redis.CacheTTL, log)
	}

	movies := catalog.NewMongoMovieRepository(mongoClient.Database(cfg.Mongo.Database), cfg.Mongo.MoviesCollection)
	catalogService := catalog.NewService(movies, cache, log)

	cleanup := func() {
		if redisClient != nil {
			_ = redisClient.Close()
		}
		_ = mongoClient.Disconnect(context.Background())
	}
	return httpHandler.NewCatalogHandler(catalogService, log), cleanup
}

func runMigrations(cfg config.DatabaseConfig, log *zap.Logger) error {
	// The migrate pgx driver registers the pgx5 scheme.
	databaseURL := strings.Replace(postgres.DSN(cfg), "postgres://", "pgx5://", 1)

	m, err := migrate.New("file://migrations", databaseURL)
	if err != nil {
		return err
	}
	defer m.Close() //nolint:errcheck

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("Migrations up to date")
			return nil
		}
		return err
	}

	log.Info("Migrations applied")
	return nil
}
