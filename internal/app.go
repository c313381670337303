package internal

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	bcrypt_hasher "wareland-api/internal/adapters/bcrypt_hasher"
	token_adapter "wareland-api/internal/adapters/jwt"
	logger_adapter "wareland-api/internal/adapters/logger"
	postgres_adapter "wareland-api/internal/adapters/postgres"
	rabbitmq_adapter "wareland-api/internal/adapters/rabbitmq"
	"wareland-api/internal/adapters/redis_adapter"
	"wareland-api/internal/adapters/rest"
	"wareland-api/internal/configs"
	"wareland-api/internal/contextkeys"
	"wareland-api/internal/core/port"
	"wareland-api/internal/core/port/usecases_port"
	"wareland-api/internal/core/usecase"
	"wareland-api/internal/migrations"
	fluentlogger "wareland-api/pkg/fluent_logger"
	"wareland-api/pkg/postgres"
	"wareland-api/pkg/rabbitmq/rabbitmq_common"
	"wareland-api/pkg/rabbitmq/rabbitmq_producer"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	redis "github.com/redis/go-redis/v9"
)

const tokenIssuer = "wareland-api"

// App is the composition root of the service.
type App struct {
	config    *configs.AppConfig
	dbPool    *pgxpool.Pool
	apiServer *rest.Server

	redisClient     *redis.Client
	rabbitConn      *rabbitmq_common.ConnectionManager
	eventsPublisher *rabbitmq_producer.Publisher

	pruneRevokedTokensUC usecases_port.PruneRevokedTokensUseCasePort

	fluentClient *fluent.Fluent
	logger       port.LoggerPort
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- logging ---
	var activeLoggers []port.LoggerPort

	stdoutLevel, ok := logger_adapter.ParseLevel(appConfig.StdoutLogger.Level)
	if !ok {
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", appConfig.StdoutLogger.Level)
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    stdoutLevel,
		IsJSON:   false,
		UseColor: true,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentLevel, _ := logger_adapter.ParseLevel(appConfig.FluentBit.Level)
		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, fluentLevel)
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Debug("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	application := &App{
		config:       appConfig,
		fluentClient: fluentClient,
		logger:       appLogger,
	}
	if err := application.init(baseLogger); err != nil {
		application.closeResources()
		return nil, err
	}
	return application, nil
}

// init wires everything below the logger. On error the caller releases
// whatever was already opened.
func (a *App) init(baseLogger port.LoggerPort) error {
	cfg := a.config
	initCtx := contextkeys.ContextWithLogger(context.Background(), baseLogger)

	if cfg.Migrations.Auto {
		runner, err := migrations.NewRunner(cfg.Database.URL, baseLogger)
		if err != nil {
			a.logger.Error("Failed to create migrations runner", err, nil)
			return fmt.Errorf("failed to create migrations runner: %w", err)
		}
		if err := runner.Up(initCtx); err != nil {
			a.logger.Error("Failed to apply migrations", err, nil)
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
	}

	dbPool, err := postgres.NewClient(initCtx, postgres.Config{DatabaseURL: cfg.Database.URL})
	if err != nil {
		a.logger.Error("Failed to connect to PostgreSQL", err, nil)
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	a.dbPool = dbPool
	a.logger.Debug("Successfully connected to PostgreSQL pool!", nil)

	propertyStore, err := postgres_adapter.NewPropertyStore(dbPool)
	if err != nil {
		a.logger.Error("Failed to create property store", err, nil)
		return fmt.Errorf("failed to create property store: %w", err)
	}
	if _, err := propertyStore.CheckKeywordFolding(initCtx); err != nil {
		a.logger.Warn("Could not verify keyword case folding", port.Fields{"error": err.Error()})
	}
	userRepository, err := postgres_adapter.NewUserRepository(dbPool)
	if err != nil {
		a.logger.Error("Failed to create user repository", err, nil)
		return fmt.Errorf("failed to create user repository: %w", err)
	}
	durableRevoked, err := postgres_adapter.NewRevokedTokenStore(dbPool)
	if err != nil {
		a.logger.Error("Failed to create revoked token store", err, nil)
		return fmt.Errorf("failed to create revoked token store: %w", err)
	}

	var revokedStore port.RevokedTokenStorePort = durableRevoked
	if cfg.Redis.Addr != "" {
		redisClient, err := redis_adapter.NewClient(initCtx, redis_adapter.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			a.logger.Error("Failed to connect to Redis", err, nil)
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		a.redisClient = redisClient

		cachedRevoked, err := redis_adapter.NewRevokedTokenStore(redisClient, durableRevoked)
		if err != nil {
			a.logger.Error("Failed to create cached revoked token store", err, nil)
			return fmt.Errorf("failed to create cached revoked token store: %w", err)
		}
		revokedStore = cachedRevoked
		a.logger.Debug("Revocation cache enabled", port.Fields{"redis_addr": cfg.Redis.Addr})
	}

	tokenProvider, err := token_adapter.NewTokenProvider(cfg.Jwt.Secret, cfg.Jwt.Expiration, tokenIssuer)
	if err != nil {
		a.logger.Error("Failed to create token provider", err, nil)
		return fmt.Errorf("failed to create token provider: %w", err)
	}
	hasher, err := bcrypt_hasher.NewHasher(cfg.BcryptCost)
	if err != nil {
		a.logger.Error("Failed to create password hasher", err, nil)
		return fmt.Errorf("failed to create password hasher: %w", err)
	}

	var authEvents port.AuthEventsPublisherPort = rabbitmq_adapter.NoopAuthEventsPublisher{}
	if cfg.RabbitMQ.URL != "" {
		authEvents, err = a.initAuthEventsPublisher(baseLogger)
		if err != nil {
			return err
		}
	}
	a.logger.Debug("All persistence and service adapters initialized.", nil)

	listUC := usecase.NewListPropertiesUseCase(propertyStore)
	searchUC := usecase.NewSearchPropertiesUseCase(propertyStore)
	detailUC := usecase.NewGetPropertyDetailUseCase(propertyStore)
	registerUC := usecase.NewRegisterUserUseCase(userRepository, hasher, tokenProvider, authEvents)
	loginUC := usecase.NewLoginUserUseCase(userRepository, hasher, tokenProvider, authEvents)
	logoutUC := usecase.NewLogoutUserUseCase(tokenProvider, revokedStore, authEvents)
	getProfileUC := usecase.NewGetProfileUseCase(userRepository)
	updateProfileUC := usecase.NewUpdateProfileUseCase(userRepository, hasher, authEvents)
	a.pruneRevokedTokensUC = usecase.NewPruneRevokedTokensUseCase(revokedStore)
	a.logger.Debug("All use cases initialized.", nil)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := rest.NewMetrics(registry)
	if err != nil {
		a.logger.Error("Failed to register HTTP metrics", err, nil)
		return fmt.Errorf("failed to register http metrics: %w", err)
	}

	a.apiServer = rest.NewServer(rest.ServerConfig{
		Port:           cfg.Rest.Port,
		AllowedOrigins: cfg.Rest.AllowedOrigins,
	}, rest.Handlers{
		Catalog:    rest.NewCatalogHandler(listUC, searchUC, detailUC),
		Auth:       rest.NewAuthHandlers(registerUC, loginUC, logoutUC),
		Users:      rest.NewUserHandlers(getProfileUC, updateProfileUC),
		AuthFilter: rest.NewAuthFilter(tokenProvider, revokedStore),
		Health:     rest.HealthHandler(dbPool),
		Metrics:    metrics,
		Gatherer:   registry,
	}, baseLogger)
	a.logger.Debug("REST API server configured.", nil)

	return nil
}

func (a *App) initAuthEventsPublisher(baseLogger port.LoggerPort) (port.AuthEventsPublisherPort, error) {
	rabbitLogger := rabbitmq_adapter.NewPkgLoggerBridge(baseLogger.WithFields(port.Fields{"component": "rabbitmq"}))

	connManager, err := rabbitmq_common.NewConnectionManager(rabbitmq_common.Config{URL: a.config.RabbitMQ.URL}, rabbitLogger)
	if err != nil {
		a.logger.Error("Failed to connect to RabbitMQ", err, nil)
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}
	a.rabbitConn = connManager

	producer, err := rabbitmq_producer.NewPublisher(rabbitmq_producer.PublisherConfig{
		Config:                   rabbitmq_common.Config{URL: a.config.RabbitMQ.URL},
		ExchangeName:             a.config.RabbitMQ.AuthExchange,
		ExchangeType:             "topic",
		DurableExchange:          true,
		DeclareExchangeIfMissing: true,
		Logger:                   rabbitLogger,
	}, connManager)
	if err != nil {
		a.logger.Error("Failed to create auth events producer", err, nil)
		return nil, fmt.Errorf("failed to create auth events producer: %w", err)
	}
	a.eventsPublisher = producer

	publisher, err := rabbitmq_adapter.NewAuthEventsPublisher(producer)
	if err != nil {
		a.logger.Error("Failed to create auth events publisher", err, nil)
		return nil, fmt.Errorf("failed to create auth events publisher: %w", err)
	}
	a.logger.Debug("Auth events publishing enabled", port.Fields{"exchange": a.config.RabbitMQ.AuthExchange})
	return publisher, nil
}

// Run starts every component and blocks until a signal or a fatal error.
func (a *App) Run() error {
	appCtx, cancelApp := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	defer func() {
		a.logger.Debug("Shutdown sequence initiated...", nil)

		if a.apiServer != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			if err := a.apiServer.Stop(shutdownCtx); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
			cancel()
		}

		cancelApp()
		wg.Wait()
		a.closeResources()
	}()

	a.logger.Info("Application is starting...", nil)

	errorsCh := make(chan error, 1)

	wg.Add(1)
	go func() {
		defer wg.Done()
		a.runRevokedTokenPruner(appCtx)
	}()

	go func() {
		a.logger.Debug("Starting HTTP server...", port.Fields{"port": a.config.Rest.Port})
		if err := a.apiServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errorsCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Debug("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case <-appCtx.Done():
		a.logger.Warn("Context was cancelled unexpectedly, shutting down...", nil)
	case err := <-errorsCh:
		a.logger.Error("Server failed to start, shutting down", err, nil)
		return err
	}

	return nil
}

// runRevokedTokenPruner drops expired revocations on a fixed interval.
func (a *App) runRevokedTokenPruner(ctx context.Context) {
	interval := a.config.RevokedTokenPruneInterval
	if interval <= 0 {
		a.logger.Info("Revoked token pruning disabled", nil)
		return
	}
	pruneLogger := a.logger.WithFields(port.Fields{"component": "RevokedTokenPruner"})
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			pruneLogger.Debug("Pruner stopped", nil)
			return
		case <-ticker.C:
			runCtx, cancel := context.WithTimeout(contextkeys.ContextWithLogger(ctx, pruneLogger), time.Minute)
			if _, err := a.pruneRevokedTokensUC.Execute(runCtx); err != nil {
				pruneLogger.Error("Failed to prune revoked tokens", err, nil)
			}
			cancel()
		}
	}
}

func (a *App) closeResources() {
	if a.eventsPublisher != nil {
		if err := a.eventsPublisher.Close(); err != nil {
			a.logger.Error("Error closing auth events producer", err, nil)
		}
	}
	if a.rabbitConn != nil {
		if err := a.rabbitConn.Close(); err != nil {
			a.logger.Error("Error closing RabbitMQ connection", err, nil)
		}
	}
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Error("Error closing Redis client", err, nil)
		}
	}
	if a.dbPool != nil {
		a.dbPool.Close()
		a.logger.Debug("PostgreSQL pool closed.", nil)
	}

	a.logger.Info("Application shut down gracefully.", nil)

	if a.fluentClient != nil {
		if err := a.fluentClient.Close(); err != nil {
			// fluent may already be gone, so this goes to stdout
			fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
		}
	}
}
