// Package main - точка входа HTTP-сервера SOLID Go.
//
// Сервер поднимает все пять примеров как работающие эндпоинты:
// - журнал студентов (Single Responsibility)
// - расчёт скидок (Open/Closed)
// - отправка уведомлений (Liskov Substitution)
// - генерация отчётов (Interface Segregation)
// - журналирование через абстракцию (Dependency Inversion)
//
// Архитектура следует принципам Clean Architecture и DDD:
// - Domain: чистая бизнес-логика без внешних зависимостей
// - Application: обработчики доменных событий
// - Infrastructure: реализация репозиториев, кеш, шина событий
// - Interface: HTTP endpoints
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alem-hub/solid-go/config"

	// Domain layer
	"github.com/alem-hub/solid-go/internal/domain/logging"
	"github.com/alem-hub/solid-go/internal/domain/notification"
	"github.com/alem-hub/solid-go/internal/domain/pricing"
	"github.com/alem-hub/solid-go/internal/domain/report"
	"github.com/alem-hub/solid-go/internal/domain/shared"
	"github.com/alem-hub/solid-go/internal/domain/student"

	// Application layer
	"github.com/alem-hub/solid-go/internal/application/eventhandler"

	// Infrastructure layer
	"github.com/alem-hub/solid-go/internal/infrastructure/messaging"
	"github.com/alem-hub/solid-go/internal/infrastructure/persistence/memory"
	"github.com/alem-hub/solid-go/internal/infrastructure/persistence/postgres"
	"github.com/alem-hub/solid-go/internal/infrastructure/persistence/redis"
	"github.com/alem-hub/solid-go/internal/infrastructure/service"

	// Interface layer
	httpserver "github.com/alem-hub/solid-go/internal/interface/http"

	// Packages
	"github.com/alem-hub/solid-go/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// MAIN
// ══════════════════════════════════════════════════════════════════════════════

func main() {
	// Создаём корневой контекст с возможностью отмены
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запускаем приложение
	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// ─────────────────────────────────────────────────────────────────────────
	// 1. ЗАГРУЗКА КОНФИГУРАЦИИ
	// ─────────────────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 2. НАСТРОЙКА ЛОГИРОВАНИЯ
	// ─────────────────────────────────────────────────────────────────────────
	log := logger.New(logger.Options{
		Output:    os.Stdout,
		Level:     logger.ParseLevel(cfg.Logging.Level),
		AddCaller: cfg.Logging.AddCaller,
	})
	log.Info("starting solid-go server",
		logger.String("env", string(cfg.App.Environment)),
		logger.Bool("debug", cfg.App.Debug),
		logger.String("storage", string(cfg.App.Storage)),
	)

	// ─────────────────────────────────────────────────────────────────────────
	// 3. ВЫБОР ХРАНИЛИЩА ЖУРНАЛА СТУДЕНТОВ
	// ─────────────────────────────────────────────────────────────────────────
	var rosterRepo student.Repository
	var healthCheck func(ctx context.Context) error

	switch cfg.App.Storage {
	case config.StoragePostgres:
		log.Info("connecting to database...")
		dbConn, err := postgres.NewConnectionFromURL(ctx, cfg.Database.URL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer func() {
			log.Info("closing database connection...")
			dbConn.Close()
		}()

		if err := dbConn.Ping(ctx); err != nil {
			return fmt.Errorf("database ping failed: %w", err)
		}
		log.Info("database connection established")

		// Миграции
		log.Info("running database migrations...")
		migrator := postgres.NewMigrator(dbConn)
		if err := migrator.Migrate(ctx); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}

		rosterRepo = postgres.NewStudentRepository(dbConn)
		healthCheck = dbConn.Ping

	default:
		log.Info("using in-memory roster storage")
		rosterRepo = memory.NewStudentRepository()
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 4. КЕШИРОВАНИЕ ЧЕРЕЗ REDIS (опционально)
	// ─────────────────────────────────────────────────────────────────────────
	if cfg.Redis.Enabled {
		log.Info("connecting to Redis...")
		redisCfg := redis.DefaultConfig()
		redisCfg.Host = cfg.Redis.Host
		redisCfg.Port = cfg.Redis.Port
		redisCfg.Password = cfg.Redis.Password
		redisCfg.DB = cfg.Redis.DB

		redisCache, err := redis.NewCache(redisCfg)
		if err != nil {
			log.Warn("failed to connect to Redis, caching disabled", logger.Err(err))
		} else {
			defer func() {
				log.Info("closing Redis connection...")
				_ = redisCache.Close()
			}()
			rosterRepo = redis.NewRosterCache(rosterRepo, redisCache, log)
			log.Info("Redis roster cache enabled")
		}
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 5. ШИНА СОБЫТИЙ И ОБРАБОТЧИКИ
	// ─────────────────────────────────────────────────────────────────────────
	log.Info("initializing event bus...")
	eventBus := messaging.NewInMemoryBus(log)
	defer func() {
		log.Info("closing event bus...")
		eventBus.Close()
	}()

	// Каналы уведомлений. Оба пишут в stdout: любой из них можно подставить
	// везде, где ожидается notification.Channel.
	channels := map[notification.ChannelType]notification.Channel{
		notification.ChannelTypeEmail: notification.NewEmailChannel(os.Stdout),
		notification.ChannelTypeSMS:   notification.NewSMSChannel(os.Stdout),
	}

	// Приветственное уведомление при зачислении студента
	welcome := eventhandler.NewWelcomeOnEnroll(channels[notification.ChannelTypeEmail], log)
	if err := eventBus.Subscribe(shared.EventStudentEnrolled, welcome); err != nil {
		return fmt.Errorf("failed to subscribe welcome handler: %w", err)
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 6. ДОМЕННЫЕ СЕРВИСЫ
	// ─────────────────────────────────────────────────────────────────────────
	log.Info("initializing domain services...")

	rosterService, err := student.NewService(rosterRepo, service.NewUUIDGenerator(), eventBus)
	if err != nil {
		return fmt.Errorf("failed to create roster service: %w", err)
	}

	inventory := pricing.NewInventoryService()

	// Recorder зависит от абстракции logging.Logger; здесь подставляем
	// адаптер структурированного логгера вместо консольного.
	recorder, err := logging.NewRecorder(service.NewStructuredLogger(log))
	if err != nil {
		return fmt.Errorf("failed to create recorder: %w", err)
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 7. HTTP СЕРВЕР
	// ─────────────────────────────────────────────────────────────────────────
	httpCfg := httpserver.DefaultConfig()
	httpCfg.Host = cfg.HTTP.Host
	httpCfg.Port = cfg.HTTP.Port

	server := httpserver.NewServer(httpCfg, httpserver.Dependencies{
		Roster:         rosterService,
		Inventory:      inventory,
		DefaultPercent: cfg.Pricing.DefaultPercent,
		Channels:       channels,
		Summary:        report.SummaryReport{},
		Full:           report.FullReport{},
		Recorder:       recorder,
		Logger:         log,
		HealthCheck:    healthCheck,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	// ─────────────────────────────────────────────────────────────────────────
	// 8. GRACEFUL SHUTDOWN
	// ─────────────────────────────────────────────────────────────────────────
	log.Info("solid-go server is running", logger.String("http_address", httpCfg.Address()))

	// Ожидаем сигнал завершения или ошибку
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	select {
	case sig := <-sigCh:
		log.Info("received shutdown signal", logger.String("signal", sig.String()))
	case err := <-errCh:
		log.Error("server error", logger.Err(err))
		return err
	}

	// Начинаем graceful shutdown
	log.Info("starting graceful shutdown...",
		logger.String("timeout", cfg.App.ShutdownTimeout.String()))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to stop HTTP server gracefully", logger.Err(err))
		return err
	}

	// Шина событий и соединения закроются через defer
	log.Info("shutdown completed successfully")
	return nil
}
