package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"flight-fare-ledger/config"
	"flight-fare-ledger/internal/cache"
	"flight-fare-ledger/internal/database"
	"flight-fare-ledger/internal/handler"
	"flight-fare-ledger/internal/notifier"
	"flight-fare-ledger/internal/queue"
	"flight-fare-ledger/internal/repository"
	"flight-fare-ledger/internal/repository/memory"
	"flight-fare-ledger/internal/service"
	"flight-fare-ledger/internal/worker"
	"flight-fare-ledger/pkg/logger"
	"flight-fare-ledger/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type repositories struct {
	inventories repository.InventoryRepository
	fares       repository.FareRepository
	bookings    repository.BookingRepository
	quotes      repository.QuoteRepository
	mirror      cache.FareAvailabilityCache
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.L.Fatal("Failed to load config", zap.Error(err))
	}
	if err := logger.Init(logger.Options{
		Level:      cfg.Log.Level,
		FilePath:   cfg.Log.FilePath,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	}); err != nil {
		logger.L.Fatal("Failed to init logger", zap.Error(err))
	}
	defer logger.Sync()
	log := logger.WithComponent("main")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var rdb *redis.Client
	if cfg.App.StoreDriver == config.StoreDriverPostgres || cfg.Notify.Queue == config.QueueRedis {
		rdb, err = database.InitRedis(ctx, &cfg.Redis)
		if err != nil {
			log.Fatal("Failed to initialize redis", zap.Error(err))
		}
		defer rdb.Close()
	}

	var repos repositories
	switch cfg.App.StoreDriver {
	case config.StoreDriverPostgres:
		pool, err := database.InitDatabase(ctx, &cfg.Database)
		if err != nil {
			log.Fatal("Failed to initialize database", zap.Error(err))
		}
		defer pool.Close()

		if cfg.App.AutoMigrate {
			if err := database.Migrate(ctx, pool); err != nil {
				log.Fatal("Failed to apply schema", zap.Error(err))
			}
		}
		repos = repositories{
			inventories: repository.NewInventoryRepository(pool),
			fares:       repository.NewFareRepository(pool),
			bookings:    repository.NewBookingRepository(pool),
			quotes:      repository.NewRedisQuoteRepository(rdb),
			mirror:      cache.NewRedisFareAvailabilityCache(rdb, cfg.Ledger.AvailabilityTTL),
		}
	default:
		log.Warn("Using in-memory store, data is lost on restart")
		store := memory.NewStore()
		repos = repositories{
			inventories: store.Inventories(),
			fares:       store.Fares(),
			bookings:    store.Bookings(),
			quotes:      memory.NewQuoteRepository(nil),
		}
	}

	var events queue.BookingEventQueue
	if cfg.Notify.Queue == config.QueueRedis {
		hostname, _ := os.Hostname()
		events, err = queue.NewRedisStreamBookingQueue(ctx, rdb, hostname, &queue.RedisStreamQueueConfig{
			ClaimMinIdleTime: cfg.Notify.ClaimMinIdleTime,
			MaxRetryCount:    cfg.Notify.MaxRetryCount,
		})
		if err != nil {
			log.Fatal("Failed to initialize booking event queue", zap.Error(err))
		}
	} else {
		events = queue.NewBookingEventQueue(cfg.Notify.BufferSize, &queue.MemoryQueueConfig{
			RetryDelay:    cfg.Notify.ClaimMinIdleTime,
			MaxRetryCount: cfg.Notify.MaxRetryCount,
		})
	}

	var sender notifier.Notifier = notifier.NewLogNotifier()
	if cfg.Notify.GmailEnabled() {
		gmailNotifier, err := notifier.NewGmailNotifier(ctx,
			cfg.Notify.GmailClientID, cfg.Notify.GmailClientSecret, cfg.Notify.GmailRefreshToken, cfg.Notify.GmailSender)
		if err != nil {
			log.Fatal("Failed to initialize gmail notifier", zap.Error(err))
		}
		sender = gmailNotifier
	}

	m := metrics.New(prometheus.DefaultRegisterer)
	clock := service.Clock(nil)

	inventoryService := service.NewInventoryService(repos.inventories, repos.fares, m, clock)
	ledgerService := service.NewLedgerService(repos.inventories, repos.fares, repos.mirror, m, clock)
	bookingService := service.NewBookingService(
		repos.inventories, repos.fares, repos.quotes, repos.bookings,
		repos.mirror, events, m,
		service.BookingConfig{QuoteTTL: cfg.Ledger.QuoteTTL, QuoteRetention: cfg.Ledger.QuoteRetention},
		clock,
	)

	notificationWorker := worker.NewNotificationWorker(sender, events, m)
	if err := notificationWorker.Start(ctx); err != nil {
		log.Fatal("Failed to start notification worker", zap.Error(err))
	}

	gin.SetMode(cfg.App.GinMode)
	router := handler.NewRouter(prometheus.DefaultGatherer,
		handler.NewInventoryHandler(inventoryService, ledgerService),
		handler.NewFareHandler(ledgerService),
		handler.NewBookingHandler(bookingService),
	)

	srv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: router,
	}
	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr), zap.String("store", cfg.App.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown failed", zap.Error(err))
	}

	select {
	case <-notificationWorker.Done():
	case <-shutdownCtx.Done():
		log.Warn("Notification worker did not stop in time")
	}
}
