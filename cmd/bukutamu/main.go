package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"bukutamu/common/database"
	"bukutamu/common/logger"
	commonmqtt "bukutamu/common/mqtt"
	commonredis "bukutamu/common/redis"
	"bukutamu/internal/config"
	httpapi "bukutamu/internal/http"
	guestmqtt "bukutamu/internal/mqtt"
	"bukutamu/internal/repository"
	"bukutamu/internal/service"
	"bukutamu/internal/store"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "bukutamu")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	loc := cfg.Location()
	now := func() time.Time { return time.Now().In(loc) }
	log.Info("Office timezone", zap.String("timezone", loc.String()))

	// Guest store: Postgres when available, process memory otherwise.
	var db *sql.DB
	var guestsRepo repository.GuestsRepository
	if cfg.DBEnabled {
		if d, err := database.NewPostgresDB(&cfg.Database); err == nil {
			db = d
			guestsRepo = repository.NewPostgresGuestsRepository(db)
			log.Info("DB enabled for bukutamu", zap.String("database", cfg.Database.Database))
		} else {
			log.Warn("DB enabled but connection failed, falling back to memory store", zap.Error(err))
		}
	}
	if guestsRepo == nil {
		guestsRepo = repository.NewMemoryGuestsRepo()
	}

	// Optional Redis for the dashboard cache and submission keys.
	var redisClient *redis.Client
	var kv store.KV
	if cfg.RedisEnabled {
		redisClient = commonredis.NewRedisClient(&cfg.Redis)
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := commonredis.Ping(pingCtx, redisClient); err == nil {
			kv = store.NewRedisKV(redisClient)
			log.Info("Redis enabled", zap.String("addr", cfg.Redis.Addr))
		} else {
			log.Warn("Redis enabled but unreachable, running without cache", zap.Error(err))
			_ = commonredis.Close(redisClient)
			redisClient = nil
		}
		cancel()
	}

	// Admin notification channels.
	var notifiers service.MultiNotifier
	if cfg.Notify.Enabled && cfg.Notify.WebhookURL != "" {
		notifiers = append(notifiers, service.NewWebhookNotifier(cfg.Notify.WebhookURL, cfg.Notify.Timeout, log))
	}
	var mqttClient *commonmqtt.Client
	if cfg.MQTT.Enabled {
		if c, err := commonmqtt.NewClient(&cfg.MQTT.MQTTConfig, log); err == nil {
			mqttClient = c
			notifiers = append(notifiers, guestmqtt.NewGuestEventPublisher(c, cfg.MQTT.Topic, log))
			log.Info("MQTT enabled", zap.String("broker", cfg.MQTT.Broker), zap.String("topic", cfg.MQTT.Topic))
		} else {
			log.Warn("MQTT enabled but connection failed, guest events will not be published", zap.Error(err))
		}
	}
	var notifier service.Notifier = service.NewNoopNotifier(log)
	if len(notifiers) > 0 {
		notifier = notifiers
	}

	dashboardSvc := service.NewDashboardService(guestsRepo, kv, cfg.DashboardCacheTTL, now, log)
	guestSvc := service.NewGuestService(service.GuestServiceDeps{
		GuestsRepo: guestsRepo,
		Dashboard:  dashboardSvc,
		Notifier:   notifier,
		KV:         kv,
		Now:        now,
		Logger:     log,
	})
	reportSvc := service.NewReportService(service.ReportServiceDeps{
		GuestsRepo: guestsRepo,
		Verifier:   service.NewExportVerifier(cfg.Export.Password, cfg.Export.PasswordHash),
		Title:      "Buku Tamu " + cfg.Export.OfficeName,
		FirstYear:  cfg.Export.FirstYear,
		Now:        now,
		Logger:     log,
	})

	router := httpapi.NewRouter(log)
	router.RegisterHealthRoutes()
	router.RegisterGuestRoutes(httpapi.NewGuestHandler(guestSvc, log))
	router.RegisterDashboardRoutes(httpapi.NewDashboardHandler(dashboardSvc, log))
	router.RegisterReportRoutes(httpapi.NewReportHandler(reportSvc, log))

	srv := service.NewServer(cfg.HTTP.Addr, router, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("Shutting down", zap.String("signal", sig.String()))
	case err := <-errCh:
		log.Error("HTTP server stopped", zap.Error(err))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Stop(shutdownCtx)
	if mqttClient != nil {
		mqttClient.Disconnect()
	}
	_ = commonredis.Close(redisClient)
	_ = database.Close(db)
}
