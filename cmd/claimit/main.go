package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/claimithub/claimit/internal/cache"
	"github.com/claimithub/claimit/internal/claims"
	"github.com/claimithub/claimit/internal/clock"
	"github.com/claimithub/claimit/internal/config"
	"github.com/claimithub/claimit/internal/db"
	"github.com/claimithub/claimit/internal/kafka"
	"github.com/claimithub/claimit/internal/logger"
	"github.com/claimithub/claimit/internal/notify"
	"github.com/claimithub/claimit/internal/repository/postgresql"
	"github.com/claimithub/claimit/internal/scheduler"
	"github.com/claimithub/claimit/internal/search"
	"github.com/claimithub/claimit/internal/server"
	"github.com/claimithub/claimit/internal/storage"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := logger.New()
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config", zap.Error(err))
	}

	database, err := db.NewDb(ctx, cfg.DSN())
	if err != nil {
		log.Fatal("failed to init database", zap.Error(err))
	}
	defer database.GetPool().Close()

	itemRepo := postgresql.NewItemRepo(database)
	claimRepo := postgresql.NewClaimRequestRepo(database)
	historyRepo := postgresql.NewClaimHistoryRepo(database)
	userRepo := postgresql.NewUserRepo(database)
	adminRepo := postgresql.NewAdminRepo(database)
	categoryRepo := postgresql.NewCategoryRepo(database)
	outboxRepo := postgresql.NewOutboxTaskRepo(database)

	categoryCache := cache.NewCategoryCache(categoryRepo, log)
	if err := categoryCache.LoadInitialData(ctx); err != nil {
		log.Fatal("failed to warm category cache", zap.Error(err))
	}

	store := storage.NewPostgresStorage(itemRepo, claimRepo, historyRepo, userRepo, categoryRepo, categoryCache)

	notifier := notify.NewOutboxNotifier(outboxRepo, cfg.KafkaTopic, cfg.AdminEmail, log)

	clk := clock.System{}
	intake := claims.NewIntake(store, clk, log)
	workflow := claims.NewWorkflow(store, notifier, clk, log)
	engine := claims.NewEngine(store, notifier, clk, cfg.AdminEmail, log)
	searchSvc := search.NewService(store, log)

	sched := scheduler.New(store, notifier, clk, cfg.AdminEmail, log)
	if err := sched.Start(ctx, cfg.SweepInterval); err != nil {
		log.Fatal("failed to start expiration scheduler", zap.Error(err))
	}
	defer sched.Stop()

	var producer kafka.Producer
	if len(cfg.KafkaBrokers) == 0 {
		log.Info("KAFKA_BROKERS not set, printing notifications to stdout")
		producer = kafka.NewConsoleProducer()
	} else {
		producer = kafka.NewWriterProducer(cfg.KafkaBrokers)
	}
	publisher := kafka.NewPublisher(database, outboxRepo, producer, kafka.PublisherConfig{
		PollInterval: 2 * time.Second,
		BatchSize:    50,
		MaxAttempts:  5,
	}, log)
	go publisher.Run(ctx)
	defer publisher.Shutdown()

	srv := server.New(intake, workflow, engine, sched, searchSvc, store, adminRepo, log)

	go func() {
		if err := srv.Run(ctx, cfg.HTTPPort); err != nil {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown failed", zap.Error(err))
	}
	log.Info("server gracefully stopped")
}
