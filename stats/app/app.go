package app

import (
	"context"
	"fmt"
	"net"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/carznow/rental-service/pkg/kafka"
	"github.com/carznow/rental-service/pkg/logger"
	"github.com/carznow/rental-service/pkg/postgres"
	"github.com/carznow/rental-service/stats/config"
	"github.com/carznow/rental-service/stats/internal/handler"
	"github.com/carznow/rental-service/stats/internal/repository"
	"github.com/carznow/rental-service/stats/internal/server"
	"github.com/carznow/rental-service/stats/internal/service"
	"github.com/carznow/rental-service/stats/migrations"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "stats")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return fmt.Errorf("db init %w", err)
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return fmt.Errorf("repo init %w", err)
	}
	svc := service.NewService(repo, log)

	consumer, err := kafka.NewConsumer(cfg.Kafka, kafka.StatsConsumerGroup)
	if err != nil {
		return fmt.Errorf("kafka.NewConsumer %w", err)
	}

	h := handler.New(svc, cfg.Auth, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run()
	})
	g.Go(func() error {
		kafka.Consume(gctx, consumer, handler.NewConsumer(svc.Stats, log), log, kafka.BookingEventsTopic)
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()

		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		return srv.Stop(closeCtx)
	})

	err = g.Wait()

	if closeErr := consumer.Close(); closeErr != nil {
		log.Error("consumer.Close", zap.Error(closeErr))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
	return err
}
