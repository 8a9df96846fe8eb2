package app

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/carznow/rental-service/pkg/kafka"
	"github.com/carznow/rental-service/pkg/logger"
	"github.com/carznow/rental-service/pkg/postgres"
	"github.com/carznow/rental-service/pkg/storage"
	"github.com/carznow/rental-service/rental/config"
	"github.com/carznow/rental-service/rental/internal/handler"
	"github.com/carznow/rental-service/rental/internal/repository"
	"github.com/carznow/rental-service/rental/internal/server"
	"github.com/carznow/rental-service/rental/internal/service"
	"github.com/carznow/rental-service/rental/migrations"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "rental")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return fmt.Errorf("db init %w", err)
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return fmt.Errorf("repo init %w", err)
	}

	var events service.EventPublisher
	producer, err := kafka.NewProducer(cfg.Kafka)
	if err != nil {
		log.Warn("kafka producer unavailable, booking events disabled", zap.Error(err))
	} else {
		events = kafka.NewPublisher(producer, kafka.BookingEventsTopic)
	}

	var images service.ImageStore
	if cfg.Storage.Endpoint != "" {
		store, err := storage.NewImageStore(context.Background(), cfg.Storage)
		if err != nil {
			return fmt.Errorf("image store init %w", err)
		}
		images = store
	}

	svc := service.NewService(repo, events, images, cfg.Booking, log)
	h := handler.New(svc, cfg.Auth, log)

	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.Error("srv.Stop", zap.Error(err))
	}
	if producer != nil {
		if err := producer.Close(); err != nil {
			log.Error("producer.Close", zap.Error(err))
		}
	}
	db.Close()
	log.Info("Graceful shutdown finished")
	return nil
}
