package service

import (
	"context"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/carznow/rental-service/pkg/kafka"
	"github.com/carznow/rental-service/rental/internal/repository"
)

type Config struct {
	MaxAdvanceDays int           `yaml:"maxAdvanceDays" envconfig:"BOOKING_MAX_ADVANCE_DAYS" default:"365"`
	FetchTimeout   time.Duration `yaml:"fetchTimeout" envconfig:"BOOKING_FETCH_TIMEOUT" default:"5s"`
}

// EventPublisher pushes booking lifecycle events to the stats pipeline.
type EventPublisher interface {
	Publish(ctx context.Context, event kafka.BookingEvent) error
}

// ImageStore keeps uploaded car images and returns their public URLs.
type ImageStore interface {
	Upload(ctx context.Context, name string, r io.Reader, size int64, contentType string) (string, error)
}

type Service struct {
	log    *zap.Logger
	repo   repository.Repository
	events EventPublisher
	images ImageStore
	cfg    Config
}

// NewService wires the rental service. events and images may be nil when
// kafka or the object store are not configured.
func NewService(repo repository.Repository, events EventPublisher, images ImageStore, cfg Config, log *zap.Logger) *Service {
	return &Service{
		log:    log,
		repo:   repo,
		events: events,
		images: images,
		cfg:    cfg,
	}
}
