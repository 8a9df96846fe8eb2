package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/carznow/rental-service/pkg/kafka"
	"github.com/carznow/rental-service/stats/internal/model"
	"github.com/carznow/rental-service/stats/internal/repository"
)

type Service struct {
	log  *zap.Logger
	repo repository.Repository
}

func NewService(repo repository.Repository, log *zap.Logger) *Service {
	return &Service{
		log:  log,
		repo: repo,
	}
}

func (s *Service) Stats(ctx context.Context, event kafka.BookingEvent) error {
	return s.repo.Stats(ctx, event)
}

func (s *Service) GetStats(ctx context.Context) ([]model.StatsInfo, error) {
	return s.repo.GetStats(ctx)
}
