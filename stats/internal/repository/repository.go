package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/carznow/rental-service/pkg/kafka"
	"github.com/carznow/rental-service/stats/internal/model"
)

type Repository interface {
	Stats(ctx context.Context, event kafka.BookingEvent) error
	GetStats(ctx context.Context) ([]model.StatsInfo, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

func (r *repository) Stats(ctx context.Context, event kafka.BookingEvent) error {
	q := `insert into events (timestamp, event_type, booking_uid, car_uid, user_uid, days, total_price)
	values ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, q,
		event.Timestamp, event.EventType, event.BookingUid,
		event.CarUid, event.UserUid, event.Days, event.TotalPrice)
	return err
}

func (r *repository) GetStats(ctx context.Context) ([]model.StatsInfo, error) {
	const q = `
	select car_uid,
	       count(*) filter (where event_type = 'BOOKING_CREATED')   as created,
	       count(*) filter (where event_type = 'BOOKING_CANCELLED') as cancelled,
	       coalesce(sum(total_price) filter (where event_type = 'BOOKING_CREATED'), 0)
	           - coalesce(sum(total_price) filter (where event_type = 'BOOKING_CANCELLED'), 0) as revenue,
	       max(timestamp) as last_event
	from events
	group by car_uid
	order by car_uid
`
	var stats []model.StatsInfo
	if err := r.db.SelectContext(ctx, &stats, q); err != nil {
		return nil, err
	}
	return stats, nil
}
