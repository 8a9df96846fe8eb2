package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/carznow/rental-service/rental/internal/errs"
	"github.com/carznow/rental-service/rental/internal/model"
	"github.com/carznow/rental-service/rental/internal/repository"
	"github.com/carznow/rental-service/rental/internal/service"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func booking(status model.Status, start, end time.Time) model.Booking {
	return model.Booking{
		CarUid:    "83575e12-7ce0-48ee-9931-51919ff3c9ee",
		StartDate: model.Date{Time: start},
		EndDate:   model.Date{Time: end},
		Status:    status,
	}
}

func TestOverlaps(t *testing.T) {
	t.Parallel()
	b := booking(model.StatusConfirmed, date(2024, time.June, 1), date(2024, time.June, 5))

	var tests = []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"inside", date(2024, time.June, 2), date(2024, time.June, 4), true},
		{"identical range", date(2024, time.June, 1), date(2024, time.June, 5), true},
		{"touching end boundary", date(2024, time.June, 5), date(2024, time.June, 8), true},
		{"touching start boundary", date(2024, time.May, 28), date(2024, time.June, 1), true},
		{"strictly after", date(2024, time.June, 6), date(2024, time.June, 9), false},
		{"strictly before", date(2024, time.May, 20), date(2024, time.May, 31), false},
		{"single day inside", date(2024, time.June, 3), date(2024, time.June, 3), true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, service.Overlaps(b, tt.start, tt.end))
		})
	}
}

func TestRentalDays(t *testing.T) {
	t.Parallel()
	require.Equal(t, 1, service.RentalDays(date(2024, time.June, 1), date(2024, time.June, 1)))
	require.Equal(t, 5, service.RentalDays(date(2024, time.June, 1), date(2024, time.June, 5)))
	require.Equal(t, 31, service.RentalDays(date(2024, time.July, 1), date(2024, time.July, 31)))
	// inverted ranges fall back to a single day
	require.Equal(t, 1, service.RentalDays(date(2024, time.June, 5), date(2024, time.June, 1)))
}

func TestComputePrice(t *testing.T) {
	t.Parallel()
	require.Equal(t, 50.0, service.ComputePrice(date(2024, time.June, 1), date(2024, time.June, 1), 50))
	require.Equal(t, 200.0, service.ComputePrice(date(2024, time.June, 1), date(2024, time.June, 5), 40))

	// pure function: repeated evaluation yields the same total
	first := service.ComputePrice(date(2024, time.July, 10), date(2024, time.July, 15), 99.5)
	second := service.ComputePrice(date(2024, time.July, 10), date(2024, time.July, 15), 99.5)
	require.Equal(t, first, second)
}

func TestValidateRange(t *testing.T) {
	t.Parallel()
	today := date(2024, time.June, 10)

	var tests = []struct {
		name       string
		start, end time.Time
		wantErr    bool
	}{
		{"ok", date(2024, time.June, 12), date(2024, time.June, 15), false},
		{"starts today", today, today, false},
		{"start in the past", date(2024, time.June, 9), date(2024, time.June, 15), true},
		{"end before start", date(2024, time.June, 15), date(2024, time.June, 12), true},
		{"beyond the window", date(2025, time.June, 11), date(2025, time.June, 12), true},
		{"at the window edge", date(2025, time.June, 10), date(2025, time.June, 10), false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := service.ValidateRange(today, tt.start, tt.end, 365)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrInvalidRange)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

// The validation window is anchored to the UTC calendar date even when
// the process clock sits in a zone whose local date differs from UTC's.
func TestValidateRange_ZonedClock(t *testing.T) {
	t.Parallel()

	t.Run("zone ahead of UTC", func(t *testing.T) {
		t.Parallel()
		// 00:30 Jun 11 in UTC+13 is still Jun 10 in UTC, so a request
		// for Jun 10 is not in the past.
		zone := time.FixedZone("UTC+13", 13*60*60)
		now := time.Date(2024, time.June, 11, 0, 30, 0, 0, zone)
		require.NoError(t, service.ValidateRange(now,
			date(2024, time.June, 10), date(2024, time.June, 12), 365))
	})

	t.Run("zone behind UTC", func(t *testing.T) {
		t.Parallel()
		// 20:00 Jun 10 in UTC-7 is already Jun 11 in UTC, so Jun 10 is
		// in the past.
		zone := time.FixedZone("UTC-7", -7*60*60)
		now := time.Date(2024, time.June, 10, 20, 0, 0, 0, zone)
		err := service.ValidateRange(now,
			date(2024, time.June, 10), date(2024, time.June, 12), 365)
		require.ErrorIs(t, err, errs.ErrInvalidRange)
	})
}

// stubRepo overrides only the repository methods a test needs.
type stubRepo struct {
	repository.Repository
	bookings    []model.Booking
	bookingsErr error
	car         model.Car
	carErr      error
}

func (s *stubRepo) ListConfirmedBookings(_ context.Context, _ string) ([]model.Booking, error) {
	if s.bookingsErr != nil {
		return nil, s.bookingsErr
	}
	confirmed := make([]model.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		if b.Status == model.StatusConfirmed {
			confirmed = append(confirmed, b)
		}
	}
	return confirmed, nil
}

func (s *stubRepo) GetCar(_ context.Context, _ string) (model.Car, error) {
	return s.car, s.carErr
}

func newService(repo repository.Repository) *service.Service {
	cfg := service.Config{MaxAdvanceDays: 365, FetchTimeout: time.Second}
	return service.NewService(repo, nil, nil, cfg, zap.NewExample().Named("test"))
}

func TestService_CheckAvailability(t *testing.T) {
	t.Parallel()
	const carUid = "83575e12-7ce0-48ee-9931-51919ff3c9ee"
	base := time.Now().UTC().AddDate(0, 0, 30)
	day := func(offset int) time.Time { return base.AddDate(0, 0, offset) }

	t.Run("free range is available", func(t *testing.T) {
		t.Parallel()
		svc := newService(&stubRepo{bookings: []model.Booking{
			booking(model.StatusConfirmed, day(0), day(5)),
		}})
		available, err := svc.CheckAvailability(context.Background(), carUid, day(6), day(10))
		require.NoError(t, err)
		require.True(t, available)
	})

	t.Run("overlapping confirmed booking blocks", func(t *testing.T) {
		t.Parallel()
		svc := newService(&stubRepo{bookings: []model.Booking{
			booking(model.StatusConfirmed, day(0), day(5)),
		}})
		available, err := svc.CheckAvailability(context.Background(), carUid, day(4), day(8))
		require.NoError(t, err)
		require.False(t, available)
	})

	t.Run("cancelled bookings never block", func(t *testing.T) {
		t.Parallel()
		svc := newService(&stubRepo{bookings: []model.Booking{
			booking(model.StatusCancelled, day(0), day(5)),
		}})
		available, err := svc.CheckAvailability(context.Background(), carUid, day(0), day(5))
		require.NoError(t, err)
		require.True(t, available)
	})

	t.Run("fetch failure fails closed", func(t *testing.T) {
		t.Parallel()
		svc := newService(&stubRepo{bookingsErr: errors.New("db down")})
		available, err := svc.CheckAvailability(context.Background(), carUid, day(0), day(5))
		require.NoError(t, err)
		require.False(t, available)
	})

	t.Run("invalid range rejected before the store", func(t *testing.T) {
		t.Parallel()
		svc := newService(&stubRepo{bookingsErr: errors.New("must not be called")})
		_, err := svc.CheckAvailability(context.Background(), carUid, day(5), day(0))
		require.ErrorIs(t, err, errs.ErrInvalidRange)
	})
}

func TestService_Price(t *testing.T) {
	t.Parallel()
	svc := newService(&stubRepo{car: model.Car{PricePerDay: 40}})

	resp, err := svc.Price(context.Background(), "any", date(2024, time.June, 1), date(2024, time.June, 5))
	require.NoError(t, err)
	require.Equal(t, model.PriceResponse{Days: 5, TotalPrice: 200}, resp)

	svc = newService(&stubRepo{carErr: errs.ErrNotFound})
	_, err = svc.Price(context.Background(), "missing", date(2024, time.June, 1), date(2024, time.June, 5))
	require.ErrorIs(t, err, errs.ErrNotFound)
}
