package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/carznow/rental-service/rental/internal/errs"
	"github.com/carznow/rental-service/rental/internal/model"
)

// Overlaps reports whether the booking's date range intersects
// [start, end]. Both ranges are inclusive on both ends, so ranges that
// merely touch on a boundary day do overlap.
func Overlaps(b model.Booking, start, end time.Time) bool {
	return !b.EndDate.Before(truncateDay(start)) && !b.StartDate.After(truncateDay(end))
}

// RentalDays counts whole calendar days in [start, end] inclusive of both
// the pickup and the return day. A non-positive count falls back to a
// single day; the range validation upstream keeps that branch from firing
// on user input.
func RentalDays(start, end time.Time) int {
	days := int(truncateDay(end).Sub(truncateDay(start)).Hours()/24) + 1
	if days <= 0 {
		days = 1
	}
	return days
}

// ComputePrice is the total for an inclusive date range at the given daily
// rate. Pure: the same inputs always price the same.
func ComputePrice(start, end time.Time, pricePerDay float64) float64 {
	return float64(RentalDays(start, end)) * pricePerDay
}

// ValidateRange rejects candidate ranges before any store call: the range
// must start no earlier than today, end no earlier than it starts, and fit
// within the advance-booking window.
func ValidateRange(today, start, end time.Time, maxAdvanceDays int) error {
	today = truncateDay(today)
	start = truncateDay(start)
	end = truncateDay(end)

	if start.Before(today) {
		return errors.Wrap(errs.ErrInvalidRange, "start date is in the past")
	}
	if end.Before(start) {
		return errors.Wrap(errs.ErrInvalidRange, "end date is before start date")
	}
	if maxAdvanceDays > 0 {
		horizon := today.AddDate(0, 0, maxAdvanceDays)
		if start.After(horizon) || end.After(horizon) {
			return errors.Wrapf(errs.ErrInvalidRange, "dates exceed the %d-day booking window", maxAdvanceDays)
		}
	}
	return nil
}

// truncateDay reduces an instant to its UTC calendar date. Converting
// before reading Y/M/D keeps "today" stable on hosts whose local zone
// has already rolled past (or not yet reached) the UTC date.
func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CheckAvailability runs the overlap test against the car's confirmed
// bookings. Cancelled bookings never block a range. Any fetch failure
// reads as "not available": unknown state must never allow a booking.
func (s *Service) CheckAvailability(ctx context.Context, carUid string, start, end time.Time) (bool, error) {
	if err := ValidateRange(time.Now(), start, end, s.cfg.MaxAdvanceDays); err != nil {
		return false, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.FetchTimeout)
	defer cancel()

	bookings, err := s.repo.ListConfirmedBookings(ctx, carUid)
	if err != nil {
		s.log.Warn("confirmed bookings fetch failed, failing closed",
			zap.String("carUid", carUid), zap.Error(err))
		return false, nil
	}

	for _, b := range bookings {
		if Overlaps(b, start, end) {
			return false, nil
		}
	}
	return true, nil
}

// Price quotes the total for a car over an inclusive date range. The same
// computation runs again inside CreateBooking so the persisted total
// always matches the quote.
func (s *Service) Price(ctx context.Context, carUid string, start, end time.Time) (model.PriceResponse, error) {
	car, err := s.repo.GetCar(ctx, carUid)
	if err != nil {
		return model.PriceResponse{}, err
	}
	return model.PriceResponse{
		Days:       RentalDays(start, end),
		TotalPrice: ComputePrice(start, end, car.PricePerDay),
	}, nil
}
