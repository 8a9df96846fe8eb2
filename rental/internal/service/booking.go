package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/carznow/rental-service/pkg/kafka"
	"github.com/carznow/rental-service/rental/internal/errs"
	"github.com/carznow/rental-service/rental/internal/model"
)

// CreateBooking validates the range, resolves the car and the renter, and
// persists a confirmed booking through the reserve-if-free insert. The
// total price is computed server-side from the car's current daily rate
// and persisted once; it is never recomputed afterwards.
func (s *Service) CreateBooking(ctx context.Context, req model.CreateBookingRequest) (model.Booking, error) {
	start, end := req.StartDate.Time, req.EndDate.Time
	if err := ValidateRange(time.Now(), start, end, s.cfg.MaxAdvanceDays); err != nil {
		return model.Booking{}, err
	}

	car, err := s.repo.GetCar(ctx, req.CarUid)
	if err != nil {
		return model.Booking{}, err
	}
	if _, err := s.repo.GetProfile(ctx, req.UserUid); err != nil {
		return model.Booking{}, err
	}

	booking := model.Booking{
		BookingUid: uuid.NewString(),
		CarUid:     car.CarUid,
		UserUid:    req.UserUid,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		TotalPrice: ComputePrice(start, end, car.PricePerDay),
		Status:     model.StatusConfirmed,
	}

	created, err := s.repo.CreateBooking(ctx, booking)
	if err != nil {
		return model.Booking{}, err
	}

	s.publishEvent(ctx, kafka.EventBookingCreated, created)
	return created, nil
}

// CancelBooking transitions a confirmed booking to cancelled. Non-admins
// may only cancel their own bookings; cancelling twice is a conflict.
func (s *Service) CancelBooking(ctx context.Context, bookingUid, userUid string, isAdmin bool) (model.Booking, error) {
	booking, err := s.repo.GetBooking(ctx, bookingUid)
	if err != nil {
		return model.Booking{}, err
	}
	if !isAdmin && booking.UserUid != userUid {
		return model.Booking{}, errs.ErrNotFound
	}
	if booking.Status == model.StatusCancelled {
		return model.Booking{}, errs.ErrConflict
	}

	cancelled, err := s.repo.UpdateBookingStatus(ctx, bookingUid, model.StatusCancelled)
	if err != nil {
		return model.Booking{}, err
	}

	s.publishEvent(ctx, kafka.EventBookingCancelled, cancelled)
	return cancelled, nil
}

func (s *Service) ListConfirmedBookings(ctx context.Context, carUid string) ([]model.Booking, error) {
	return s.repo.ListConfirmedBookings(ctx, carUid)
}

func (s *Service) ListBookings(ctx context.Context) ([]model.BookingInfo, error) {
	return s.repo.ListBookings(ctx)
}

func (s *Service) ListUserBookings(ctx context.Context, userUid string) ([]model.BookingInfo, error) {
	return s.repo.ListUserBookings(ctx, userUid)
}

// publishEvent is best-effort: a broker outage must not fail the booking.
func (s *Service) publishEvent(ctx context.Context, eventType kafka.EventType, b model.Booking) {
	if s.events == nil {
		return
	}
	event := kafka.BookingEvent{
		Timestamp:  time.Now().UTC(),
		EventType:  eventType,
		BookingUid: b.BookingUid,
		CarUid:     b.CarUid,
		UserUid:    b.UserUid,
		Days:       RentalDays(b.StartDate.Time, b.EndDate.Time),
		TotalPrice: b.TotalPrice,
	}
	if err := s.events.Publish(ctx, event); err != nil {
		s.log.Warn("publish booking event", zap.String("bookingUid", b.BookingUid), zap.Error(err))
	}
}
