package handler

import (
	"context"
	"io"
	"time"

	"github.com/carznow/rental-service/rental/internal/model"
	"github.com/carznow/rental-service/rental/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type RentalService interface {
	ListCars(ctx context.Context, filter model.CarFilter) (model.ListCars, error)
	GetCar(ctx context.Context, carUid string) (model.Car, error)
	CreateCar(ctx context.Context, req model.CreateCarRequest) (model.Car, error)
	UpdateCar(ctx context.Context, carUid string, req model.UpdateCarRequest) (model.Car, error)
	DeleteCar(ctx context.Context, carUid string) error
	UploadCarImage(ctx context.Context, carUid, filename string, r io.Reader, size int64, contentType string) (string, error)

	CheckAvailability(ctx context.Context, carUid string, start, end time.Time) (bool, error)
	Price(ctx context.Context, carUid string, start, end time.Time) (model.PriceResponse, error)
	CreateBooking(ctx context.Context, req model.CreateBookingRequest) (model.Booking, error)
	CancelBooking(ctx context.Context, bookingUid, userUid string, isAdmin bool) (model.Booking, error)
	ListConfirmedBookings(ctx context.Context, carUid string) ([]model.Booking, error)
	ListBookings(ctx context.Context) ([]model.BookingInfo, error)
	ListUserBookings(ctx context.Context, userUid string) ([]model.BookingInfo, error)

	Register(ctx context.Context, req model.RegisterRequest) (model.Profile, error)
	Authenticate(ctx context.Context, email, password string) (model.Profile, error)
	GetProfile(ctx context.Context, userUid string) (model.Profile, error)
	ListProfiles(ctx context.Context) ([]model.Profile, error)
	UpdateProfile(ctx context.Context, userUid, fullName string) (model.Profile, error)
	UpdateProfileRole(ctx context.Context, userUid string, role model.Role) (model.Profile, error)
	DeleteProfile(ctx context.Context, userUid string) error
	Dashboard(ctx context.Context) (model.DashboardStats, error)
}

var _ RentalService = (*service.Service)(nil)
