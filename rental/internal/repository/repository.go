package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/carznow/rental-service/rental/internal/model"
)

type Repository interface {
	ListCars(ctx context.Context, filter model.CarFilter) (model.ListCars, error)
	GetCar(ctx context.Context, carUid string) (model.Car, error)
	CreateCar(ctx context.Context, car model.Car) (model.Car, error)
	UpdateCar(ctx context.Context, carUid string, req model.UpdateCarRequest) (model.Car, error)
	DeleteCar(ctx context.Context, carUid string) error
	AddCarImage(ctx context.Context, carUid, url string) error

	ListConfirmedBookings(ctx context.Context, carUid string) ([]model.Booking, error)
	CreateBooking(ctx context.Context, booking model.Booking) (model.Booking, error)
	GetBooking(ctx context.Context, bookingUid string) (model.Booking, error)
	UpdateBookingStatus(ctx context.Context, bookingUid string, status model.Status) (model.Booking, error)
	ListBookings(ctx context.Context) ([]model.BookingInfo, error)
	ListUserBookings(ctx context.Context, userUid string) ([]model.BookingInfo, error)

	CreateProfile(ctx context.Context, profile model.Profile) (model.Profile, error)
	GetProfile(ctx context.Context, userUid string) (model.Profile, error)
	GetProfileByEmail(ctx context.Context, email string) (model.Profile, error)
	ListProfiles(ctx context.Context) ([]model.Profile, error)
	UpdateProfile(ctx context.Context, userUid, fullName string) (model.Profile, error)
	UpdateProfileRole(ctx context.Context, userUid string, role model.Role) (model.Profile, error)
	DeleteProfile(ctx context.Context, userUid string) error

	GetDashboard(ctx context.Context) (model.DashboardStats, error)
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

const (
	carsTableName     = `cars`
	bookingsTableName = `bookings`
	profilesTableName = `profiles`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
