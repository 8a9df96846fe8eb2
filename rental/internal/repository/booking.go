package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/carznow/rental-service/rental/internal/errs"
	"github.com/carznow/rental-service/rental/internal/model"
)

const bookingColumns = `id, booking_uid, car_uid, user_uid, start_date, end_date, total_price, status, created_at`

func (r *repository) ListConfirmedBookings(ctx context.Context, carUid string) ([]model.Booking, error) {
	query, args, err := qb.Select(bookingColumns).
		From(bookingsTableName).
		Where(sq.Eq{"car_uid": carUid}).
		Where(sq.Eq{"status": model.StatusConfirmed}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var bookings []model.Booking
	if err := r.db.SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, err
	}
	return bookings, nil
}

// CreateBooking inserts a confirmed booking. The bookings_no_overlap
// exclusion constraint makes the insert a reserve-if-free operation: a
// concurrent overlapping insert loses with ErrConflict instead of
// producing a double-booking.
func (r *repository) CreateBooking(ctx context.Context, booking model.Booking) (model.Booking, error) {
	query, args, err := qb.Insert(bookingsTableName).
		Columns("booking_uid", "car_uid", "user_uid", "start_date", "end_date", "total_price", "status").
		Values(booking.BookingUid, booking.CarUid, booking.UserUid,
			booking.StartDate, booking.EndDate, booking.TotalPrice, booking.Status).
		Suffix("returning " + bookingColumns).
		ToSql()
	if err != nil {
		return model.Booking{}, err
	}

	var created model.Booking
	if err := r.db.GetContext(ctx, &created, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.ExclusionViolation:
				return model.Booking{}, errs.ErrConflict
			case pgerrcode.ForeignKeyViolation:
				return model.Booking{}, errs.ErrNotFound
			}
		}
		r.log.Error("CreateBooking", zap.String("q", query), zap.Any("args", args))
		return model.Booking{}, err
	}
	return created, nil
}

func (r *repository) GetBooking(ctx context.Context, bookingUid string) (model.Booking, error) {
	query, args, err := qb.Select(bookingColumns).
		From(bookingsTableName).
		Where(sq.Eq{"booking_uid": bookingUid}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Booking{}, err
	}

	var booking model.Booking
	if err := r.db.GetContext(ctx, &booking, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Booking{}, errs.ErrNotFound
		}
		return model.Booking{}, err
	}
	return booking, nil
}

// UpdateBookingStatus transitions confirmed -> cancelled. Bookings are
// never deleted and a cancelled booking stays cancelled.
func (r *repository) UpdateBookingStatus(ctx context.Context, bookingUid string, status model.Status) (model.Booking, error) {
	q := fmt.Sprintf(`update %s
	set status = $2
	where booking_uid = $1 and status = '%s'
	returning %s`, bookingsTableName, model.StatusConfirmed, bookingColumns)

	var booking model.Booking
	if err := r.db.GetContext(ctx, &booking, q, bookingUid, status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Booking{}, errs.ErrNotFound
		}
		return model.Booking{}, err
	}
	return booking, nil
}

func (r *repository) ListBookings(ctx context.Context) ([]model.BookingInfo, error) {
	q := fmt.Sprintf(`
	select b.id, b.booking_uid, b.car_uid, b.user_uid, b.start_date, b.end_date,
	       b.total_price, b.status, b.created_at,
	       c.name as car_name, c.image_url as car_image,
	       p.full_name as user_name, p.email as user_email
	from %s b
	join %s c on b.car_uid = c.car_uid
	join %s p on b.user_uid = p.user_uid
	order by b.created_at desc`, bookingsTableName, carsTableName, profilesTableName)

	var bookings []model.BookingInfo
	if err := r.db.SelectContext(ctx, &bookings, q); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *repository) ListUserBookings(ctx context.Context, userUid string) ([]model.BookingInfo, error) {
	q := fmt.Sprintf(`
	select b.id, b.booking_uid, b.car_uid, b.user_uid, b.start_date, b.end_date,
	       b.total_price, b.status, b.created_at,
	       c.name as car_name, c.image_url as car_image
	from %s b
	join %s c on b.car_uid = c.car_uid
	where b.user_uid = $1
	order by b.created_at desc`, bookingsTableName, carsTableName)

	var bookings []model.BookingInfo
	if err := r.db.SelectContext(ctx, &bookings, q, userUid); err != nil {
		return nil, err
	}
	return bookings, nil
}
