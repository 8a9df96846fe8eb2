package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"

	"github.com/carznow/rental-service/rental/internal/errs"
	"github.com/carznow/rental-service/rental/internal/model"
)

const profileColumns = `id, user_uid, email, full_name, role, password_hash, created_at`

func (r *repository) CreateProfile(ctx context.Context, profile model.Profile) (model.Profile, error) {
	query, args, err := qb.Insert(profilesTableName).
		Columns("user_uid", "email", "full_name", "role", "password_hash").
		Values(profile.UserUid, profile.Email, profile.FullName, profile.Role, profile.PasswordHash).
		Suffix("returning " + profileColumns).
		ToSql()
	if err != nil {
		return model.Profile{}, err
	}

	var created model.Profile
	if err := r.db.GetContext(ctx, &created, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.Profile{}, errs.ErrDuplicate
		}
		return model.Profile{}, err
	}
	return created, nil
}

func (r *repository) GetProfile(ctx context.Context, userUid string) (model.Profile, error) {
	return r.getProfile(ctx, sq.Eq{"user_uid": userUid})
}

func (r *repository) GetProfileByEmail(ctx context.Context, email string) (model.Profile, error) {
	return r.getProfile(ctx, sq.Eq{"email": email})
}

func (r *repository) getProfile(ctx context.Context, pred sq.Eq) (model.Profile, error) {
	query, args, err := qb.Select(profileColumns).
		From(profilesTableName).
		Where(pred).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Profile{}, err
	}

	var profile model.Profile
	if err := r.db.GetContext(ctx, &profile, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Profile{}, errs.ErrNotFound
		}
		return model.Profile{}, err
	}
	return profile, nil
}

func (r *repository) ListProfiles(ctx context.Context) ([]model.Profile, error) {
	query, args, err := qb.Select(profileColumns).
		From(profilesTableName).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}

	var profiles []model.Profile
	if err := r.db.SelectContext(ctx, &profiles, query, args...); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *repository) UpdateProfile(ctx context.Context, userUid, fullName string) (model.Profile, error) {
	return r.updateProfile(ctx, userUid, "full_name", fullName)
}

func (r *repository) UpdateProfileRole(ctx context.Context, userUid string, role model.Role) (model.Profile, error) {
	return r.updateProfile(ctx, userUid, "role", role)
}

func (r *repository) updateProfile(ctx context.Context, userUid, column string, value any) (model.Profile, error) {
	query, args, err := qb.Update(profilesTableName).
		Set(column, value).
		Where(sq.Eq{"user_uid": userUid}).
		Suffix("returning " + profileColumns).
		ToSql()
	if err != nil {
		return model.Profile{}, err
	}

	var profile model.Profile
	if err := r.db.GetContext(ctx, &profile, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Profile{}, errs.ErrNotFound
		}
		return model.Profile{}, err
	}
	return profile, nil
}

func (r *repository) DeleteProfile(ctx context.Context, userUid string) error {
	query, args, err := qb.Delete(profilesTableName).
		Where(sq.Eq{"user_uid": userUid}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return errs.ErrConflict
		}
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) GetDashboard(ctx context.Context) (model.DashboardStats, error) {
	var stats model.DashboardStats

	counts := fmt.Sprintf(`
	select (select count(*) from %s)                                              as total_cars,
	       (select count(*) from %s)                                              as total_bookings,
	       (select count(*) from %s)                                              as total_profiles,
	       (select coalesce(sum(total_price), 0) from %s where status = 'confirmed') as revenue`,
		carsTableName, bookingsTableName, profilesTableName, bookingsTableName)

	row := r.db.QueryRowContext(ctx, counts)
	if err := row.Scan(&stats.TotalCars, &stats.TotalBookings, &stats.TotalProfiles, &stats.Revenue); err != nil {
		return model.DashboardStats{}, err
	}

	recent := fmt.Sprintf(`
	select b.id, b.booking_uid, b.car_uid, b.user_uid, b.start_date, b.end_date,
	       b.total_price, b.status, b.created_at,
	       c.name as car_name, c.image_url as car_image,
	       p.full_name as user_name, p.email as user_email
	from %s b
	join %s c on b.car_uid = c.car_uid
	join %s p on b.user_uid = p.user_uid
	order by b.created_at desc
	limit 5`, bookingsTableName, carsTableName, profilesTableName)

	if err := r.db.SelectContext(ctx, &stats.RecentBookings, recent); err != nil {
		return model.DashboardStats{}, err
	}
	return stats, nil
}
