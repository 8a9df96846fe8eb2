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

const carColumns = `id, car_uid, name, brand, model, description, price_per_day, car_type,
	transmission, fuel_type, seats, mileage, has_ac, image_url, images, rating, created_at`

func (r *repository) ListCars(ctx context.Context, filter model.CarFilter) (model.ListCars, error) {
	q := qb.Select(carColumns).
		From(carsTableName).
		OrderBy("created_at desc")

	if filter.PriceMin != nil {
		q = q.Where(sq.GtOrEq{"price_per_day": *filter.PriceMin})
	}
	if filter.PriceMax != nil {
		q = q.Where(sq.LtOrEq{"price_per_day": *filter.PriceMax})
	}
	if filter.CarType != "" {
		q = q.Where("lower(car_type) = lower(?)", filter.CarType)
	}
	if filter.FuelType != "" {
		q = q.Where("lower(fuel_type) = lower(?)", filter.FuelType)
	}
	if filter.Transmission != "" {
		q = q.Where("lower(transmission) = lower(?)", filter.Transmission)
	}
	if filter.Brand != "" {
		q = q.Where("lower(brand) = lower(?)", filter.Brand)
	}
	if filter.MinSeats > 0 {
		q = q.Where(sq.GtOrEq{"seats": filter.MinSeats})
	}
	if filter.Page != 0 && filter.Size != 0 {
		q = q.Limit(uint64(filter.Size)).Offset(uint64((filter.Page - 1) * filter.Size))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return model.ListCars{}, err
	}

	var cars []model.Car
	if err := r.db.SelectContext(ctx, &cars, query, args...); err != nil {
		return model.ListCars{}, err
	}

	return model.ListCars{
		Paging: model.Paging{
			Page:          filter.Page,
			PageSize:      filter.Size,
			TotalElements: len(cars),
		},
		Items: cars,
	}, nil
}

func (r *repository) GetCar(ctx context.Context, carUid string) (model.Car, error) {
	query, args, err := qb.Select(carColumns).
		From(carsTableName).
		Where(sq.Eq{"car_uid": carUid}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Car{}, err
	}

	var car model.Car
	if err := r.db.GetContext(ctx, &car, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Car{}, errs.ErrNotFound
		}
		return model.Car{}, err
	}
	return car, nil
}

func (r *repository) CreateCar(ctx context.Context, car model.Car) (model.Car, error) {
	query, args, err := qb.Insert(carsTableName).
		Columns("car_uid", "name", "brand", "model", "description", "price_per_day", "car_type",
			"transmission", "fuel_type", "seats", "mileage", "has_ac", "image_url", "images", "rating").
		Values(car.CarUid, car.Name, car.Brand, car.Model, car.Description, car.PricePerDay, car.CarType,
			car.Transmission, car.FuelType, car.Seats, car.Mileage, car.HasAC, car.ImageURL, car.Images, car.Rating).
		Suffix("returning " + carColumns).
		ToSql()
	if err != nil {
		return model.Car{}, err
	}

	var created model.Car
	if err := r.db.GetContext(ctx, &created, query, args...); err != nil {
		r.log.Error("CreateCar", zap.String("q", query), zap.Any("args", args))
		return model.Car{}, err
	}
	return created, nil
}

// UpdateCar applies only the allow-listed fields present in req.
func (r *repository) UpdateCar(ctx context.Context, carUid string, req model.UpdateCarRequest) (model.Car, error) {
	q := qb.Update(carsTableName).Where(sq.Eq{"car_uid": carUid})

	set := 0
	apply := func(column string, v any) {
		q = q.Set(column, v)
		set++
	}
	if req.Name != nil {
		apply("name", *req.Name)
	}
	if req.Brand != nil {
		apply("brand", *req.Brand)
	}
	if req.Model != nil {
		apply("model", *req.Model)
	}
	if req.Description != nil {
		apply("description", *req.Description)
	}
	if req.PricePerDay != nil {
		apply("price_per_day", *req.PricePerDay)
	}
	if req.CarType != nil {
		apply("car_type", *req.CarType)
	}
	if req.Transmission != nil {
		apply("transmission", *req.Transmission)
	}
	if req.FuelType != nil {
		apply("fuel_type", *req.FuelType)
	}
	if req.Seats != nil {
		apply("seats", *req.Seats)
	}
	if req.Mileage != nil {
		apply("mileage", *req.Mileage)
	}
	if req.HasAC != nil {
		apply("has_ac", *req.HasAC)
	}
	if req.ImageURL != nil {
		apply("image_url", *req.ImageURL)
	}
	if set == 0 {
		return r.GetCar(ctx, carUid)
	}

	query, args, err := q.Suffix("returning " + carColumns).ToSql()
	if err != nil {
		return model.Car{}, err
	}

	var car model.Car
	if err := r.db.GetContext(ctx, &car, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Car{}, errs.ErrNotFound
		}
		return model.Car{}, err
	}
	return car, nil
}

func (r *repository) DeleteCar(ctx context.Context, carUid string) error {
	query, args, err := qb.Delete(carsTableName).
		Where(sq.Eq{"car_uid": carUid}).
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

func (r *repository) AddCarImage(ctx context.Context, carUid, url string) error {
	q := fmt.Sprintf(`update %s
	set images = images || to_jsonb($2::text),
	    image_url = case when image_url = '' then $2 else image_url end
	where car_uid = $1`, carsTableName)

	res, err := r.db.ExecContext(ctx, q, carUid, url)
	if err != nil {
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
