package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/carznow/rental-service/rental/internal/errs"
	"github.com/carznow/rental-service/rental/internal/model"
)

func (s *Service) ListCars(ctx context.Context, filter model.CarFilter) (model.ListCars, error) {
	return s.repo.ListCars(ctx, filter)
}

func (s *Service) GetCar(ctx context.Context, carUid string) (model.Car, error) {
	return s.repo.GetCar(ctx, carUid)
}

func (s *Service) CreateCar(ctx context.Context, req model.CreateCarRequest) (model.Car, error) {
	car := model.Car{
		CarUid:       uuid.NewString(),
		Name:         req.Name,
		Brand:        req.Brand,
		Model:        req.Model,
		Description:  req.Description,
		PricePerDay:  req.PricePerDay,
		CarType:      req.CarType,
		Transmission: req.Transmission,
		FuelType:     req.FuelType,
		Seats:        req.Seats,
		Mileage:      req.Mileage,
		HasAC:        req.HasAC,
		ImageURL:     req.ImageURL,
		Images:       req.Images,
	}
	return s.repo.CreateCar(ctx, car)
}

func (s *Service) UpdateCar(ctx context.Context, carUid string, req model.UpdateCarRequest) (model.Car, error) {
	return s.repo.UpdateCar(ctx, carUid, req)
}

func (s *Service) DeleteCar(ctx context.Context, carUid string) error {
	return s.repo.DeleteCar(ctx, carUid)
}

// UploadCarImage stores the image in the object store and appends its URL
// to the car's image list.
func (s *Service) UploadCarImage(ctx context.Context, carUid, filename string, r io.Reader, size int64, contentType string) (string, error) {
	if s.images == nil {
		return "", errs.ErrStorageUnavailable
	}
	if _, err := s.repo.GetCar(ctx, carUid); err != nil {
		return "", err
	}

	objectName := fmt.Sprintf("%s/%d-%s", carUid, time.Now().UnixNano(), filename)
	url, err := s.images.Upload(ctx, objectName, r, size, contentType)
	if err != nil {
		return "", err
	}
	if err := s.repo.AddCarImage(ctx, carUid, url); err != nil {
		return "", err
	}
	return url, nil
}
