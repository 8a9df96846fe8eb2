package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/carznow/rental-service/rental/internal/errs"
	"github.com/carznow/rental-service/rental/internal/model"
)

// Register creates a profile with a bcrypt-hashed password. Every signup
// gets the user role; only an admin can promote afterwards.
func (s *Service) Register(ctx context.Context, req model.RegisterRequest) (model.Profile, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.Profile{}, err
	}

	profile := model.Profile{
		UserUid:      uuid.NewString(),
		Email:        req.Email,
		FullName:     req.FullName,
		Role:         model.RoleUser,
		PasswordHash: string(hash),
	}
	return s.repo.CreateProfile(ctx, profile)
}

// Authenticate verifies the credentials against the stored hash. A missing
// profile and a wrong password are indistinguishable to the caller.
func (s *Service) Authenticate(ctx context.Context, email, password string) (model.Profile, error) {
	profile, err := s.repo.GetProfileByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Profile{}, errs.ErrInvalidCredentials
		}
		return model.Profile{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)); err != nil {
		return model.Profile{}, errs.ErrInvalidCredentials
	}
	return profile, nil
}

func (s *Service) GetProfile(ctx context.Context, userUid string) (model.Profile, error) {
	return s.repo.GetProfile(ctx, userUid)
}

func (s *Service) ListProfiles(ctx context.Context) ([]model.Profile, error) {
	return s.repo.ListProfiles(ctx)
}

func (s *Service) UpdateProfile(ctx context.Context, userUid, fullName string) (model.Profile, error) {
	return s.repo.UpdateProfile(ctx, userUid, fullName)
}

func (s *Service) UpdateProfileRole(ctx context.Context, userUid string, role model.Role) (model.Profile, error) {
	return s.repo.UpdateProfileRole(ctx, userUid, role)
}

func (s *Service) DeleteProfile(ctx context.Context, userUid string) error {
	return s.repo.DeleteProfile(ctx, userUid)
}

func (s *Service) Dashboard(ctx context.Context) (model.DashboardStats, error) {
	return s.repo.GetDashboard(ctx)
}
