package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/carznow/rental-service/pkg/auth"
	"github.com/carznow/rental-service/rental/internal/model"
)

func (h *Handler) Register(c echo.Context) error {
	var req model.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.rentalSvc.Register(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, profile)
}

func (h *Handler) Authorize(c echo.Context) error {
	var credentials model.AuthRequest
	if err := c.Bind(&credentials); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(credentials); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.rentalSvc.Authenticate(c.Request().Context(), credentials.Email, credentials.Password)
	if err != nil {
		return httpError(err)
	}

	token, expiresAt, err := auth.NewToken(h.authCfg, profile.UserUid, profile.Email, string(profile.Role))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, model.AuthResponse{
		AccessToken: token,
		ExpiresIn:   int(time.Until(expiresAt).Seconds()),
	})
}

func (h *Handler) GetMe(c echo.Context) error {
	ctx := c.Request().Context()
	userUid, err := auth.UserUid(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	profile, err := h.rentalSvc.GetProfile(ctx, userUid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, profile)
}

func (h *Handler) UpdateMe(c echo.Context) error {
	ctx := c.Request().Context()
	userUid, err := auth.UserUid(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	var req model.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.rentalSvc.UpdateProfile(ctx, userUid, req.FullName)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, profile)
}

func (h *Handler) ListProfiles(c echo.Context) error {
	profiles, err := h.rentalSvc.ListProfiles(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, profiles)
}

func (h *Handler) GetProfile(c echo.Context) error {
	userUid := c.Param("userUid")
	if userUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "empty userUid")
	}
	profile, err := h.rentalSvc.GetProfile(c.Request().Context(), userUid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, profile)
}

func (h *Handler) UpdateProfileRole(c echo.Context) error {
	userUid := c.Param("userUid")
	if userUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "empty userUid")
	}
	var req model.UpdateRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.rentalSvc.UpdateProfileRole(c.Request().Context(), userUid, req.Role)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, profile)
}

func (h *Handler) DeleteProfile(c echo.Context) error {
	userUid := c.Param("userUid")
	if userUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "empty userUid")
	}
	if err := h.rentalSvc.DeleteProfile(c.Request().Context(), userUid); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) Dashboard(c echo.Context) error {
	stats, err := h.rentalSvc.Dashboard(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, stats)
}
