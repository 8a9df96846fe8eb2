package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/carznow/rental-service/pkg/auth"
	mw "github.com/carznow/rental-service/pkg/middleware"
	"github.com/carznow/rental-service/pkg/validate"
	"github.com/carznow/rental-service/rental/internal/errs"
)

type Handler struct {
	rentalSvc RentalService
	authCfg   auth.Config
	log       *zap.Logger
}

func New(rentalSvc RentalService, authCfg auth.Config, log *zap.Logger) *Handler {
	return &Handler{
		rentalSvc: rentalSvc,
		authCfg:   authCfg,
		log:       log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", mw.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(mw.RequestLoggerConfig()),
		middleware.RequestID(),
		mw.NewRateLimiter(apiRPS),
	)

	api.POST("/auth/register", h.Register)
	api.POST("/auth/login", h.Authorize)

	api.GET("/cars", h.ListCars)
	api.GET("/cars/:carUid", h.GetCar)
	api.GET("/cars/:carUid/availability", h.CheckAvailability)
	api.GET("/cars/:carUid/price", h.GetPrice)
	api.GET("/cars/:carUid/bookings", h.ListCarBookings)

	key := []byte(h.authCfg.JWTKey)

	authed := api.Group("", mw.JwtAuthentication(key))
	authed.POST("/bookings", h.CreateBooking)
	authed.POST("/bookings/:bookingUid/cancel", h.CancelBooking)
	authed.GET("/profiles/me", h.GetMe)
	authed.PUT("/profiles/me", h.UpdateMe)
	authed.GET("/profiles/me/bookings", h.ListMyBookings)

	admin := api.Group("", mw.JwtAuthentication(key), mw.AdminOnly)
	admin.POST("/cars", h.CreateCar)
	admin.PUT("/cars/:carUid", h.UpdateCar)
	admin.DELETE("/cars/:carUid", h.DeleteCar)
	admin.POST("/cars/:carUid/images", h.UploadCarImage)
	admin.GET("/bookings", h.ListBookings)
	admin.GET("/profiles", h.ListProfiles)
	admin.GET("/profiles/:userUid", h.GetProfile)
	admin.PUT("/profiles/:userUid/role", h.UpdateProfileRole)
	admin.DELETE("/profiles/:userUid", h.DeleteProfile)
	admin.GET("/dashboard", h.Dashboard)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpError maps service sentinels onto statuses at the API boundary.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrInvalidRange):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrConflict), errors.Is(err, errs.ErrDuplicate):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrStorageUnavailable):
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

// parseDateRange reads the startDate/endDate query params as YYYY-MM-DD.
func parseDateRange(c echo.Context) (time.Time, time.Time, error) {
	start, err := time.Parse(time.DateOnly, c.QueryParam("startDate"))
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("startDate must be YYYY-MM-DD")
	}
	end, err := time.Parse(time.DateOnly, c.QueryParam("endDate"))
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("endDate must be YYYY-MM-DD")
	}
	return start, end, nil
}
