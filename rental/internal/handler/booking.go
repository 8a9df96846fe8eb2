package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carznow/rental-service/pkg/auth"
	"github.com/carznow/rental-service/rental/internal/model"
)

func (h *Handler) CheckAvailability(c echo.Context) error {
	carUid := c.Param("carUid")
	if carUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "empty carUid")
	}
	start, end, err := parseDateRange(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	available, err := h.rentalSvc.CheckAvailability(c.Request().Context(), carUid, start, end)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, model.AvailabilityResponse{Available: available})
}

func (h *Handler) GetPrice(c echo.Context) error {
	carUid := c.Param("carUid")
	if carUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "empty carUid")
	}
	start, end, err := parseDateRange(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	price, err := h.rentalSvc.Price(c.Request().Context(), carUid, start, end)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, price)
}

// ListCarBookings serves the confirmed bookings the storefront runs its
// advisory overlap check against.
func (h *Handler) ListCarBookings(c echo.Context) error {
	carUid := c.Param("carUid")
	if carUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "empty carUid")
	}
	bookings, err := h.rentalSvc.ListConfirmedBookings(c.Request().Context(), carUid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, bookings)
}

func (h *Handler) CreateBooking(c echo.Context) error {
	var req model.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()
	userUid, err := auth.UserUid(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	req.UserUid = userUid

	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.rentalSvc.CreateBooking(ctx, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, booking)
}

func (h *Handler) CancelBooking(c echo.Context) error {
	bookingUid := c.Param("bookingUid")
	if bookingUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "empty bookingUid")
	}
	ctx := c.Request().Context()
	userUid, err := auth.UserUid(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	booking, err := h.rentalSvc.CancelBooking(ctx, bookingUid, userUid, auth.IsAdmin(ctx))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, booking)
}

func (h *Handler) ListBookings(c echo.Context) error {
	bookings, err := h.rentalSvc.ListBookings(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, bookings)
}

func (h *Handler) ListMyBookings(c echo.Context) error {
	ctx := c.Request().Context()
	userUid, err := auth.UserUid(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	bookings, err := h.rentalSvc.ListUserBookings(ctx, userUid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, bookings)
}
