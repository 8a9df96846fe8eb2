package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/carznow/rental-service/rental/internal/model"
)

func (h *Handler) ListCars(c echo.Context) error {
	filter := model.CarFilter{
		CarType:      c.QueryParam("carType"),
		FuelType:     c.QueryParam("fuelType"),
		Transmission: c.QueryParam("transmission"),
		Brand:        c.QueryParam("brand"),
	}
	if v := c.QueryParam("priceMin"); v != "" {
		min, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "priceMin must be a number")
		}
		filter.PriceMin = &min
	}
	if v := c.QueryParam("priceMax"); v != "" {
		max, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "priceMax must be a number")
		}
		filter.PriceMax = &max
	}
	filter.MinSeats, _ = strconv.Atoi(c.QueryParam("minSeats"))
	filter.Page, _ = strconv.Atoi(c.QueryParam("page"))
	filter.Size, _ = strconv.Atoi(c.QueryParam("size"))

	cars, err := h.rentalSvc.ListCars(c.Request().Context(), filter)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, cars)
}

func (h *Handler) GetCar(c echo.Context) error {
	carUid := c.Param("carUid")
	if carUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "empty carUid")
	}
	car, err := h.rentalSvc.GetCar(c.Request().Context(), carUid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, car)
}

func (h *Handler) CreateCar(c echo.Context) error {
	var req model.CreateCarRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	car, err := h.rentalSvc.CreateCar(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, car)
}

func (h *Handler) UpdateCar(c echo.Context) error {
	carUid := c.Param("carUid")
	if carUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "empty carUid")
	}
	var req model.UpdateCarRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	car, err := h.rentalSvc.UpdateCar(c.Request().Context(), carUid, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, car)
}

func (h *Handler) DeleteCar(c echo.Context) error {
	carUid := c.Param("carUid")
	if carUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "empty carUid")
	}
	if err := h.rentalSvc.DeleteCar(c.Request().Context(), carUid); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) UploadCarImage(c echo.Context) error {
	carUid := c.Param("carUid")
	if carUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "empty carUid")
	}
	file, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "image file is required")
	}
	src, err := file.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	defer src.Close()

	url, err := h.rentalSvc.UploadCarImage(c.Request().Context(), carUid,
		file.Filename, src, file.Size, file.Header.Get(echo.HeaderContentType))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"url": url})
}
