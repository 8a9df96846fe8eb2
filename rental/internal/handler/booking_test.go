package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/carznow/rental-service/pkg/auth"
	"github.com/carznow/rental-service/pkg/validate"
	"github.com/carznow/rental-service/rental/internal/errs"
	"github.com/carznow/rental-service/rental/internal/handler"
	"github.com/carznow/rental-service/rental/internal/model"

	service_mocks "github.com/carznow/rental-service/rental/internal/handler/mocks"
)

const (
	testCarUid  = "f7cdc58f-2caf-4b15-9727-f89dcc629b27"
	testUserUid = "5c9f63cf-7be4-4d2f-b0c1-6b9cc3adf2e4"
)

func bearerToken(t *testing.T, role string) string {
	t.Helper()
	token, _, err := auth.NewToken(testAuthCfg, testUserUid, "renter@example.com", role)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestHandler_CheckAvailability(t *testing.T) {
	t.Parallel()
	type input struct {
		carUid   string
		startRaw string
		endRaw   string
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockRentalService, inp input)

	var tests = []struct {
		name         string
		input        input
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:  "available",
			input: input{carUid: testCarUid, startRaw: "2026-10-01", endRaw: "2026-10-05"},
			mockBehavior: func(r *service_mocks.MockRentalService, inp input) {
				start := time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)
				end := time.Date(2026, time.October, 5, 0, 0, 0, 0, time.UTC)
				r.EXPECT().
					CheckAvailability(context.Background(), inp.carUid, start, end).
					Return(true, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"available":true}`,
			},
		},
		{
			name:  "booked",
			input: input{carUid: testCarUid, startRaw: "2026-10-01", endRaw: "2026-10-05"},
			mockBehavior: func(r *service_mocks.MockRentalService, inp input) {
				r.EXPECT().
					CheckAvailability(context.Background(), inp.carUid, gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"available":false}`,
			},
		},
		{
			name:  "inverted range",
			input: input{carUid: testCarUid, startRaw: "2026-10-05", endRaw: "2026-10-01"},
			mockBehavior: func(r *service_mocks.MockRentalService, inp input) {
				r.EXPECT().
					CheckAvailability(context.Background(), inp.carUid, gomock.Any(), gomock.Any()).
					Return(false, errs.ErrInvalidRange)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"invalid date range"}`,
			},
		},
		{
			name:         "err. malformed date",
			input:        input{carUid: testCarUid, startRaw: "01.10.2026", endRaw: "2026-10-05"},
			mockBehavior: func(r *service_mocks.MockRentalService, inp input) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"startDate must be YYYY-MM-DD"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockRentalService(c)
			h := handler.New(svc, testAuthCfg, zap.NewExample().Named("test"))

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.GET("/api/v1/cars/:carUid/availability", h.CheckAvailability)

			r := httptest.NewRequest(http.MethodGet,
				fmt.Sprintf("/api/v1/cars/%s/availability?startDate=%s&endDate=%s",
					tt.input.carUid, tt.input.startRaw, tt.input.endRaw), http.NoBody)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc, tt.input)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_GetPrice(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockRentalService(c)
	h := handler.New(svc, testAuthCfg, zap.NewExample().Named("test"))

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.GET("/api/v1/cars/:carUid/price", h.GetPrice)

	start := time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.October, 5, 0, 0, 0, 0, time.UTC)
	svc.EXPECT().
		Price(context.Background(), testCarUid, start, end).
		Return(model.PriceResponse{Days: 5, TotalPrice: 200}, nil)

	r := httptest.NewRequest(http.MethodGet,
		fmt.Sprintf("/api/v1/cars/%s/price?startDate=2026-10-01&endDate=2026-10-05", testCarUid), http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"days":5,"totalPrice":200}`, strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_CreateBooking(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockRentalService)

	body := fmt.Sprintf(`{"carUid":"%s","startDate":"2026-10-01","endDate":"2026-10-05"}`, testCarUid)

	var tests = []struct {
		name         string
		body         string
		authHeader   string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:       "created",
			body:       body,
			authHeader: "", // filled per-test with a real token
			mockBehavior: func(r *service_mocks.MockRentalService) {
				r.EXPECT().
					CreateBooking(gomock.Any(), model.CreateBookingRequest{
						CarUid:    testCarUid,
						StartDate: model.NewDate(2026, time.October, 1),
						EndDate:   model.NewDate(2026, time.October, 5),
						UserUid:   testUserUid,
					}).
					Return(model.Booking{
						BookingUid: "77e1c5ab-9fbf-4a2d-b5f7-6b0a3e6da30f",
						CarUid:     testCarUid,
						UserUid:    testUserUid,
						StartDate:  model.NewDate(2026, time.October, 1),
						EndDate:    model.NewDate(2026, time.October, 5),
						TotalPrice: 200,
						Status:     model.StatusConfirmed,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: fmt.Sprintf(`{"bookingUid":"77e1c5ab-9fbf-4a2d-b5f7-6b0a3e6da30f","carUid":"%s","userUid":"%s","startDate":"2026-10-01","endDate":"2026-10-05","totalPrice":200,"status":"confirmed","createdAt":"0001-01-01T00:00:00Z"}`, testCarUid, testUserUid),
			},
		},
		{
			name: "dates already booked",
			body: body,
			mockBehavior: func(r *service_mocks.MockRentalService) {
				r.EXPECT().
					CreateBooking(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, errs.ErrConflict)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"dates are already booked"}`,
			},
		},
		{
			name:         "err. no token",
			body:         body,
			authHeader:   "none",
			mockBehavior: func(r *service_mocks.MockRentalService) {},
			response: response{
				expectedCode: http.StatusUnauthorized,
				expectedBody: `{"message":"No Authorization Header"}`,
			},
		},
		{
			name:         "err. carUid not a uuid",
			body:         `{"carUid":"camry","startDate":"2026-10-01","endDate":"2026-10-05"}`,
			mockBehavior: func(r *service_mocks.MockRentalService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockRentalService(c)
			h := handler.New(svc, testAuthCfg, zap.NewExample().Named("test"))
			e := h.NewRouter()

			r := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			if tt.authHeader != "none" {
				r.Header.Set("Authorization", bearerToken(t, auth.RoleUser))
			}
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_CancelBooking(t *testing.T) {
	t.Parallel()
	const bookingUid = "77e1c5ab-9fbf-4a2d-b5f7-6b0a3e6da30f"

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		svc := service_mocks.NewMockRentalService(c)
		h := handler.New(svc, testAuthCfg, zap.NewExample().Named("test"))
		e := h.NewRouter()

		svc.EXPECT().
			CancelBooking(gomock.Any(), bookingUid, testUserUid, false).
			Return(model.Booking{BookingUid: bookingUid, Status: model.StatusCancelled}, nil)

		r := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/"+bookingUid+"/cancel", http.NoBody)
		r.Header.Set("Authorization", bearerToken(t, auth.RoleUser))
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("admin role reaches the service", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		svc := service_mocks.NewMockRentalService(c)
		h := handler.New(svc, testAuthCfg, zap.NewExample().Named("test"))
		e := h.NewRouter()

		svc.EXPECT().
			CancelBooking(gomock.Any(), bookingUid, testUserUid, true).
			Return(model.Booking{BookingUid: bookingUid, Status: model.StatusCancelled}, nil)

		r := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/"+bookingUid+"/cancel", http.NoBody)
		r.Header.Set("Authorization", bearerToken(t, auth.RoleAdmin))
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("someone else's booking", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		svc := service_mocks.NewMockRentalService(c)
		h := handler.New(svc, testAuthCfg, zap.NewExample().Named("test"))
		e := h.NewRouter()

		svc.EXPECT().
			CancelBooking(gomock.Any(), bookingUid, testUserUid, false).
			Return(model.Booking{}, errs.ErrNotFound)

		r := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/"+bookingUid+"/cancel", http.NoBody)
		r.Header.Set("Authorization", bearerToken(t, auth.RoleUser))
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusNotFound, w.Code)
		require.Equal(t, `{"message":"not found"}`, strings.Trim(w.Body.String(), "\n"))
	})
}
