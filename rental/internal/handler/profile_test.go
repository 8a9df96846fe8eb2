package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/carznow/rental-service/pkg/auth"
	"github.com/carznow/rental-service/rental/internal/errs"
	"github.com/carznow/rental-service/rental/internal/handler"
	"github.com/carznow/rental-service/rental/internal/model"

	service_mocks "github.com/carznow/rental-service/rental/internal/handler/mocks"
)

func TestHandler_Register(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
	}
	type mockBehavior func(r *service_mocks.MockRentalService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "created",
			body: `{"email":"renter@example.com","password":"correct-horse","fullName":"Sam Renter"}`,
			mockBehavior: func(r *service_mocks.MockRentalService) {
				r.EXPECT().
					Register(gomock.Any(), model.RegisterRequest{
						Email:    "renter@example.com",
						Password: "correct-horse",
						FullName: "Sam Renter",
					}).
					Return(model.Profile{
						UserUid:  testUserUid,
						Email:    "renter@example.com",
						FullName: "Sam Renter",
						Role:     model.RoleUser,
					}, nil)
			},
			response: response{expectedCode: http.StatusCreated},
		},
		{
			name: "email taken",
			body: `{"email":"renter@example.com","password":"correct-horse","fullName":"Sam Renter"}`,
			mockBehavior: func(r *service_mocks.MockRentalService) {
				r.EXPECT().
					Register(gomock.Any(), gomock.Any()).
					Return(model.Profile{}, errs.ErrDuplicate)
			},
			response: response{expectedCode: http.StatusConflict},
		},
		{
			name:         "err. short password",
			body:         `{"email":"renter@example.com","password":"short","fullName":"Sam Renter"}`,
			mockBehavior: func(r *service_mocks.MockRentalService) {},
			response:     response{expectedCode: http.StatusBadRequest},
		},
		{
			name:         "err. not an email",
			body:         `{"email":"renter","password":"correct-horse","fullName":"Sam Renter"}`,
			mockBehavior: func(r *service_mocks.MockRentalService) {},
			response:     response{expectedCode: http.StatusBadRequest},
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

			r := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
		})
	}
}

// The issued token must round-trip through the auth middleware, so a
// login immediately unlocks the profile endpoints.
func TestHandler_Authorize(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockRentalService(c)
	h := handler.New(svc, testAuthCfg, zap.NewExample().Named("test"))
	e := h.NewRouter()

	profile := model.Profile{
		UserUid:  testUserUid,
		Email:    "renter@example.com",
		FullName: "Sam Renter",
		Role:     model.RoleUser,
	}
	svc.EXPECT().
		Authenticate(gomock.Any(), "renter@example.com", "correct-horse").
		Return(profile, nil)

	r := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"email":"renter@example.com","password":"correct-horse"}`))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	var resp model.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	require.Greater(t, resp.ExpiresIn, 0)

	claims, err := auth.ParseToken([]byte(testAuthCfg.JWTKey), resp.AccessToken)
	require.NoError(t, err)
	require.Equal(t, testUserUid, claims.Profile.UserUid)
	require.Equal(t, auth.RoleUser, claims.Profile.Role)

	svc.EXPECT().
		GetProfile(gomock.Any(), testUserUid).
		Return(profile, nil)

	r = httptest.NewRequest(http.MethodGet, "/api/v1/profiles/me", http.NoBody)
	r.Header.Set("Authorization", "Bearer "+resp.AccessToken)
	w = httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotContains(t, w.Body.String(), "passwordHash")
}

func TestHandler_Authorize_BadCredentials(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockRentalService(c)
	h := handler.New(svc, testAuthCfg, zap.NewExample().Named("test"))
	e := h.NewRouter()

	svc.EXPECT().
		Authenticate(gomock.Any(), "renter@example.com", "wrong-pass").
		Return(model.Profile{}, errs.ErrInvalidCredentials)

	r := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"email":"renter@example.com","password":"wrong-pass"}`))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, `{"message":"invalid credentials"}`, strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_UpdateProfileRole(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockRentalService(c)
	h := handler.New(svc, testAuthCfg, zap.NewExample().Named("test"))
	e := h.NewRouter()

	svc.EXPECT().
		UpdateProfileRole(gomock.Any(), testUserUid, model.RoleAdmin).
		Return(model.Profile{UserUid: testUserUid, Role: model.RoleAdmin}, nil)

	r := httptest.NewRequest(http.MethodPut, "/api/v1/profiles/"+testUserUid+"/role",
		strings.NewReader(`{"role":"admin"}`))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	r.Header.Set("Authorization", bearerToken(t, auth.RoleAdmin))
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)

	// an unknown role never reaches the service
	r = httptest.NewRequest(http.MethodPut, "/api/v1/profiles/"+testUserUid+"/role",
		strings.NewReader(`{"role":"superuser"}`))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	r.Header.Set("Authorization", bearerToken(t, auth.RoleAdmin))
	w = httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusBadRequest, w.Code)
}
