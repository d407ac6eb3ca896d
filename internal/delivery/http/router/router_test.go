package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fleetgate/config"
	"fleetgate/internal/delivery/http/middleware"
	"fleetgate/internal/delivery/http/router/handler"
	"fleetgate/internal/domain/entity"
	mockUsecase "fleetgate/internal/mocks/usecase"
)

func newTestRouter(t *testing.T) (*echo.Echo, *mockUsecase.MockSessionUsecase) {
	t.Helper()

	sessionUC := mockUsecase.NewMockSessionUsecase(t)
	cfg := &config.Config{}
	cfg.Session.CookieName = "auth_token"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := NewRouter(RouterParams{
		AuthHandler:    handler.NewAuthHandler(sessionUC, cfg, logger),
		UserHandler:    handler.NewUserHandler(sessionUC, logger),
		DeviceHandler:  handler.NewDeviceHandler(nil, logger),
		VehicleHandler: handler.NewVehicleHandler(nil, logger),
		SearchHandler:  handler.NewSearchHandler(nil, logger),
		AuthMiddleware: middleware.NewAuthMiddleware(sessionUC, cfg),
	})

	e := echo.New()
	r.RegisterRoutes(e)

	return e, sessionUC
}

func liveSession(id uuid.UUID) *entity.Session {
	return &entity.Session{
		ID:        id,
		Username:  "budi",
		User:      entity.User{ID: 42, Username: "budi"},
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func TestRoutes_LoginWithLiveSessionStillLogsIn(t *testing.T) {
	e, sessionUC := newTestRouter(t)

	current := uuid.New()
	fresh := uuid.New()
	sessionUC.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(liveSession(fresh), nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"username":"budi","password":"secret"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: current.String()})
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	// an existing session cookie does not block a fresh login
	assert.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, fresh.String(), cookies[0].Value)
}

func TestRoutes_SignInPageBouncesAuthenticatedVisitor(t *testing.T) {
	e, sessionUC := newTestRouter(t)

	current := uuid.New()
	sessionUC.EXPECT().
		Authenticate(mock.Anything, current).
		Return(liveSession(current), nil)

	req := httptest.NewRequest(http.MethodGet, "/signin?callbackUrl=%2Fdevices", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: current.String()})
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/devices", rec.Header().Get(echo.HeaderLocation))
}

func TestRoutes_SignInPageServesAnonymousVisitor(t *testing.T) {
	e, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/signin", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Silakan login terlebih dahulu.")
}
