package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fleetgate/config"
	"fleetgate/internal/domain/entity"
	domainerrors "fleetgate/internal/domain/errors"
	mockUsecase "fleetgate/internal/mocks/usecase"
)

func newTestMiddleware(t *testing.T) (*AuthMiddleware, *mockUsecase.MockSessionUsecase) {
	sessionUC := mockUsecase.NewMockSessionUsecase(t)
	cfg := &config.Config{}
	cfg.Session.CookieName = "auth_token"

	return NewAuthMiddleware(sessionUC, cfg), sessionUC
}

func guardRequest(m *AuthMiddleware, req *http.Request) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := m.Authenticate(func(c echo.Context) error {
		session := GetSession(c)
		return c.String(http.StatusOK, session.Username)
	})

	return rec, handler(c)
}

func TestAuthenticate_ValidSession(t *testing.T) {
	m, sessionUC := newTestMiddleware(t)

	id := uuid.New()
	session := &entity.Session{ID: id, Username: "budi", ExpiresAt: time.Now().Add(time.Hour)}

	sessionUC.EXPECT().
		Authenticate(mock.Anything, id).
		Return(session, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/devices", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: id.String()})

	rec, err := guardRequest(m, req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "budi", rec.Body.String())
}

func TestAuthenticate_MissingCookie_APIRequestGets401(t *testing.T) {
	m, _ := newTestMiddleware(t)

	req := httptest.NewRequest(http.MethodGet, "/api/devices", nil)
	req.Header.Set("Accept", "application/json")

	_, err := guardRequest(m, req)
	assert.ErrorIs(t, err, domainerrors.ErrSessionExpired)
}

func TestAuthenticate_MissingCookie_PageRequestRedirects(t *testing.T) {
	m, _ := newTestMiddleware(t)

	req := httptest.NewRequest(http.MethodGet, "/devices?page=2", nil)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	rec, err := guardRequest(m, req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/signin?callbackUrl=%2Fdevices%3Fpage%3D2", rec.Header().Get("Location"))
}

func TestAuthenticate_MalformedCookieIsRejected(t *testing.T) {
	m, _ := newTestMiddleware(t)

	req := httptest.NewRequest(http.MethodGet, "/api/devices", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: "not-a-uuid"})

	_, err := guardRequest(m, req)
	assert.ErrorIs(t, err, domainerrors.ErrSessionExpired)
}

func TestAuthenticate_ExpiredSessionIsRejected(t *testing.T) {
	m, sessionUC := newTestMiddleware(t)

	id := uuid.New()
	sessionUC.EXPECT().
		Authenticate(mock.Anything, id).
		Return(nil, domainerrors.ErrSessionExpired)

	req := httptest.NewRequest(http.MethodGet, "/api/devices", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: id.String()})

	_, err := guardRequest(m, req)
	assert.ErrorIs(t, err, domainerrors.ErrSessionExpired)
}

func TestRedirectIfAuthenticated(t *testing.T) {
	m, sessionUC := newTestMiddleware(t)

	id := uuid.New()
	sessionUC.EXPECT().
		Authenticate(mock.Anything, id).
		Return(&entity.Session{ID: id}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/signin?callbackUrl=%2Fvehicles", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: id.String()})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := m.RedirectIfAuthenticated(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/vehicles", rec.Header().Get("Location"))
}

func TestRedirectIfAuthenticated_UnsafeCallbackFallsBackToRoot(t *testing.T) {
	m, sessionUC := newTestMiddleware(t)

	id := uuid.New()
	sessionUC.EXPECT().
		Authenticate(mock.Anything, id).
		Return(&entity.Session{ID: id}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/signin?callbackUrl=//evil.example", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: id.String()})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := m.RedirectIfAuthenticated(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)
	require.NoError(t, err)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestRedirectIfAuthenticated_AnonymousPassesThrough(t *testing.T) {
	m, _ := newTestMiddleware(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/signin", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := m.RedirectIfAuthenticated(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
