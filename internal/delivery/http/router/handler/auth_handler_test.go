package handler

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
	"fleetgate/internal/domain/entity"
	domainerrors "fleetgate/internal/domain/errors"
	mockUsecase "fleetgate/internal/mocks/usecase"
)

func newTestAuthHandler(t *testing.T) (*AuthHandler, *mockUsecase.MockSessionUsecase) {
	sessionUC := mockUsecase.NewMockSessionUsecase(t)
	cfg := &config.Config{}
	cfg.Session.CookieName = "auth_token"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewAuthHandler(sessionUC, cfg, logger), sessionUC
}

func postJSON(target, body string) (*http.Request, *httptest.ResponseRecorder, echo.Context) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return req, rec, e.NewContext(req, rec)
}

func TestAuthHandler_Login_SetsSessionCookie(t *testing.T) {
	h, sessionUC := newTestAuthHandler(t)

	id := uuid.New()
	session := &entity.Session{
		ID:        id,
		Username:  "budi",
		Token:     "secret-upstream-token",
		User:      entity.User{ID: 42, Username: "budi"},
		ExpiresAt: time.Now().Add(time.Hour),
	}

	sessionUC.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(session, nil)

	_, rec, c := postJSON("/auth/login", `{"username":"budi","password":"secret"}`)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "auth_token", cookies[0].Name)
	assert.Equal(t, id.String(), cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)

	// the upstream token never leaves the server
	assert.NotContains(t, rec.Body.String(), "secret-upstream-token")
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	h, sessionUC := newTestAuthHandler(t)

	sessionUC.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrLoginFailed)

	_, rec, c := postJSON("/auth/login", `{"username":"budi","password":"wrong"}`)
	err := h.Login(c)
	assert.ErrorIs(t, err, domainerrors.ErrLoginFailed)
	assert.Empty(t, rec.Result().Cookies())
}

func TestAuthHandler_Logout_DestroysSessionAndClearsCookie(t *testing.T) {
	h, sessionUC := newTestAuthHandler(t)

	id := uuid.New()
	sessionUC.EXPECT().
		Logout(mock.Anything, id).
		Return(nil)

	req, rec, c := postJSON("/auth/logout", "")
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: id.String()})

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestAuthHandler_Logout_WithoutCookieStillSucceeds(t *testing.T) {
	h, _ := newTestAuthHandler(t)

	_, rec, c := postJSON("/auth/logout", "")
	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_Logout_StaleSessionStillSucceeds(t *testing.T) {
	h, sessionUC := newTestAuthHandler(t)

	id := uuid.New()
	sessionUC.EXPECT().
		Logout(mock.Anything, id).
		Return(domainerrors.ErrStorage)

	req, rec, c := postJSON("/auth/logout", "")
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: id.String()})

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
