// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"fleetgate/config"
	"fleetgate/internal/delivery/http/response"
	"fleetgate/internal/usecase"
)

// AuthHandler owns the sign-in, sign-up and sign-out endpoints. It is the
// only place the session cookie is written.
type AuthHandler struct {
	sessionUC usecase.SessionUsecase
	cfg       *config.Config
	logger    *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(sessionUC usecase.SessionUsecase, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		sessionUC: sessionUC,
		cfg:       cfg,
		logger:    logger,
	}
}

// Login exchanges credentials for a server session and projects it onto the
// cookie. The cookie carries only the session ID, never the upstream token.
func (h *AuthHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	session, err := h.sessionUC.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(h.sessionCookie(session.ID.String(), session.ExpiresAt))

	return response.Success(c, http.StatusOK, session.User, "Login berhasil")
}

// Logout tears the session down. It succeeds even when the cookie is
// missing or stale so a half-signed-out client can always finish.
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(h.cfg.Session.CookieName); err == nil && cookie.Value != "" {
		if sessionID, err := uuid.Parse(cookie.Value); err == nil {
			if err := h.sessionUC.Logout(c.Request().Context(), sessionID); err != nil {
				h.logger.Warn("logout cleanup failed", slog.Any("error", err))
			}
		}
	}

	c.SetCookie(h.expiredCookie())

	return response.Success(c, http.StatusOK, nil, "Logout berhasil")
}

// SignInPage is the target of the guard's redirect. Signed-in visitors
// never reach it, RedirectIfAuthenticated bounces them to callbackUrl
// first; the sign-in UI itself is served by the front-end.
func (h *AuthHandler) SignInPage(c echo.Context) error {
	return response.Success(c, http.StatusOK, nil, "Silakan login terlebih dahulu.")
}

// Register creates an upstream account. The user still signs in afterwards.
func (h *AuthHandler) Register(c echo.Context) error {
	var input *usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	if err := h.sessionUC.Register(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Registrasi berhasil")
}

func (h *AuthHandler) sessionCookie(value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     h.cfg.Session.CookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.cfg.Session.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}

func (h *AuthHandler) expiredCookie() *http.Cookie {
	cookie := h.sessionCookie("", time.Unix(0, 0))
	cookie.MaxAge = -1
	return cookie
}
