package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"fleetgate/config"
	"fleetgate/internal/domain/entity"
	domainerrors "fleetgate/internal/domain/errors"
	"fleetgate/internal/usecase"
)

// sessionContextKey is where the authenticated session lives in echo.Context.
const sessionContextKey = "session"

// SignInPath is where unauthenticated page requests are sent.
const SignInPath = "/signin"

// AuthMiddleware guards routes behind the server-side session.
type AuthMiddleware struct {
	sessionUC usecase.SessionUsecase
	cfg       *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessionUC usecase.SessionUsecase, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{sessionUC: sessionUC, cfg: cfg}
}

// GetSession returns the session placed in context by Authenticate, or nil.
func GetSession(c echo.Context) *entity.Session {
	session, _ := c.Get(sessionContextKey).(*entity.Session)
	return session
}

// Authenticate resolves the session cookie and rejects requests without a
// live session. Page requests are redirected to the sign-in route with the
// attempted URL preserved in callbackUrl; API requests get 401.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session, ok := m.resolve(c)
		if !ok {
			return m.reject(c)
		}

		c.Set(sessionContextKey, session)

		return next(c)
	}
}

// RedirectIfAuthenticated sends already-signed-in users away from the
// sign-in and sign-up routes, honoring callbackUrl when present.
func (m *AuthMiddleware) RedirectIfAuthenticated(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := m.resolve(c); ok {
			target := c.QueryParam("callbackUrl")
			if !safeCallbackURL(target) {
				target = "/"
			}
			return c.Redirect(http.StatusFound, target)
		}

		return next(c)
	}
}

func (m *AuthMiddleware) resolve(c echo.Context) (*entity.Session, bool) {
	cookie, err := c.Cookie(m.cfg.Session.CookieName)
	if err != nil || cookie.Value == "" {
		return nil, false
	}

	sessionID, err := uuid.Parse(cookie.Value)
	if err != nil {
		return nil, false
	}

	session, err := m.sessionUC.Authenticate(c.Request().Context(), sessionID)
	if err != nil {
		return nil, false
	}

	return session, true
}

func (m *AuthMiddleware) reject(c echo.Context) error {
	if wantsHTML(c.Request()) {
		target := SignInPath + "?callbackUrl=" + url.QueryEscape(c.Request().RequestURI)
		return c.Redirect(http.StatusFound, target)
	}

	return domainerrors.ErrSessionExpired
}

func wantsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

// safeCallbackURL only allows same-site relative targets.
func safeCallbackURL(target string) bool {
	return strings.HasPrefix(target, "/") && !strings.HasPrefix(target, "//")
}
