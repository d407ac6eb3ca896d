package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"fleetgate/internal/delivery/http/middleware"
	"fleetgate/internal/delivery/http/response"
	"fleetgate/internal/usecase"
)

// UserHandler serves the signed-in user's profile endpoints.
type UserHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(sessionUC usecase.SessionUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		sessionUC: sessionUC,
		logger:    logger,
	}
}

// GetSession returns the session's cached user claims without an upstream
// round trip.
func (h *UserHandler) GetSession(c echo.Context) error {
	session := middleware.GetSession(c)

	return response.Success(c, http.StatusOK, session.User, "")
}

// GetProfile fetches the fresh upstream profile.
func (h *UserHandler) GetProfile(c echo.Context) error {
	session := middleware.GetSession(c)

	user, err := h.sessionUC.Profile(c.Request().Context(), session)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "")
}
