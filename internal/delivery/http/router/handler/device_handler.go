package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"fleetgate/internal/delivery/http/middleware"
	"fleetgate/internal/delivery/http/response"
	"fleetgate/internal/domain/entity"
	"fleetgate/internal/usecase"
)

// DeviceHandler serves the device roster endpoints.
type DeviceHandler struct {
	uc     usecase.DeviceUsecase
	logger *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler, injected by Fx.
func NewDeviceHandler(uc usecase.DeviceUsecase, logger *slog.Logger) *DeviceHandler {
	return &DeviceHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns one page of the reconciled device roster.
func (h *DeviceHandler) List(c echo.Context) error {
	session := middleware.GetSession(c)

	page, _ := strconv.Atoi(c.QueryParam("page"))
	table, err := h.uc.ListDevices(c.Request().Context(), session, usecase.ListOptions{
		Query: c.QueryParam("query"),
		Page:  page,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, table, "")
}

// Search performs a direct upstream lookup by device ID. An empty result
// is a successful response with an empty list.
func (h *DeviceHandler) Search(c echo.Context) error {
	session := middleware.GetSession(c)

	query := c.QueryParam("query")
	if query == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Parameter query harus diisi.")
	}

	devices, err := h.uc.SearchByID(c.Request().Context(), session, query)
	if err != nil {
		return errors.WithStack(err)
	}
	if devices == nil {
		devices = []entity.Device{}
	}

	return response.Success(c, http.StatusOK, devices, "")
}

// Create registers a new device.
func (h *DeviceHandler) Create(c echo.Context) error {
	session := middleware.GetSession(c)

	var input *usecase.DeviceInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}

	if err := h.uc.CreateDevice(c.Request().Context(), session, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Device berhasil dibuat")
}

// Update patches an existing device.
func (h *DeviceHandler) Update(c echo.Context) error {
	session := middleware.GetSession(c)

	var input *usecase.DeviceInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}

	if err := h.uc.UpdateDevice(c.Request().Context(), session, c.Param("id"), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Device berhasil diperbarui")
}

// Delete removes a device.
func (h *DeviceHandler) Delete(c echo.Context) error {
	session := middleware.GetSession(c)

	if err := h.uc.DeleteDevice(c.Request().Context(), session, c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Device berhasil dihapus")
}
