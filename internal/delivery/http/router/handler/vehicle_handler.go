package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"fleetgate/internal/delivery/http/middleware"
	"fleetgate/internal/delivery/http/response"
	"fleetgate/internal/usecase"
)

// VehicleHandler serves the fleet vehicle endpoints.
type VehicleHandler struct {
	uc     usecase.VehicleUsecase
	logger *slog.Logger
}

// NewVehicleHandler is the constructor for VehicleHandler, injected by Fx.
func NewVehicleHandler(uc usecase.VehicleUsecase, logger *slog.Logger) *VehicleHandler {
	return &VehicleHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns one page of the vehicle roster, filtered by the text query
// and the status chip.
func (h *VehicleHandler) List(c echo.Context) error {
	session := middleware.GetSession(c)

	page, _ := strconv.Atoi(c.QueryParam("page"))
	table, err := h.uc.ListVehicles(c.Request().Context(), session, usecase.VehicleListOptions{
		Query:  c.QueryParam("query"),
		Status: c.QueryParam("status"),
		Page:   page,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, table, "")
}

// Create registers a new vehicle.
func (h *VehicleHandler) Create(c echo.Context) error {
	session := middleware.GetSession(c)

	var input *usecase.VehicleInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vehicle input")
	}

	if err := h.uc.CreateVehicle(c.Request().Context(), session, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Kendaraan berhasil dibuat")
}

// Update patches an existing vehicle.
func (h *VehicleHandler) Update(c echo.Context) error {
	session := middleware.GetSession(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "ID kendaraan tidak valid.")
	}

	var input *usecase.VehicleInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vehicle input")
	}

	if err := h.uc.UpdateVehicle(c.Request().Context(), session, id, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Kendaraan berhasil diperbarui")
}

// Delete removes a vehicle.
func (h *VehicleHandler) Delete(c echo.Context) error {
	session := middleware.GetSession(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "ID kendaraan tidak valid.")
	}

	if err := h.uc.DeleteVehicle(c.Request().Context(), session, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Kendaraan berhasil dihapus")
}
