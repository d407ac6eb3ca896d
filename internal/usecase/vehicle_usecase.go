package usecase

import (
	"context"

	"fleetgate/internal/domain/entity"
)

// VehiclePageSize is the fixed page size of the vehicle table.
const VehiclePageSize = 12

// Vehicle status chips.
const (
	VehicleFilterAll      = "semua"
	VehicleFilterActive   = "aktif"
	VehicleFilterInactive = "nonaktif"
)

// VehicleListOptions select a view over the vehicle roster.
type VehicleListOptions struct {
	Query string
	// Status is one of the chip values; anything else means all.
	Status string
	Page   int
}

// VehicleTable is one rendered page of the vehicle roster.
type VehicleTable struct {
	Rows       []entity.Vehicle `json:"rows"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	TotalPages int              `json:"totalPages"`
	PerPage    int              `json:"perPage"`
	Pages      []PageButton     `json:"pages"`
}

// VehicleInput carries the vehicle create/update form fields.
type VehicleInput struct {
	Plate       string `json:"plate"`
	Brand       string `json:"brand"`
	Model       string `json:"model"`
	Type        string `json:"type"`
	VehicleType string `json:"vehicle_type"`
	Year        string `json:"year"`
	Color       string `json:"color"`
	STNK        string `json:"stnk"`
	FuelType    string `json:"fueltype"`
	FuelTank    string `json:"fueltank"`
	Engine      string `json:"engine"`
	Tire        string `json:"tire"`
	Capacity    string `json:"capacity"`
	SpeedLimit  string `json:"speed_limit"`
	GPSID       string `json:"gpsid"`
	Status      *int   `json:"status"`
}

// VehicleUsecase drives the vehicle roster against the upstream API.
type VehicleUsecase interface {
	LoadRoster(ctx context.Context, session *entity.Session) ([]entity.Vehicle, error)
	PresentRoster(roster []entity.Vehicle, opts VehicleListOptions) *VehicleTable
	ListVehicles(ctx context.Context, session *entity.Session, opts VehicleListOptions) (*VehicleTable, error)
	CreateVehicle(ctx context.Context, session *entity.Session, input *VehicleInput) error
	UpdateVehicle(ctx context.Context, session *entity.Session, id int, input *VehicleInput) error
	DeleteVehicle(ctx context.Context, session *entity.Session, id int) error
}
