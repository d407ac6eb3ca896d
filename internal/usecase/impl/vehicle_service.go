package impl

import (
	"context"
	"log/slog"
	"strings"

	"fleetgate/internal/domain/entity"
	domainerrors "fleetgate/internal/domain/errors"
	"fleetgate/internal/domain/repository"
	"fleetgate/internal/usecase"
)

type vehicleService struct {
	vehicleRepo repository.VehicleRepository
	logger      *slog.Logger
}

// NewVehicleService creates the vehicle usecase backed by the upstream API.
func NewVehicleService(vehicleRepo repository.VehicleRepository, logger *slog.Logger) usecase.VehicleUsecase {
	return &vehicleService{
		vehicleRepo: vehicleRepo,
		logger:      logger,
	}
}

func (s *vehicleService) LoadRoster(ctx context.Context, session *entity.Session) ([]entity.Vehicle, error) {
	return s.vehicleRepo.FetchAll(ctx, session.Token)
}

func (s *vehicleService) PresentRoster(roster []entity.Vehicle, opts usecase.VehicleListOptions) *usecase.VehicleTable {
	filtered := FilterVehicles(roster, opts.Query, opts.Status)
	SortVehicles(filtered)

	rows, page, totalPages := Paginate(filtered, opts.Page, usecase.VehiclePageSize)

	return &usecase.VehicleTable{
		Rows:       rows,
		Total:      len(filtered),
		Page:       page,
		TotalPages: totalPages,
		PerPage:    usecase.VehiclePageSize,
		Pages:      PageNumbers(page, totalPages),
	}
}

func (s *vehicleService) ListVehicles(ctx context.Context, session *entity.Session, opts usecase.VehicleListOptions) (*usecase.VehicleTable, error) {
	roster, err := s.LoadRoster(ctx, session)
	if err != nil {
		return nil, err
	}
	return s.PresentRoster(roster, opts), nil
}

func (s *vehicleService) CreateVehicle(ctx context.Context, session *entity.Session, input *usecase.VehicleInput) error {
	if strings.TrimSpace(input.Plate) == "" {
		return domainerrors.NewValidationError("Plat nomor harus diisi.")
	}
	return s.vehicleRepo.Create(ctx, session.Token, vehiclePayload(input))
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, session *entity.Session, id int, input *usecase.VehicleInput) error {
	return s.vehicleRepo.Update(ctx, session.Token, id, vehiclePayload(input))
}

func (s *vehicleService) DeleteVehicle(ctx context.Context, session *entity.Session, id int) error {
	return s.vehicleRepo.Delete(ctx, session.Token, id)
}

func vehiclePayload(input *usecase.VehicleInput) map[string]any {
	payload := map[string]any{
		"plate":        input.Plate,
		"brand":        input.Brand,
		"model":        input.Model,
		"type":         input.Type,
		"vehicle_type": input.VehicleType,
		"year":         input.Year,
		"color":        input.Color,
		"stnk":         input.STNK,
		"fueltype":     input.FuelType,
		"fueltank":     input.FuelTank,
		"engine":       input.Engine,
		"tire":         input.Tire,
		"capacity":     input.Capacity,
		"speed_limit":  input.SpeedLimit,
		"gpsid":        input.GPSID,
	}
	if input.Status != nil {
		payload["status"] = *input.Status
	}
	return payload
}
