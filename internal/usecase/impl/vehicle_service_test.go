package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fleetgate/internal/domain/entity"
	domainerrors "fleetgate/internal/domain/errors"
	mockRepo "fleetgate/internal/mocks/repository"
	"fleetgate/internal/usecase"
)

type vehicleServiceFixtures struct {
	service     usecase.VehicleUsecase
	vehicleRepo *mockRepo.MockVehicleRepository
}

func createTestVehicleService(t *testing.T) vehicleServiceFixtures {
	vehicleRepo := mockRepo.NewMockVehicleRepository(t)
	service := NewVehicleService(vehicleRepo, newDiscardLogger())

	return vehicleServiceFixtures{
		service:     service,
		vehicleRepo: vehicleRepo,
	}
}

func TestVehicleService_ListVehicles(t *testing.T) {
	fx := createTestVehicleService(t)

	ctx := context.Background()
	session := testSession()

	roster := []entity.Vehicle{
		{ID: 1, Plate: "B 1 A", Status: entity.VehicleStatusActive},
		{ID: 2, Plate: "B 2 B", Status: entity.VehicleStatusInactive},
		{ID: 3, Plate: "D 3 C", Status: entity.VehicleStatusActive},
	}

	fx.vehicleRepo.EXPECT().
		FetchAll(ctx, "test-token").
		Return(roster, nil)

	table, err := fx.service.ListVehicles(ctx, session, usecase.VehicleListOptions{
		Status: usecase.VehicleFilterActive,
		Page:   1,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, table.Total)
	assert.Equal(t, usecase.VehiclePageSize, table.PerPage)
	assert.Len(t, table.Rows, 2)
}

func TestVehicleService_CreateVehicle_RequiresPlate(t *testing.T) {
	fx := createTestVehicleService(t)

	err := fx.service.CreateVehicle(context.Background(), testSession(), &usecase.VehicleInput{})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
}

func TestVehicleService_CreateVehicle(t *testing.T) {
	fx := createTestVehicleService(t)

	ctx := context.Background()
	session := testSession()

	fx.vehicleRepo.EXPECT().
		Create(ctx, "test-token", mock.MatchedBy(func(payload map[string]interface{}) bool {
			_, hasStatus := payload["status"]
			return payload["plate"] == "B 1234 XYZ" && !hasStatus
		})).
		Return(nil)

	err := fx.service.CreateVehicle(ctx, session, &usecase.VehicleInput{Plate: "B 1234 XYZ"})
	require.NoError(t, err)
}

func TestVehicleService_UpdateVehicle_CarriesStatus(t *testing.T) {
	fx := createTestVehicleService(t)

	ctx := context.Background()
	session := testSession()
	status := entity.VehicleStatusInactive

	fx.vehicleRepo.EXPECT().
		Update(ctx, "test-token", 7, mock.MatchedBy(func(payload map[string]interface{}) bool {
			return payload["status"] == entity.VehicleStatusInactive
		})).
		Return(nil)

	err := fx.service.UpdateVehicle(ctx, session, 7, &usecase.VehicleInput{
		Plate:  "B 1234 XYZ",
		Status: &status,
	})
	require.NoError(t, err)
}

func TestVehicleService_DeleteVehicle(t *testing.T) {
	fx := createTestVehicleService(t)

	ctx := context.Background()
	session := testSession()

	fx.vehicleRepo.EXPECT().
		Delete(ctx, "test-token", 7).
		Return(nil)

	require.NoError(t, fx.service.DeleteVehicle(ctx, session, 7))
}
