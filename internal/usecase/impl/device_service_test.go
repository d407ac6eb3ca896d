package impl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fleetgate/internal/domain/entity"
	domainerrors "fleetgate/internal/domain/errors"
	mockRepo "fleetgate/internal/mocks/repository"
	"fleetgate/internal/usecase"
)

type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
	recentRepo *mockRepo.MockRecentDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	recentRepo := mockRepo.NewMockRecentDeviceRepository(t)
	service := NewDeviceService(deviceRepo, recentRepo, newTestConfig(), newDiscardLogger())

	return deviceServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
		recentRepo: recentRepo,
	}
}

func testSession() *entity.Session {
	return &entity.Session{
		Username: "budi",
		Token:    "test-token",
	}
}

func TestDeviceService_LoadRoster_MergesRecent(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	session := testSession()

	roster := []entity.Device{
		{ID: "867000000000001", Owner: "A"},
		{ID: "867000000000002", Owner: "B"},
	}

	fx.deviceRepo.EXPECT().
		FetchAll(ctx, "test-token").
		Return(roster, nil)
	fx.recentRepo.EXPECT().
		List(ctx, "budi").
		Return([]string{"867000000000002", "867000000000003"}, nil)
	fx.deviceRepo.EXPECT().
		FetchByID(mock.Anything, "test-token", "867000000000003").
		Return([]entity.Device{{ID: "867000000000003", Owner: "C"}}, nil)

	merged, err := fx.service.LoadRoster(ctx, session)
	require.NoError(t, err)
	require.Len(t, merged, 3)
	assert.Equal(t, "867000000000003", merged[2].ID)
}

func TestDeviceService_LoadRoster_RecentFailureIsAbsorbed(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	session := testSession()

	roster := []entity.Device{{ID: "867000000000001"}}

	fx.deviceRepo.EXPECT().
		FetchAll(ctx, "test-token").
		Return(roster, nil)
	fx.recentRepo.EXPECT().
		List(ctx, "budi").
		Return([]string{"867000000000009"}, nil)
	fx.deviceRepo.EXPECT().
		FetchByID(mock.Anything, "test-token", "867000000000009").
		Return(nil, domainerrors.NewUpstreamError("upstream down"))

	merged, err := fx.service.LoadRoster(ctx, session)
	require.NoError(t, err)
	assert.Len(t, merged, 1)
}

func TestDeviceService_SearchByID_RecordsRecent(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	session := testSession()

	fx.deviceRepo.EXPECT().
		FetchByID(ctx, "test-token", "867000000000001").
		Return([]entity.Device{{ID: "867000000000001"}}, nil)
	fx.recentRepo.EXPECT().
		Touch(ctx, "budi", "867000000000001").
		Return(nil)

	devices, err := fx.service.SearchByID(ctx, session, " 867000000000001 ")
	require.NoError(t, err)
	assert.Len(t, devices, 1)
}

func TestDeviceService_SearchByID_EmptyResultIsNotAnError(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	session := testSession()

	fx.deviceRepo.EXPECT().
		FetchByID(ctx, "test-token", "867000000000404").
		Return([]entity.Device{}, nil)

	devices, err := fx.service.SearchByID(ctx, session, "867000000000404")
	require.NoError(t, err)
	assert.Empty(t, devices)
}

func TestDeviceService_SearchByID_BlankQuery(t *testing.T) {
	fx := createTestDeviceService(t)

	devices, err := fx.service.SearchByID(context.Background(), testSession(), "   ")
	require.NoError(t, err)
	assert.Nil(t, devices)
}

func TestDeviceService_CreateDevice_DuplicateIsRejectedBeforeUpstream(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	session := testSession()

	fx.deviceRepo.EXPECT().
		FetchAll(ctx, "test-token").
		Return([]entity.Device{{ID: "867000000000001"}}, nil)

	err := fx.service.CreateDevice(ctx, session, &usecase.DeviceInput{ID: "867000000000001"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.HTTPCode())
	assert.Equal(t, `GPS ID "867000000000001" sudah terdaftar.`, appErr.Details())
}

func TestDeviceService_CreateDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	session := testSession()

	fx.deviceRepo.EXPECT().
		FetchAll(ctx, "test-token").
		Return([]entity.Device{}, nil)
	fx.deviceRepo.EXPECT().
		Create(ctx, "test-token", mock.MatchedBy(func(payload map[string]interface{}) bool {
			return payload["id"] == "867000000000001" && payload["owner"] == "Budi"
		})).
		Return(nil)
	fx.recentRepo.EXPECT().
		Touch(ctx, "budi", "867000000000001").
		Return(nil)

	err := fx.service.CreateDevice(ctx, session, &usecase.DeviceInput{
		ID:    "867000000000001",
		Owner: "Budi",
	})
	require.NoError(t, err)
}

func TestDeviceService_CreateDevice_MissingID(t *testing.T) {
	fx := createTestDeviceService(t)

	err := fx.service.CreateDevice(context.Background(), testSession(), &usecase.DeviceInput{})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
}

func TestDeviceService_PresentRoster(t *testing.T) {
	fx := createTestDeviceService(t)

	roster := make([]entity.Device, 0, 20)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range 20 {
		roster = append(roster, entity.Device{
			ID:         string(rune('a' + i)),
			Registered: base.Add(time.Duration(i) * time.Hour).Format("2006-01-02 15:04:05"),
		})
	}

	table := fx.service.PresentRoster(roster, usecase.ListOptions{Page: 2})
	assert.Equal(t, 20, table.Total)
	assert.Equal(t, 2, table.Page)
	assert.Equal(t, 2, table.TotalPages)
	assert.Equal(t, usecase.DevicePageSize, table.PerPage)
	assert.Len(t, table.Rows, 5)
	assert.Empty(t, table.SearchHint)
}

func TestDeviceService_PresentRoster_NumericQueryHint(t *testing.T) {
	fx := createTestDeviceService(t)

	table := fx.service.PresentRoster(nil, usecase.ListOptions{Query: "8670"})
	assert.Equal(t, searchHintMessage, table.SearchHint)
}
