package upstream

import (
	"context"
	"net/http"
	"strconv"

	"fleetgate/internal/domain/entity"
	"fleetgate/internal/domain/repository"
)

// vehicleRepository implements repository.VehicleRepository against the
// upstream /fleet/vehicle endpoints.
type vehicleRepository struct {
	client *Client
}

// NewVehicleRepository is the constructor for vehicleRepository.
func NewVehicleRepository(client *Client) repository.VehicleRepository {
	return &vehicleRepository{
		client: client,
	}
}

// FetchAll retrieves the full vehicle roster.
func (repo *vehicleRepository) FetchAll(ctx context.Context, token string) ([]entity.Vehicle, error) {
	const action = "mengambil data kendaraan"

	resp, raw, err := repo.client.do(ctx, http.MethodGet, "/fleet/vehicle", token, false, nil)
	if err != nil {
		return nil, transportError(action)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, statusError(resp.StatusCode, raw, action)
	}

	vehicles, err := decodeList[entity.Vehicle](raw)
	if err != nil {
		return nil, err
	}

	return vehicles, nil
}

// Create registers a new vehicle.
func (repo *vehicleRepository) Create(ctx context.Context, token string, payload map[string]any) error {
	const action = "membuat data kendaraan"

	resp, raw, err := repo.client.do(ctx, http.MethodPost, "/fleet/vehicle", token, false, cleanPayload(payload))
	if err != nil {
		return transportError(action)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp.StatusCode, raw, action)
	}

	return nil
}

// Update patches a vehicle, retrying once with PUT when the upstream
// rejects PATCH with 404 or 405.
func (repo *vehicleRepository) Update(ctx context.Context, token string, id int, payload map[string]any) error {
	const action = "memperbarui data kendaraan"
	path := "/fleet/vehicle/" + strconv.Itoa(id)
	cleaned := cleanPayload(payload)

	resp, raw, err := repo.client.do(ctx, http.MethodPatch, path, token, false, cleaned)
	if err != nil {
		return transportError(action)
	}

	if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusMethodNotAllowed {
		resp, raw, err = repo.client.do(ctx, http.MethodPut, path, token, false, cleaned)
		if err != nil {
			return transportError(action)
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp.StatusCode, raw, action)
	}

	return nil
}

// Delete removes a vehicle.
func (repo *vehicleRepository) Delete(ctx context.Context, token string, id int) error {
	const action = "menghapus data kendaraan"

	resp, raw, err := repo.client.do(ctx, http.MethodDelete, "/fleet/vehicle/"+strconv.Itoa(id), token, false, nil)
	if err != nil {
		return transportError(action)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp.StatusCode, raw, action)
	}

	return nil
}
