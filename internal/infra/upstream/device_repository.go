package upstream

import (
	"context"
	"net/http"
	"net/url"

	"fleetgate/internal/domain/entity"
	"fleetgate/internal/domain/repository"
)

// deviceRepository implements repository.DeviceRepository against the
// upstream /device endpoints.
type deviceRepository struct {
	client *Client
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(client *Client) repository.DeviceRepository {
	return &deviceRepository{
		client: client,
	}
}

// FetchAll retrieves the full device roster.
func (repo *deviceRepository) FetchAll(ctx context.Context, token string) ([]entity.Device, error) {
	const action = "mengambil data device"

	resp, raw, err := repo.client.do(ctx, http.MethodGet, "/device", token, true, nil)
	if err != nil {
		return nil, transportError(action)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, statusError(resp.StatusCode, raw, action)
	}

	devices, err := decodeList[entity.Device](raw)
	if err != nil {
		return nil, err
	}

	return devices, nil
}

// FetchByID performs a direct lookup. Single-record answers are normalized
// to a one-element list; an unrecognized body yields an empty list.
func (repo *deviceRepository) FetchByID(ctx context.Context, token, id string) ([]entity.Device, error) {
	const action = "mengambil data device"

	resp, raw, err := repo.client.do(ctx, http.MethodGet, "/device?id="+url.QueryEscape(id), token, true, nil)
	if err != nil {
		return nil, transportError(action)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, statusError(resp.StatusCode, raw, action)
	}

	return decodeRecords[entity.Device](raw), nil
}

// Create registers a new device.
func (repo *deviceRepository) Create(ctx context.Context, token string, payload map[string]any) error {
	const action = "membuat data device"

	resp, raw, err := repo.client.do(ctx, http.MethodPost, "/device", token, true, cleanPayload(payload))
	if err != nil {
		return transportError(action)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp.StatusCode, raw, action)
	}

	return nil
}

// Update patches a device, retrying once with PUT when the upstream rejects
// PATCH with 404 or 405.
func (repo *deviceRepository) Update(ctx context.Context, token, id string, payload map[string]any) error {
	const action = "memperbarui data device"
	path := "/device/" + url.PathEscape(id)
	cleaned := cleanPayload(payload)

	resp, raw, err := repo.client.do(ctx, http.MethodPatch, path, token, true, cleaned)
	if err != nil {
		return transportError(action)
	}

	if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusMethodNotAllowed {
		resp, raw, err = repo.client.do(ctx, http.MethodPut, path, token, true, cleaned)
		if err != nil {
			return transportError(action)
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp.StatusCode, raw, action)
	}

	return nil
}

// Delete removes a device.
func (repo *deviceRepository) Delete(ctx context.Context, token, id string) error {
	const action = "menghapus data device"

	resp, raw, err := repo.client.do(ctx, http.MethodDelete, "/device/"+url.PathEscape(id), token, true, nil)
	if err != nil {
		return transportError(action)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp.StatusCode, raw, action)
	}

	return nil
}
