// Package repository defines the data access interfaces consumed by the
// use cases. Device, vehicle and auth data live behind the remote tracking
// API; sessions and recent-ID lists live in local persistence.
package repository

import (
	"context"

	"fleetgate/internal/domain/entity"
)

// DeviceRepository is the upstream device collection. Every call carries
// the session's bearer token; the upstream additionally expects it in an
// x-access-token header, which the implementation owns.
type DeviceRepository interface {
	// FetchAll retrieves the full device roster.
	FetchAll(ctx context.Context, token string) ([]entity.Device, error)

	// FetchByID performs a direct lookup. The upstream may answer with a
	// list or a single record; implementations normalize to a list. An
	// unknown ID yields an empty list, not an error.
	FetchByID(ctx context.Context, token string, id string) ([]entity.Device, error)

	// Create registers a new device. The payload carries only non-empty
	// fields.
	Create(ctx context.Context, token string, payload map[string]any) error

	// Update patches an existing device, falling back to PUT when the
	// upstream rejects PATCH with 404 or 405.
	Update(ctx context.Context, token string, id string, payload map[string]any) error

	// Delete removes a device.
	Delete(ctx context.Context, token string, id string) error
}
