package repository

import (
	"context"

	"fleetgate/internal/domain/entity"
)

// VehicleRepository is the upstream fleet vehicle collection.
type VehicleRepository interface {
	// FetchAll retrieves the full vehicle roster.
	FetchAll(ctx context.Context, token string) ([]entity.Vehicle, error)

	// Create registers a new vehicle. The payload carries only non-empty
	// fields.
	Create(ctx context.Context, token string, payload map[string]any) error

	// Update patches an existing vehicle, falling back to PUT when the
	// upstream rejects PATCH with 404 or 405.
	Update(ctx context.Context, token string, id int, payload map[string]any) error

	// Delete removes a vehicle.
	Delete(ctx context.Context, token string, id int) error
}
