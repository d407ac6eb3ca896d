package repository

import "context"

// RecentDeviceLimit caps the per-user recently-touched device ID list.
const RecentDeviceLimit = 10

// RecentDeviceRepository persists the per-user list of recently-touched
// device IDs, most-recent-first, deduplicated, at most RecentDeviceLimit
// entries. Entries are never explicitly expired.
type RecentDeviceRepository interface {
	// Touch moves id to the front of owner's list, inserting it if absent.
	Touch(ctx context.Context, owner, id string) error

	// List returns owner's list, most recent first. An owner with no list
	// yields an empty slice, not an error.
	List(ctx context.Context, owner string) ([]string, error)
}
