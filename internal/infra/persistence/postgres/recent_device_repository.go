package postgres

import (
	"context"
	"encoding/json"
	"time"

	"fleetgate/internal/domain/repository"
	"fleetgate/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// recentDeviceRepository implements the repository.RecentDeviceRepository interface.
type recentDeviceRepository struct {
	db *gorm.DB
}

// NewRecentDeviceRepository is the constructor for recentDeviceRepository.
func NewRecentDeviceRepository(db *gorm.DB) repository.RecentDeviceRepository {
	return &recentDeviceRepository{
		db: db,
	}
}

// Touch moves id to the front of owner's recent list, creating the row if
// it does not exist yet.
func (repo *recentDeviceRepository) Touch(ctx context.Context, owner, id string) error {
	if id == "" {
		return nil
	}

	current, err := repo.List(ctx, owner)
	if err != nil {
		return err
	}

	next := touchRecent(current, id)
	encoded, err := json.Marshal(next)
	if err != nil {
		return errors.Wrap(err, "failed to encode recent device IDs")
	}

	row := &model.RecentDeviceModel{
		Username:  owner,
		DeviceIDs: encoded,
		UpdatedAt: time.Now(),
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "username"}},
			DoUpdates: clause.AssignmentColumns([]string{"device_ids", "updated_at"}),
		}).
		Create(row).Error; err != nil {
		return errors.Wrap(err, "failed to upsert recent device IDs")
	}

	return nil
}

// List returns owner's recent device IDs, most recent first.
func (repo *recentDeviceRepository) List(ctx context.Context, owner string) ([]string, error) {
	var row model.RecentDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("username = ?", owner).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find recent device IDs")
	}

	var ids []string
	if err := json.Unmarshal(row.DeviceIDs, &ids); err != nil {
		// A corrupt list resets rather than wedging the roster load.
		return nil, nil
	}

	return compactRecent(ids), nil
}

// touchRecent moves id to the front, deduplicates, and truncates to the
// repository limit. Re-touching an existing id does not change the length.
func touchRecent(ids []string, id string) []string {
	next := make([]string, 0, len(ids)+1)
	next = append(next, id)
	for _, existing := range ids {
		if existing != id && existing != "" {
			next = append(next, existing)
		}
	}

	if len(next) > repository.RecentDeviceLimit {
		next = next[:repository.RecentDeviceLimit]
	}

	return next
}

// compactRecent drops empty entries left by older writers.
func compactRecent(ids []string) []string {
	out := ids[:0]
	for _, id := range ids {
		if id != "" {
			out = append(out, id)
		}
	}

	return out
}
