package model

import "time"

// RecentDeviceModel stores one user's recently-touched device IDs as a
// JSON-encoded array, most recent first.
type RecentDeviceModel struct {
	Username  string    `gorm:"column:username;primaryKey"`
	DeviceIDs []byte    `gorm:"column:device_ids;type:jsonb;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName specifies the table name for RecentDeviceModel
func (RecentDeviceModel) TableName() string {
	return "recent_devices"
}
