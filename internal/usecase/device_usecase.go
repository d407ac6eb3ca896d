// Package usecase defines the application-facing interfaces and their DTOs.
package usecase

import (
	"context"

	"fleetgate/internal/domain/entity"
)

// DevicePageSize is the fixed page size of the device table.
const DevicePageSize = 15

// PageButton is one entry of the pagination widget: either a selectable
// page number or a non-selectable ellipsis placeholder.
type PageButton struct {
	Page     int  `json:"page,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
}

// ListOptions select a view over the device roster.
type ListOptions struct {
	// Query filters locally, case-insensitive, over id, plate, gsm and owner.
	Query string
	// Page is 1-based; out-of-range values clamp.
	Page int
}

// DeviceTable is one rendered page of the device roster.
type DeviceTable struct {
	Rows       []entity.Device `json:"rows"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	TotalPages int             `json:"totalPages"`
	PerPage    int             `json:"perPage"`
	Pages      []PageButton    `json:"pages"`
	// SearchHint is non-empty when the query is numeric but shorter than a
	// full device identifier.
	SearchHint string `json:"searchHint,omitempty"`
}

// DeviceInput carries the create/update form fields. Empty optional fields
// are omitted from the upstream payload.
type DeviceInput struct {
	ID         string `json:"id"`
	Owner      string `json:"owner"`
	GSM        string `json:"gsm"`
	Plate      string `json:"plate"`
	Timezone   string `json:"timezone"`
	Registered string `json:"registered"`
}

// SearchSession is one client's incremental search lifecycle: queries come
// in per keystroke, server lookups fire only after the query has been
// quiescent for the debounce interval. Safe for use from one goroutine
// per session.
type SearchSession interface {
	// SetQuery feeds the latest query. The returned hint is non-empty when
	// the query is numeric but too short for a direct lookup.
	SetQuery(query string) (hint string)

	// Close cancels any pending debounce timer.
	Close()
}

// DeviceUsecase drives the device roster: bulk loading with recent-ID
// supplementation, reconciliation, presentation and CRUD against the
// upstream API.
type DeviceUsecase interface {
	// LoadRoster fetches the bulk roster plus any recently-viewed devices
	// missing from it, merged by ID, last write wins.
	LoadRoster(ctx context.Context, session *entity.Session) ([]entity.Device, error)

	// PresentRoster sorts, filters and paginates an already-loaded roster.
	PresentRoster(roster []entity.Device, opts ListOptions) *DeviceTable

	// ListDevices is LoadRoster followed by PresentRoster.
	ListDevices(ctx context.Context, session *entity.Session, opts ListOptions) (*DeviceTable, error)

	// SearchByID performs a direct upstream lookup and records every
	// returned device in the session user's recent list. Empty results are
	// not an error.
	SearchByID(ctx context.Context, session *entity.Session, query string) ([]entity.Device, error)

	// CreateDevice registers a device after checking the loaded roster for
	// a duplicate identifier.
	CreateDevice(ctx context.Context, session *entity.Session, input *DeviceInput) error

	// UpdateDevice patches a device, falling back to PUT upstream.
	UpdateDevice(ctx context.Context, session *entity.Session, id string, input *DeviceInput) error

	// DeleteDevice removes a device.
	DeleteDevice(ctx context.Context, session *entity.Session, id string) error

	// NewSearchSession builds a debounced search session whose merged
	// results are delivered through apply.
	NewSearchSession(session *entity.Session, apply func([]entity.Device)) SearchSession
}
