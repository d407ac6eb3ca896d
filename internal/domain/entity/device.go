// Package entity contains the core business objects of the project.
package entity

import "time"

// Device is a GPS tracking unit as reported by the upstream API. The ID is
// a 15-digit IMEI-shaped string, treated as an opaque primary key. All other
// fields are optional; Registered carries the raw upstream timestamp string.
type Device struct {
	ID         string `json:"id"`
	Owner      string `json:"owner,omitempty"`
	GSM        string `json:"gsm,omitempty"`
	Plate      string `json:"plate,omitempty"`
	Timezone   string `json:"timezone,omitempty"`
	Registered string `json:"registered,omitempty"`
}

// Key returns the roster primary key.
func (d Device) Key() string {
	return d.ID
}

// registeredLayouts are the timestamp formats the upstream is known to emit.
var registeredLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// RegisteredTime parses the registration timestamp. Unparsable or missing
// values return the zero time, which sorts as earliest.
func (d Device) RegisteredTime() time.Time {
	return parseRegistered(d.Registered)
}

func parseRegistered(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range registeredLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}

	return time.Time{}
}
