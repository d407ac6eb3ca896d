package entity

import (
	"strconv"
	"time"
)

// Vehicle status values as reported by the upstream API.
const (
	VehicleStatusInactive = 0
	VehicleStatusActive   = 1
)

// Vehicle is a fleet vehicle record. The integer ID is assigned by the
// upstream server; Plate is a human-meaningful secondary key and is not
// guaranteed unique. GPSID optionally references a Device identifier.
type Vehicle struct {
	ID          int     `json:"id"`
	Plate       string  `json:"plate"`
	Owner       int     `json:"owner,omitempty"`
	Status      int     `json:"status"`
	Groups      int     `json:"groups,omitempty"`
	Brand       string  `json:"brand,omitempty"`
	Model       string  `json:"model,omitempty"`
	Type        string  `json:"type,omitempty"`
	VehicleType int     `json:"vehicle_type,omitempty"`
	Year        int     `json:"year,omitempty"`
	Color       string  `json:"color,omitempty"`
	STNK        string  `json:"stnk,omitempty"`
	Valid       string  `json:"valid,omitempty"`
	FuelType    string  `json:"fueltype,omitempty"`
	FuelTank    float64 `json:"fueltank,omitempty"`
	Engine      float64 `json:"engine,omitempty"`
	Tire        float64 `json:"tire,omitempty"`
	Capacity    float64 `json:"capacity,omitempty"`
	GSMValid    string  `json:"gsmvalid,omitempty"`
	SpeedLimit  int     `json:"speed_limit,omitempty"`
	KIRValid    string  `json:"kirvalid,omitempty"`
	LastService string  `json:"last_service,omitempty"`
	LastMileage int     `json:"last_mileage,omitempty"`
	Registered  string  `json:"registered,omitempty"`
	GPSID       string  `json:"gpsid,omitempty"`
}

// Key returns the roster primary key. A zero ID counts as missing.
func (v Vehicle) Key() string {
	if v.ID == 0 {
		return ""
	}

	return strconv.Itoa(v.ID)
}

// RegisteredTime parses the registration timestamp, zero time when absent
// or unparsable.
func (v Vehicle) RegisteredTime() time.Time {
	return parseRegistered(v.Registered)
}

// StatusLabel maps the numeric status to its display label.
func (v Vehicle) StatusLabel() string {
	switch v.Status {
	case VehicleStatusActive:
		return "Aktif"
	case VehicleStatusInactive:
		return "Tidak Aktif"
	default:
		return "Tidak Diketahui"
	}
}
