// Package impl provides the usecase implementations.
package impl

import (
	"sort"
	"strings"

	"fleetgate/internal/domain/entity"
	"fleetgate/internal/usecase"
)

type keyed interface {
	Key() string
}

// Merge reconciles extra records into a base roster. Base order is
// preserved; an extra whose key already exists replaces the base record in
// place, last write wins. Extras with an empty key are dropped.
func Merge[T keyed](base, extra []T) []T {
	merged := make([]T, len(base))
	copy(merged, base)

	index := make(map[string]int, len(merged))
	for i, rec := range merged {
		if k := rec.Key(); k != "" {
			index[k] = i
		}
	}

	for _, rec := range extra {
		k := rec.Key()
		if k == "" {
			continue
		}
		if i, ok := index[k]; ok {
			merged[i] = rec
			continue
		}
		index[k] = len(merged)
		merged = append(merged, rec)
	}

	return merged
}

// SortDevices orders by registration time, newest first. Records whose
// timestamp cannot be parsed sink to the end; ties break on key,
// descending, to keep the order stable across reloads.
func SortDevices(devices []entity.Device) {
	sort.SliceStable(devices, func(i, j int) bool {
		ti, tj := devices[i].RegisteredTime(), devices[j].RegisteredTime()
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return devices[i].Key() > devices[j].Key()
	})
}

// SortVehicles orders by registration time, newest first, with the same
// tie-break rule as SortDevices.
func SortVehicles(vehicles []entity.Vehicle) {
	sort.SliceStable(vehicles, func(i, j int) bool {
		ti, tj := vehicles[i].RegisteredTime(), vehicles[j].RegisteredTime()
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return vehicles[i].Key() > vehicles[j].Key()
	})
}

// FilterDevices keeps records whose id, plate, gsm or owner contains the
// query, case-insensitive. An empty query keeps everything.
func FilterDevices(devices []entity.Device, query string) []entity.Device {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return devices
	}
	out := make([]entity.Device, 0, len(devices))
	for _, d := range devices {
		if containsFold(d.ID, query) ||
			containsFold(d.Plate, query) ||
			containsFold(d.GSM, query) ||
			containsFold(d.Owner, query) {
			out = append(out, d)
		}
	}
	return out
}

// FilterVehicles keeps records matching the text query on plate, brand,
// model, type, STNK number or gps id, then applies the status chip.
func FilterVehicles(vehicles []entity.Vehicle, query, status string) []entity.Vehicle {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]entity.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if query != "" &&
			!containsFold(v.Plate, query) &&
			!containsFold(v.Brand, query) &&
			!containsFold(v.Model, query) &&
			!containsFold(v.Type, query) &&
			!containsFold(v.STNK, query) &&
			!containsFold(v.GPSID, query) {
			continue
		}
		switch status {
		case usecase.VehicleFilterActive:
			if v.Status != entity.VehicleStatusActive {
				continue
			}
		case usecase.VehicleFilterInactive:
			if v.Status != entity.VehicleStatusInactive {
				continue
			}
		}
		out = append(out, v)
	}
	return out
}

func containsFold(s, lowered string) bool {
	return strings.Contains(strings.ToLower(s), lowered)
}

// Paginate slices one page out of rows. page is 1-based and clamps into
// range; the returned value is the effective page after clamping.
func Paginate[T any](rows []T, page, perPage int) (pageRows []T, effectivePage, totalPages int) {
	totalPages = (len(rows) + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * perPage
	end := start + perPage
	if start > len(rows) {
		start = len(rows)
	}
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end], page, totalPages
}

// PageNumbers renders the pagination widget: at most five numbered
// buttons, with the first and last page always reachable and ellipsis
// placeholders covering the gaps.
func PageNumbers(current, totalPages int) []usecase.PageButton {
	if totalPages <= 5 {
		out := make([]usecase.PageButton, 0, totalPages)
		for p := 1; p <= totalPages; p++ {
			out = append(out, usecase.PageButton{Page: p})
		}
		return out
	}

	out := []usecase.PageButton{{Page: 1}}

	start := current - 1
	end := current + 1
	if start < 2 {
		start = 2
	}
	if end > totalPages-1 {
		end = totalPages - 1
	}

	if start > 2 {
		out = append(out, usecase.PageButton{Ellipsis: true})
	}
	for p := start; p <= end; p++ {
		out = append(out, usecase.PageButton{Page: p})
	}
	if end < totalPages-1 {
		out = append(out, usecase.PageButton{Ellipsis: true})
	}

	return append(out, usecase.PageButton{Page: totalPages})
}

// searchHintMessage nudges the user toward a direct lookup when the query
// is numeric but shorter than a full device identifier.
const searchHintMessage = "Masukkan 15 digit GPS ID untuk pencarian server."

func searchHint(query string, directLength int) string {
	query = strings.TrimSpace(query)
	if query == "" || len(query) >= directLength {
		return ""
	}
	for _, r := range query {
		if r < '0' || r > '9' {
			return ""
		}
	}
	return searchHintMessage
}
