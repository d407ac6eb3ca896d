package impl

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetgate/internal/domain/entity"
	"fleetgate/internal/usecase"
)

func TestMerge(t *testing.T) {
	t.Parallel()

	base := []entity.Device{
		{ID: "a", Owner: "old-a"},
		{ID: "b", Owner: "old-b"},
	}

	t.Run("extra replaces in place, last write wins", func(t *testing.T) {
		t.Parallel()

		merged := Merge(base, []entity.Device{
			{ID: "b", Owner: "new-b"},
			{ID: "c", Owner: "new-c"},
		})

		require.Len(t, merged, 3)
		assert.Equal(t, "a", merged[0].ID)
		assert.Equal(t, "new-b", merged[1].Owner)
		assert.Equal(t, "c", merged[2].ID)
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()

		extra := []entity.Device{{ID: "c", Owner: "c"}}
		once := Merge(base, extra)
		twice := Merge(once, extra)
		assert.Equal(t, once, twice)
	})

	t.Run("empty key extras dropped", func(t *testing.T) {
		t.Parallel()

		merged := Merge(base, []entity.Device{{Owner: "anonymous"}})
		assert.Len(t, merged, 2)
	})

	t.Run("base untouched", func(t *testing.T) {
		t.Parallel()

		_ = Merge(base, []entity.Device{{ID: "a", Owner: "mutated"}})
		assert.Equal(t, "old-a", base[0].Owner)
	})

	t.Run("duplicate extras collapse to the last", func(t *testing.T) {
		t.Parallel()

		merged := Merge(base, []entity.Device{
			{ID: "c", Owner: "first"},
			{ID: "c", Owner: "second"},
		})
		require.Len(t, merged, 3)
		assert.Equal(t, "second", merged[2].Owner)
	})
}

func TestSortDevices(t *testing.T) {
	t.Parallel()

	devices := []entity.Device{
		{ID: "1", Registered: "2024-01-01 00:00:00"},
		{ID: "2", Registered: "not-a-date"},
		{ID: "3", Registered: "2024-06-01 00:00:00"},
		{ID: "4"},
		{ID: "5", Registered: "2024-06-01 00:00:00"},
	}
	SortDevices(devices)

	ids := make([]string, 0, len(devices))
	for _, d := range devices {
		ids = append(ids, d.ID)
	}
	// newest first, unparsable timestamps last, ties break on id descending
	assert.Equal(t, []string{"5", "3", "1", "4", "2"}, ids)
}

func TestFilterDevices(t *testing.T) {
	t.Parallel()

	devices := []entity.Device{
		{ID: "867000000000001", Plate: "B 1234 XYZ", GSM: "0812", Owner: "Budi"},
		{ID: "867000000000002", Plate: "D 777 AA", GSM: "0856", Owner: "Sari"},
	}

	assert.Len(t, FilterDevices(devices, ""), 2)
	assert.Len(t, FilterDevices(devices, "budi"), 1)
	assert.Len(t, FilterDevices(devices, "1234"), 1)
	assert.Len(t, FilterDevices(devices, "0856"), 1)
	assert.Len(t, FilterDevices(devices, "8670"), 2)
	assert.Empty(t, FilterDevices(devices, "nothing"))
}

func TestSortVehicles(t *testing.T) {
	t.Parallel()

	vehicles := []entity.Vehicle{
		{ID: 1, Registered: "2024-01-01"},
		{ID: 2},
		{ID: 3, Registered: "2024-03-01"},
	}
	SortVehicles(vehicles)

	assert.Equal(t, 3, vehicles[0].ID)
	assert.Equal(t, 1, vehicles[1].ID)
	assert.Equal(t, 2, vehicles[2].ID)
}

func TestFilterVehicles(t *testing.T) {
	t.Parallel()

	vehicles := []entity.Vehicle{
		{ID: 1, Plate: "B 1 A", Type: "Pickup", Status: entity.VehicleStatusActive},
		{ID: 2, Plate: "B 2 B", STNK: "STNK-778899", Status: entity.VehicleStatusInactive},
		{ID: 3, Plate: "D 3 C", Status: 7},
	}

	assert.Len(t, FilterVehicles(vehicles, "", usecase.VehicleFilterAll), 3)
	assert.Len(t, FilterVehicles(vehicles, "", usecase.VehicleFilterActive), 1)
	assert.Len(t, FilterVehicles(vehicles, "", usecase.VehicleFilterInactive), 1)
	assert.Len(t, FilterVehicles(vehicles, "b ", usecase.VehicleFilterAll), 2)
	assert.Len(t, FilterVehicles(vehicles, "b ", usecase.VehicleFilterActive), 1)

	// type and STNK number match too
	pickups := FilterVehicles(vehicles, "pickup", usecase.VehicleFilterAll)
	if assert.Len(t, pickups, 1) {
		assert.Equal(t, 1, pickups[0].ID)
	}
	byStnk := FilterVehicles(vehicles, "778899", usecase.VehicleFilterAll)
	if assert.Len(t, byStnk, 1) {
		assert.Equal(t, 2, byStnk[0].ID)
	}
}

func TestPaginate(t *testing.T) {
	t.Parallel()

	rows := make([]int, 33)

	page, effective, total := Paginate(rows, 1, 15)
	assert.Len(t, page, 15)
	assert.Equal(t, 1, effective)
	assert.Equal(t, 3, total)

	page, effective, _ = Paginate(rows, 3, 15)
	assert.Len(t, page, 3)
	assert.Equal(t, 3, effective)

	_, effective, _ = Paginate(rows, 99, 15)
	assert.Equal(t, 3, effective)

	_, effective, _ = Paginate(rows, 0, 15)
	assert.Equal(t, 1, effective)

	page, effective, total = Paginate([]int{}, 1, 15)
	assert.Empty(t, page)
	assert.Equal(t, 1, effective)
	assert.Equal(t, 1, total)
}

func TestPageNumbers(t *testing.T) {
	t.Parallel()

	render := func(buttons []usecase.PageButton) string {
		var s string
		for _, b := range buttons {
			if b.Ellipsis {
				s += ".."
			} else {
				s += strconv.Itoa(b.Page) + " "
			}
		}
		return s
	}

	tests := []struct {
		current, total int
		want           string
	}{
		{1, 1, "1 "},
		{2, 5, "1 2 3 4 5 "},
		{1, 10, "1 2 ..10 "},
		{5, 10, "1 ..4 5 6 ..10 "},
		{10, 10, "1 ..9 10 "},
		{2, 10, "1 2 3 ..10 "},
		{9, 10, "1 ..8 9 10 "},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, render(PageNumbers(tt.current, tt.total)),
			"current=%d total=%d", tt.current, tt.total)
	}
}

func TestSearchHint(t *testing.T) {
	t.Parallel()

	assert.Equal(t, searchHintMessage, searchHint("8670", 15))
	assert.Empty(t, searchHint("867000000000001", 15))
	assert.Empty(t, searchHint("abc123", 15))
	assert.Empty(t, searchHint("", 15))
	assert.Equal(t, searchHintMessage, searchHint(" 123 ", 15))
}
