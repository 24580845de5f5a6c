package fleet

import (
	"errors"
	"testing"

	"github.com/fleetflow/fleetflow-api/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vehiclesWith(statuses ...model.VehicleStatus) []model.Vehicle {
	out := make([]model.Vehicle, 0, len(statuses))
	for i, s := range statuses {
		out = append(out, model.Vehicle{
			ID:     string(rune('a' + i)),
			Make:   "Ford",
			Model:  "Transit",
			Status: s,
		})
	}
	return out
}

func groupValues(groups []model.StatusGroup) map[model.VehicleStatus]int {
	out := make(map[model.VehicleStatus]int, len(groups))
	for _, g := range groups {
		out[g.Status] = g.Value
	}
	return out
}

func TestAggregate_MixedFleet(t *testing.T) {
	agg := NewAggregator(nil)
	got, err := agg.Aggregate(vehiclesWith(
		model.StatusOnTrip, model.StatusOnTrip, model.StatusAvailable, model.StatusInShop,
	))
	require.NoError(t, err)

	assert.Equal(t, []model.StatusGroup{
		{Status: model.StatusOnTrip, Label: "On Trip", Color: "blue", Value: 2},
		{Status: model.StatusAvailable, Label: "Available", Color: "green", Value: 1},
		{Status: model.StatusInShop, Label: "In Shop", Color: "amber", Value: 1},
	}, got.Groups)
	assert.Equal(t, 50, got.Utilization)
	assert.Equal(t, 4, got.Total)
	assert.Equal(t, 2, got.Active)
}

func TestAggregate_AllRetired(t *testing.T) {
	got, err := NewAggregator(nil).Aggregate(vehiclesWith(
		model.StatusRetired, model.StatusRetired, model.StatusRetired,
	))
	require.NoError(t, err)

	require.Len(t, got.Groups, 1)
	assert.Equal(t, model.StatusRetired, got.Groups[0].Status)
	assert.Equal(t, 3, got.Groups[0].Value)
	assert.Equal(t, 0, got.Utilization)
}

func TestAggregate_EmptyFleet(t *testing.T) {
	got, err := NewAggregator(nil).Aggregate(nil)
	require.NoError(t, err)
	assert.Empty(t, got.Groups)
	assert.Equal(t, 0, got.Utilization)
	assert.Equal(t, 0, got.Total)
}

func TestAggregate_Rounding(t *testing.T) {
	cases := []struct {
		name     string
		statuses []model.VehicleStatus
		want     int
	}{
		{"one of two", []model.VehicleStatus{model.StatusOnTrip, model.StatusAvailable}, 50},
		{"one of three", []model.VehicleStatus{model.StatusOnTrip, model.StatusAvailable, model.StatusAvailable}, 33},
		{"two of three", []model.VehicleStatus{model.StatusOnTrip, model.StatusOnTrip, model.StatusInShop}, 67},
		{"one of eight rounds half up", append([]model.VehicleStatus{model.StatusOnTrip},
			model.StatusRetired, model.StatusRetired, model.StatusRetired, model.StatusRetired,
			model.StatusRetired, model.StatusRetired, model.StatusRetired), 13},
		{"all on trip", []model.VehicleStatus{model.StatusOnTrip, model.StatusOnTrip}, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NewAggregator(nil).Aggregate(vehiclesWith(tc.statuses...))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Utilization)
		})
	}
}

func TestAggregate_CanonicalOrder(t *testing.T) {
	got, err := NewAggregator(nil).Aggregate(vehiclesWith(
		model.StatusSuspended, model.StatusRetired, model.StatusInShop, model.StatusAvailable, model.StatusOnTrip,
	))
	require.NoError(t, err)

	order := make([]model.VehicleStatus, 0, len(got.Groups))
	for _, g := range got.Groups {
		order = append(order, g.Status)
	}
	assert.Equal(t, model.AllVehicleStatuses(), order)
}

func TestAggregate_SumMatchesInputAndBounds(t *testing.T) {
	all := model.AllVehicleStatuses()
	for n := 0; n < 40; n++ {
		statuses := make([]model.VehicleStatus, 0, n)
		for i := 0; i < n; i++ {
			statuses = append(statuses, all[(i*7+n)%len(all)])
		}
		got, err := NewAggregator(nil).Aggregate(vehiclesWith(statuses...))
		require.NoError(t, err)

		sum := 0
		for _, g := range got.Groups {
			assert.Positive(t, g.Value, "zero-count groups must be omitted")
			sum += g.Value
		}
		assert.Equal(t, n, sum)
		assert.Equal(t, n, got.Total)
		assert.GreaterOrEqual(t, got.Utilization, 0)
		assert.LessOrEqual(t, got.Utilization, 100)
	}
}

func TestAggregate_IdempotentAndDoesNotMutate(t *testing.T) {
	input := vehiclesWith(model.StatusOnTrip, model.StatusInShop, model.StatusAvailable)
	before := append([]model.Vehicle(nil), input...)

	agg := NewAggregator(nil)
	first, err := agg.Aggregate(input)
	require.NoError(t, err)
	second, err := agg.Aggregate(input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, before, input)
}

func TestAggregate_UnknownStatusFailsFast(t *testing.T) {
	input := vehiclesWith(model.StatusOnTrip, "parked", model.StatusAvailable)

	_, err := NewAggregator(nil).Aggregate(input)
	require.Error(t, err)

	var classErr *ClassificationError
	require.True(t, errors.As(err, &classErr))
	assert.Equal(t, input[1].ID, classErr.VehicleID)
	assert.Equal(t, "parked", classErr.Status)
}

func TestAggregate_CustomPalette(t *testing.T) {
	palette := Palette{
		model.StatusOnTrip: {Label: "Driving", Color: "#0000ff"},
	}
	got, err := NewAggregator(palette).Aggregate(vehiclesWith(model.StatusOnTrip, model.StatusRetired))
	require.NoError(t, err)

	vals := groupValues(got.Groups)
	assert.Equal(t, 1, vals[model.StatusOnTrip])
	assert.Equal(t, "Driving", got.Groups[0].Label)
	assert.Equal(t, "#0000ff", got.Groups[0].Color)
	// statuses missing from the palette are labelled with their raw value
	assert.Equal(t, "retired", got.Groups[1].Label)
	assert.Empty(t, got.Groups[1].Color)
}
