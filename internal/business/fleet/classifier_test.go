package fleet

import (
	"errors"
	"testing"

	"github.com/fleetflow/fleetflow-api/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_CanonicalStatuses(t *testing.T) {
	for _, s := range model.AllVehicleStatuses() {
		got, err := Classify(model.Vehicle{ID: "v1", Status: s})
		require.NoError(t, err, "status %q", s)
		assert.Equal(t, s, got)
	}
}

func TestClassify_Rejects(t *testing.T) {
	cases := []string{"parked", "", "ON_TRIP", " available", "in-shop"}
	for _, raw := range cases {
		_, err := Classify(model.Vehicle{ID: "truck-7", Status: model.VehicleStatus(raw)})
		require.Error(t, err, "status %q", raw)

		var classErr *ClassificationError
		require.True(t, errors.As(err, &classErr))
		assert.Equal(t, "truck-7", classErr.VehicleID)
		assert.Equal(t, raw, classErr.Status)
		assert.Contains(t, err.Error(), "truck-7")
	}
}

func TestParseStatus(t *testing.T) {
	s, ok := ParseStatus("in_shop")
	assert.True(t, ok)
	assert.Equal(t, model.StatusInShop, s)

	_, ok = ParseStatus("parked")
	assert.False(t, ok)
}
