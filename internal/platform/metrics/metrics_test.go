package metrics

import (
	"testing"

	"github.com/fleetflow/fleetflow-api/pkg/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveResetsMissingStatuses(t *testing.T) {
	m := NewFleet(prometheus.NewRegistry())

	m.Observe(model.FleetStatus{
		Groups:      []model.StatusGroup{{Status: model.StatusInShop, Value: 3}},
		Utilization: 0,
		Total:       3,
	})
	assert.Equal(t, 3.0, testutil.ToFloat64(m.Vehicles.WithLabelValues("in_shop")))

	m.Observe(model.FleetStatus{
		Groups:      []model.StatusGroup{{Status: model.StatusOnTrip, Value: 1}},
		Utilization: 100,
		Total:       1,
		Active:      1,
	})
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Vehicles.WithLabelValues("in_shop")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Vehicles.WithLabelValues("on_trip")))
	assert.Equal(t, 100.0, testutil.ToFloat64(m.Utilization))
	assert.Equal(t, 5, testutil.CollectAndCount(m.Vehicles))
}
