package metrics

import (
	"github.com/fleetflow/fleetflow-api/pkg/model"
	"github.com/prometheus/client_golang/prometheus"
)

// Fleet exposes dashboard aggregation results as prometheus metrics.
type Fleet struct {
	Utilization         prometheus.Gauge
	Vehicles            *prometheus.GaugeVec
	AggregationFailures prometheus.Counter
}

// NewFleet creates fleet metrics and registers them with reg.
func NewFleet(reg prometheus.Registerer) *Fleet {
	m := &Fleet{
		Utilization: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fleetflow_fleet_utilization_percent",
			Help: "Share of the fleet currently on a trip (0-100).",
		}),
		Vehicles: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "fleetflow_fleet_vehicles",
			Help: "Number of vehicles per operational status.",
		}, []string{"status"}),
		AggregationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fleetflow_fleet_aggregation_failures_total",
			Help: "Fleet status aggregations aborted by an unclassifiable vehicle.",
		}),
	}
	reg.MustRegister(m.Utilization, m.Vehicles, m.AggregationFailures)
	return m
}

// Observe records a successful aggregation. Statuses absent from the result are reset to zero.
func (m *Fleet) Observe(status model.FleetStatus) {
	m.Utilization.Set(float64(status.Utilization))
	for _, s := range model.AllVehicleStatuses() {
		m.Vehicles.WithLabelValues(string(s)).Set(0)
	}
	for _, g := range status.Groups {
		m.Vehicles.WithLabelValues(string(g.Status)).Set(float64(g.Value))
	}
}
