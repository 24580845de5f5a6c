package fleet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fleetflow/fleetflow-api/internal/platform/metrics"
	"github.com/fleetflow/fleetflow-api/pkg/model"
	"go.uber.org/zap"
)

// VehicleLister loads the full, materialized vehicle collection.
type VehicleLister interface {
	List(ctx context.Context) ([]model.Vehicle, error)
}

// SnapshotStore persists the last good fleet status.
type SnapshotStore interface {
	SaveFleetSnapshot(ctx context.Context, snap model.FleetSnapshot) error
	// GetFleetSnapshot returns ok=false when no snapshot has been saved yet.
	GetFleetSnapshot(ctx context.Context) (model.FleetSnapshot, bool, error)
}

// StatusReport is the dashboard response: the aggregated status plus whether it came from a stale snapshot.
type StatusReport struct {
	model.FleetStatus
	Stale      bool      `json:"stale"`
	ComputedAt time.Time `json:"computedAt"`
}

// Service feeds the dashboard with fleet status.
type Service struct {
	vehicles   VehicleLister
	snapshots  SnapshotStore
	aggregator *Aggregator
	metrics    *metrics.Fleet
	logger     *zap.Logger
	now        func() time.Time
}

func NewService(vehicles VehicleLister, snapshots SnapshotStore, aggregator *Aggregator, m *metrics.Fleet, logger *zap.Logger) *Service {
	if aggregator == nil {
		aggregator = NewAggregator(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		vehicles:   vehicles,
		snapshots:  snapshots,
		aggregator: aggregator,
		metrics:    m,
		logger:     logger.Named("fleet"),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// FleetStatus aggregates the current vehicle collection.
// When a vehicle cannot be classified it falls back to the last saved snapshot, marked stale.
// Without a snapshot the ClassificationError is returned to the caller.
func (s *Service) FleetStatus(ctx context.Context) (StatusReport, error) {
	vehicles, err := s.vehicles.List(ctx)
	if err != nil {
		return StatusReport{}, fmt.Errorf("list vehicles: %w", err)
	}

	status, err := s.aggregator.Aggregate(vehicles)
	if err != nil {
		var classErr *ClassificationError
		if !errors.As(err, &classErr) {
			return StatusReport{}, err
		}
		if s.metrics != nil {
			s.metrics.AggregationFailures.Inc()
		}
		s.logger.Warn("fleet aggregation aborted",
			zap.String("vehicleId", classErr.VehicleID),
			zap.String("status", classErr.Status),
		)
		return s.fallback(ctx, err)
	}

	if s.metrics != nil {
		s.metrics.Observe(status)
	}

	computedAt := s.now()
	if s.snapshots != nil {
		snap := model.FleetSnapshot{Status: status, ComputedAt: computedAt}
		if err := s.snapshots.SaveFleetSnapshot(ctx, snap); err != nil {
			s.logger.Error("save fleet snapshot", zap.Error(err))
		}
	}

	return StatusReport{FleetStatus: status, ComputedAt: computedAt}, nil
}

func (s *Service) fallback(ctx context.Context, cause error) (StatusReport, error) {
	if s.snapshots == nil {
		return StatusReport{}, cause
	}
	snap, ok, err := s.snapshots.GetFleetSnapshot(ctx)
	if err != nil {
		s.logger.Error("load fleet snapshot", zap.Error(err))
		return StatusReport{}, cause
	}
	if !ok {
		return StatusReport{}, cause
	}
	// Snapshots saved with nil groups decode as nil; the dashboard expects an array.
	if snap.Status.Groups == nil {
		snap.Status.Groups = []model.StatusGroup{}
	}
	return StatusReport{FleetStatus: snap.Status, Stale: true, ComputedAt: snap.ComputedAt}, nil
}
