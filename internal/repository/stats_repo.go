package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/fleetflow/fleetflow-api/pkg/model"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// StatsRepository manages the system/fleet_status singleton document.
type StatsRepository struct {
	client *firestore.Client
}

func NewStatsRepository(client *firestore.Client) *StatsRepository {
	return &StatsRepository{client: client}
}

func (r *StatsRepository) SaveFleetSnapshot(ctx context.Context, snap model.FleetSnapshot) error {
	ref := r.client.Collection("system").Doc("fleet_status")
	if _, err := ref.Set(ctx, snap); err != nil {
		return fmt.Errorf("save fleet snapshot: %w", err)
	}
	return nil
}

// GetFleetSnapshot returns ok=false when no snapshot has been written yet.
func (r *StatsRepository) GetFleetSnapshot(ctx context.Context) (model.FleetSnapshot, bool, error) {
	ref := r.client.Collection("system").Doc("fleet_status")
	snap, err := ref.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return model.FleetSnapshot{}, false, nil
		}
		return model.FleetSnapshot{}, false, fmt.Errorf("get fleet snapshot: %w", err)
	}
	var out model.FleetSnapshot
	if err := snap.DataTo(&out); err != nil {
		return model.FleetSnapshot{}, false, fmt.Errorf("decode fleet snapshot: %w", err)
	}
	return out, true, nil
}
