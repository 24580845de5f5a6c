package repository

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/fleetflow/fleetflow-api/pkg/model"
	"github.com/google/uuid"
)

// MaintenanceRepository handles Firestore read/write for maintenance records.
type MaintenanceRepository struct {
	docs collection[model.Maintenance]
}

func NewMaintenanceRepository(client *firestore.Client) *MaintenanceRepository {
	return &MaintenanceRepository{docs: collection[model.Maintenance]{client: client, name: "maintenance"}}
}

// List returns maintenance records newest first, optionally restricted to one vehicle.
func (r *MaintenanceRepository) List(ctx context.Context, vehicleID string) ([]model.Maintenance, error) {
	q := r.docs.client.Collection(r.docs.name).Query
	if vehicleID != "" {
		q = q.Where("vehicleId", "==", vehicleID)
	}
	records, err := r.docs.all(q.Documents(ctx), func(m *model.Maintenance, id string) {
		if m.ID == "" {
			m.ID = id
		}
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Date.After(records[j].Date) })
	return records, nil
}

func (r *MaintenanceRepository) Get(ctx context.Context, id string) (model.Maintenance, error) {
	m, err := r.docs.get(ctx, id)
	if err != nil {
		return m, err
	}
	if m.ID == "" {
		m.ID = id
	}
	return m, nil
}

func (r *MaintenanceRepository) Create(ctx context.Context, m model.Maintenance) (model.Maintenance, error) {
	now := time.Now().UTC()
	m.ID = uuid.NewString()
	m.CreatedAt = now
	m.UpdatedAt = now
	if err := r.docs.set(ctx, m.ID, m); err != nil {
		return model.Maintenance{}, err
	}
	return m, nil
}

func (r *MaintenanceRepository) Update(ctx context.Context, id string, m model.Maintenance) (model.Maintenance, error) {
	prev, err := r.Get(ctx, id)
	if err != nil {
		return model.Maintenance{}, err
	}
	m.ID = id
	m.CreatedAt = prev.CreatedAt
	m.UpdatedAt = time.Now().UTC()
	if err := r.docs.set(ctx, id, m); err != nil {
		return model.Maintenance{}, err
	}
	return m, nil
}

func (r *MaintenanceRepository) Delete(ctx context.Context, id string) error {
	return r.docs.delete(ctx, id)
}
