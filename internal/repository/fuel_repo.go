package repository

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/fleetflow/fleetflow-api/pkg/model"
	"github.com/google/uuid"
)

// FuelLogRepository handles Firestore read/write for fuel logs.
type FuelLogRepository struct {
	docs collection[model.FuelLog]
}

func NewFuelLogRepository(client *firestore.Client) *FuelLogRepository {
	return &FuelLogRepository{docs: collection[model.FuelLog]{client: client, name: "fuel_logs"}}
}

// List returns fuel logs newest first, optionally restricted to one vehicle.
func (r *FuelLogRepository) List(ctx context.Context, vehicleID string) ([]model.FuelLog, error) {
	q := r.docs.client.Collection(r.docs.name).Query
	if vehicleID != "" {
		q = q.Where("vehicleId", "==", vehicleID)
	}
	logs, err := r.docs.all(q.Documents(ctx), func(l *model.FuelLog, id string) {
		if l.ID == "" {
			l.ID = id
		}
	})
	if err != nil {
		return nil, err
	}
	// Sorting in memory avoids a composite index on vehicleId+date.
	sort.Slice(logs, func(i, j int) bool { return logs[i].Date.After(logs[j].Date) })
	return logs, nil
}

func (r *FuelLogRepository) Get(ctx context.Context, id string) (model.FuelLog, error) {
	l, err := r.docs.get(ctx, id)
	if err != nil {
		return l, err
	}
	if l.ID == "" {
		l.ID = id
	}
	return l, nil
}

func (r *FuelLogRepository) Create(ctx context.Context, l model.FuelLog) (model.FuelLog, error) {
	l.ID = uuid.NewString()
	l.CreatedAt = time.Now().UTC()
	if err := r.docs.set(ctx, l.ID, l); err != nil {
		return model.FuelLog{}, err
	}
	return l, nil
}

func (r *FuelLogRepository) Update(ctx context.Context, id string, l model.FuelLog) (model.FuelLog, error) {
	prev, err := r.Get(ctx, id)
	if err != nil {
		return model.FuelLog{}, err
	}
	l.ID = id
	l.CreatedAt = prev.CreatedAt
	if err := r.docs.set(ctx, id, l); err != nil {
		return model.FuelLog{}, err
	}
	return l, nil
}

func (r *FuelLogRepository) Delete(ctx context.Context, id string) error {
	return r.docs.delete(ctx, id)
}
