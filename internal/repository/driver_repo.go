package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/fleetflow/fleetflow-api/pkg/model"
	"github.com/google/uuid"
)

// DriverRepository handles Firestore read/write for drivers.
type DriverRepository struct {
	docs collection[model.Driver]
}

func NewDriverRepository(client *firestore.Client) *DriverRepository {
	return &DriverRepository{docs: collection[model.Driver]{client: client, name: "drivers"}}
}

func (r *DriverRepository) List(ctx context.Context) ([]model.Driver, error) {
	iter := r.docs.client.Collection(r.docs.name).Documents(ctx)
	return r.docs.all(iter, func(d *model.Driver, id string) {
		if d.ID == "" {
			d.ID = id
		}
	})
}

func (r *DriverRepository) Get(ctx context.Context, id string) (model.Driver, error) {
	d, err := r.docs.get(ctx, id)
	if err != nil {
		return d, err
	}
	if d.ID == "" {
		d.ID = id
	}
	return d, nil
}

func (r *DriverRepository) Create(ctx context.Context, d model.Driver) (model.Driver, error) {
	now := time.Now().UTC()
	d.ID = uuid.NewString()
	d.CreatedAt = now
	d.UpdatedAt = now
	if err := r.docs.set(ctx, d.ID, d); err != nil {
		return model.Driver{}, err
	}
	return d, nil
}

func (r *DriverRepository) Update(ctx context.Context, id string, d model.Driver) (model.Driver, error) {
	prev, err := r.Get(ctx, id)
	if err != nil {
		return model.Driver{}, err
	}
	d.ID = id
	d.CreatedAt = prev.CreatedAt
	d.UpdatedAt = time.Now().UTC()
	if err := r.docs.set(ctx, id, d); err != nil {
		return model.Driver{}, err
	}
	return d, nil
}

func (r *DriverRepository) Delete(ctx context.Context, id string) error {
	return r.docs.delete(ctx, id)
}
