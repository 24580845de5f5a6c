package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/fleetflow/fleetflow-api/pkg/model"
	"github.com/google/uuid"
)

// VehicleRepository handles Firestore read/write for vehicles.
type VehicleRepository struct {
	docs collection[model.Vehicle]
}

func NewVehicleRepository(client *firestore.Client) *VehicleRepository {
	return &VehicleRepository{docs: collection[model.Vehicle]{client: client, name: "vehicles"}}
}

// List loads the whole vehicles collection.
func (r *VehicleRepository) List(ctx context.Context) ([]model.Vehicle, error) {
	iter := r.docs.client.Collection(r.docs.name).Documents(ctx)
	return r.docs.all(iter, func(v *model.Vehicle, id string) {
		if v.ID == "" {
			v.ID = id
		}
	})
}

func (r *VehicleRepository) Get(ctx context.Context, id string) (model.Vehicle, error) {
	v, err := r.docs.get(ctx, id)
	if err != nil {
		return v, err
	}
	if v.ID == "" {
		v.ID = id
	}
	return v, nil
}

// Create assigns an ID and timestamps and stores the vehicle.
func (r *VehicleRepository) Create(ctx context.Context, v model.Vehicle) (model.Vehicle, error) {
	now := time.Now().UTC()
	v.ID = uuid.NewString()
	v.CreatedAt = now
	v.UpdatedAt = now
	if err := r.docs.set(ctx, v.ID, v); err != nil {
		return model.Vehicle{}, err
	}
	return v, nil
}

// Update replaces an existing vehicle, keeping its creation time.
func (r *VehicleRepository) Update(ctx context.Context, id string, v model.Vehicle) (model.Vehicle, error) {
	prev, err := r.Get(ctx, id)
	if err != nil {
		return model.Vehicle{}, err
	}
	v.ID = id
	v.CreatedAt = prev.CreatedAt
	v.UpdatedAt = time.Now().UTC()
	if err := r.docs.set(ctx, id, v); err != nil {
		return model.Vehicle{}, err
	}
	return v, nil
}

func (r *VehicleRepository) Delete(ctx context.Context, id string) error {
	return r.docs.delete(ctx, id)
}
