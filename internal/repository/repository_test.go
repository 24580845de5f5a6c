package repository

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/fleetflow/fleetflow-api/pkg/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newEmulatorClient connects to the Firestore emulator under a fresh project ID
// so every test starts from empty collections.
func newEmulatorClient(t *testing.T) *firestore.Client {
	t.Helper()
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}
	project := "fleetflow-test-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	client, err := firestore.NewClient(context.Background(), project)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestVehicleRepositoryCreateAssignsID(t *testing.T) {
	ctx := context.Background()
	repo := NewVehicleRepository(newEmulatorClient(t))

	created, err := repo.Create(ctx, model.Vehicle{Name: "Van 1", LicensePlate: "FL-001", Status: model.StatusAvailable})
	require.NoError(t, err)
	_, err = uuid.Parse(created.ID)
	require.NoError(t, err)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, model.StatusAvailable, got.Status)
}

func TestVehicleRepositoryUpdateKeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	repo := NewVehicleRepository(newEmulatorClient(t))

	created, err := repo.Create(ctx, model.Vehicle{Name: "Van 1", Status: model.StatusAvailable})
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	updated, err := repo.Update(ctx, created.ID, model.Vehicle{Name: "Van 1", Status: model.StatusOnTrip})
	require.NoError(t, err)
	// Firestore keeps timestamps at microsecond precision.
	createdAt := created.CreatedAt.Truncate(time.Microsecond)
	assert.True(t, createdAt.Equal(updated.CreatedAt.Truncate(time.Microsecond)))
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, createdAt.Equal(got.CreatedAt.Truncate(time.Microsecond)))
	assert.Equal(t, model.StatusOnTrip, got.Status)
}

func TestVehicleRepositoryMissingDocument(t *testing.T) {
	ctx := context.Background()
	repo := NewVehicleRepository(newEmulatorClient(t))
	missing := uuid.NewString()

	_, err := repo.Get(ctx, missing)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = repo.Update(ctx, missing, model.Vehicle{Name: "ghost"})
	require.ErrorIs(t, err, ErrNotFound)

	err = repo.Delete(ctx, missing)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestVehicleRepositoryDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewVehicleRepository(newEmulatorClient(t))

	created, err := repo.Create(ctx, model.Vehicle{Name: "Van 1", Status: model.StatusRetired})
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.Get(ctx, created.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestVehicleRepositoryListEmpty(t *testing.T) {
	items, err := NewVehicleRepository(newEmulatorClient(t)).List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, items)
	assert.Empty(t, items)
}

func TestFuelLogRepositoryListFiltersByVehicle(t *testing.T) {
	ctx := context.Background()
	repo := NewFuelLogRepository(newEmulatorClient(t))
	day := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	_, err := repo.Create(ctx, model.FuelLog{VehicleID: "v1", Date: day, Liters: 40})
	require.NoError(t, err)
	_, err = repo.Create(ctx, model.FuelLog{VehicleID: "v1", Date: day.AddDate(0, 0, 3), Liters: 35})
	require.NoError(t, err)
	_, err = repo.Create(ctx, model.FuelLog{VehicleID: "v2", Date: day, Liters: 60})
	require.NoError(t, err)

	logs, err := repo.List(ctx, "v1")
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.True(t, logs[0].Date.After(logs[1].Date))
	for _, l := range logs {
		assert.Equal(t, "v1", l.VehicleID)
	}
}

func TestStatsRepositorySnapshot(t *testing.T) {
	ctx := context.Background()
	repo := NewStatsRepository(newEmulatorClient(t))

	_, ok, err := repo.GetFleetSnapshot(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	want := model.FleetSnapshot{
		Status: model.FleetStatus{
			Groups:      []model.StatusGroup{{Status: model.StatusOnTrip, Label: "On Trip", Color: "blue", Value: 3}},
			Utilization: 100,
			Total:       3,
			Active:      3,
		},
		ComputedAt: time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.SaveFleetSnapshot(ctx, want))

	got, ok, err := repo.GetFleetSnapshot(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want.Status, got.Status)
	assert.True(t, want.ComputedAt.Equal(got.ComputedAt))
}
