package fleet

import (
	"fmt"

	"github.com/fleetflow/fleetflow-api/pkg/model"
)

// ClassificationError reports a vehicle whose status is not one of the canonical values.
type ClassificationError struct {
	VehicleID string
	Status    string
}

func (e *ClassificationError) Error() string {
	if e.Status == "" {
		return fmt.Sprintf("vehicle %q has no status", e.VehicleID)
	}
	return fmt.Sprintf("vehicle %q has unrecognized status %q", e.VehicleID, e.Status)
}

// ParseStatus maps a raw status string to its VehicleStatus. The match is exact.
func ParseStatus(raw string) (model.VehicleStatus, bool) {
	switch s := model.VehicleStatus(raw); s {
	case model.StatusOnTrip,
		model.StatusAvailable,
		model.StatusInShop,
		model.StatusRetired,
		model.StatusSuspended:
		return s, true
	}
	return "", false
}

// Classify returns the status bucket of a vehicle record.
func Classify(v model.Vehicle) (model.VehicleStatus, error) {
	status, ok := ParseStatus(string(v.Status))
	if !ok {
		return "", &ClassificationError{VehicleID: v.ID, Status: string(v.Status)}
	}
	return status, nil
}
