package model

import "time"

// VehicleStatus is the operational state of a vehicle.
type VehicleStatus string

const (
	StatusOnTrip    VehicleStatus = "on_trip"
	StatusAvailable VehicleStatus = "available"
	StatusInShop    VehicleStatus = "in_shop"
	StatusRetired   VehicleStatus = "retired"
	StatusSuspended VehicleStatus = "suspended"
)

// AllVehicleStatuses returns every status in canonical dashboard order.
func AllVehicleStatuses() []VehicleStatus {
	return []VehicleStatus{
		StatusOnTrip,
		StatusAvailable,
		StatusInShop,
		StatusRetired,
		StatusSuspended,
	}
}

// Vehicle is the core document stored in the `vehicles` collection.
type Vehicle struct {
	ID               string        `json:"id,omitempty" firestore:"id,omitempty"`
	Name             string        `json:"name,omitempty" firestore:"name,omitempty"`
	Make             string        `json:"make,omitempty" firestore:"make,omitempty"`
	Model            string        `json:"model,omitempty" firestore:"model,omitempty"`
	Year             int           `json:"year,omitempty" firestore:"year,omitempty"`
	LicensePlate     string        `json:"licensePlate,omitempty" firestore:"licensePlate,omitempty"`
	Type             string        `json:"type,omitempty" firestore:"type,omitempty"` // truck, van, car...
	Status           VehicleStatus `json:"status" firestore:"status"`
	Odometer         float64       `json:"odometer,omitempty" firestore:"odometer,omitempty"`
	AssignedDriverID string        `json:"assignedDriverId,omitempty" firestore:"assignedDriverId,omitempty"`
	CreatedAt        time.Time     `json:"createdAt,omitempty" firestore:"createdAt,omitempty"`
	UpdatedAt        time.Time     `json:"updatedAt,omitempty" firestore:"updatedAt,omitempty"`
}

// Driver is stored in the `drivers` collection.
type Driver struct {
	ID            string    `json:"id,omitempty" firestore:"id,omitempty"`
	Name          string    `json:"name,omitempty" firestore:"name,omitempty"`
	LicenseNumber string    `json:"licenseNumber,omitempty" firestore:"licenseNumber,omitempty"`
	LicenseExpiry time.Time `json:"licenseExpiry,omitempty" firestore:"licenseExpiry,omitempty"`
	Phone         string    `json:"phone,omitempty" firestore:"phone,omitempty"`
	Email         string    `json:"email,omitempty" firestore:"email,omitempty"`
	Status        string    `json:"status,omitempty" firestore:"status,omitempty"` // on_duty, off_duty, suspended
	CreatedAt     time.Time `json:"createdAt,omitempty" firestore:"createdAt,omitempty"`
	UpdatedAt     time.Time `json:"updatedAt,omitempty" firestore:"updatedAt,omitempty"`
}

// FuelLog records a single refuelling of a vehicle.
type FuelLog struct {
	ID        string    `json:"id,omitempty" firestore:"id,omitempty"`
	VehicleID string    `json:"vehicleId,omitempty" firestore:"vehicleId,omitempty"`
	Date      time.Time `json:"date,omitempty" firestore:"date,omitempty"`
	Liters    float64   `json:"liters,omitempty" firestore:"liters,omitempty"`
	Cost      float64   `json:"cost,omitempty" firestore:"cost,omitempty"`
	Odometer  float64   `json:"odometer,omitempty" firestore:"odometer,omitempty"`
	Station   string    `json:"station,omitempty" firestore:"station,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty" firestore:"createdAt,omitempty"`
}

// Maintenance records a service event for a vehicle.
type Maintenance struct {
	ID          string    `json:"id,omitempty" firestore:"id,omitempty"`
	VehicleID   string    `json:"vehicleId,omitempty" firestore:"vehicleId,omitempty"`
	Date        time.Time `json:"date,omitempty" firestore:"date,omitempty"`
	Type        string    `json:"type,omitempty" firestore:"type,omitempty"` // oil_change, tires, inspection...
	Description string    `json:"description,omitempty" firestore:"description,omitempty"`
	Cost        float64   `json:"cost,omitempty" firestore:"cost,omitempty"`
	Status      string    `json:"status,omitempty" firestore:"status,omitempty"` // scheduled, in_progress, completed
	CreatedAt   time.Time `json:"createdAt,omitempty" firestore:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty" firestore:"updatedAt,omitempty"`
}

// StatusGroup is one donut-chart segment: a status bucket with its count and display metadata.
type StatusGroup struct {
	Status VehicleStatus `json:"status" firestore:"status"`
	Label  string        `json:"label" firestore:"label"`
	Color  string        `json:"color" firestore:"color"`
	Value  int           `json:"value" firestore:"value"`
}

// FleetStatus is the aggregated current-state view of the fleet.
type FleetStatus struct {
	Groups      []StatusGroup `json:"statusGroups" firestore:"statusGroups"`
	Utilization int           `json:"utilization" firestore:"utilization"`
	Total       int           `json:"total" firestore:"total"`
	Active      int           `json:"active" firestore:"active"`
}

// FleetSnapshot is a singleton document holding the last successfully computed FleetStatus.
type FleetSnapshot struct {
	Status     FleetStatus `json:"status" firestore:"status"`
	ComputedAt time.Time   `json:"computedAt,omitempty" firestore:"computedAt,omitempty"`
}
