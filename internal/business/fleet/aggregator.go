package fleet

import "github.com/fleetflow/fleetflow-api/pkg/model"

// Presentation is the display metadata attached to a status group.
type Presentation struct {
	Label string
	Color string
}

// Palette maps each status to its chart label and color token.
type Palette map[model.VehicleStatus]Presentation

// DefaultPalette returns the dashboard's standard status presentation.
func DefaultPalette() Palette {
	return Palette{
		model.StatusOnTrip:    {Label: "On Trip", Color: "blue"},
		model.StatusAvailable: {Label: "Available", Color: "green"},
		model.StatusInShop:    {Label: "In Shop", Color: "amber"},
		model.StatusRetired:   {Label: "Retired", Color: "gray"},
		model.StatusSuspended: {Label: "Suspended", Color: "red"},
	}
}

func (p Palette) lookup(status model.VehicleStatus) Presentation {
	if pres, ok := p[status]; ok {
		return pres
	}
	return Presentation{Label: string(status)}
}

// Aggregator reduces a vehicle collection into the dashboard status breakdown.
// It holds no state between calls and is safe for concurrent use.
type Aggregator struct {
	palette Palette
}

// NewAggregator creates an Aggregator. A nil palette falls back to DefaultPalette.
func NewAggregator(palette Palette) *Aggregator {
	if palette == nil {
		palette = DefaultPalette()
	}
	return &Aggregator{palette: palette}
}

// Aggregate counts vehicles per status and derives fleet utilization.
// Groups are emitted in canonical status order and only for statuses with at least one vehicle.
// Utilization is the share of on_trip vehicles, rounded half-up; an empty fleet yields 0.
// The first unclassifiable vehicle aborts the whole aggregation.
func (a *Aggregator) Aggregate(vehicles []model.Vehicle) (model.FleetStatus, error) {
	counts := make(map[model.VehicleStatus]int, len(model.AllVehicleStatuses()))
	for _, s := range model.AllVehicleStatuses() {
		counts[s] = 0
	}

	for _, v := range vehicles {
		status, err := Classify(v)
		if err != nil {
			return model.FleetStatus{}, err
		}
		counts[status]++
	}

	groups := make([]model.StatusGroup, 0, len(counts))
	total := 0
	for _, s := range model.AllVehicleStatuses() {
		n := counts[s]
		total += n
		if n == 0 {
			continue
		}
		pres := a.palette.lookup(s)
		groups = append(groups, model.StatusGroup{
			Status: s,
			Label:  pres.Label,
			Color:  pres.Color,
			Value:  n,
		})
	}

	active := counts[model.StatusOnTrip]
	return model.FleetStatus{
		Groups:      groups,
		Utilization: utilization(active, total),
		Total:       total,
		Active:      active,
	}, nil
}

// utilization returns round-half-up(active/total*100) without floating point.
func utilization(active, total int) int {
	if total == 0 {
		return 0
	}
	return (200*active + total) / (2 * total)
}
