package domain

import (
	"fmt"

	"github.com/senmay/Geo-Asystent-AI/pkg/e"
)

type IntentType string

const (
	IntentGetGisData                  IntentType = "get_gis_data"
	IntentFindLargestParcel           IntentType = "find_largest_parcel"
	IntentFindNLargestParcels         IntentType = "find_n_largest_parcels"
	IntentFindParcelsAboveArea        IntentType = "find_parcels_above_area"
	IntentFindParcelsNearGpz          IntentType = "find_parcels_near_gpz"
	IntentFindParcelsWithoutBuildings IntentType = "find_parcels_without_buildings"
	IntentChat                        IntentType = "chat"
)

const (
	// DefaultRadiusMeters applies when a proximity query names no radius.
	DefaultRadiusMeters = 1000

	// MaxNLargest bounds "N largest" requests to keep result sizes sane.
	MaxNLargest = 1000
)

// Intent is the classified form of one user query. Exactly one variant is
// active; parameter fields are meaningful only for the variant that uses them.
type Intent struct {
	Type         IntentType `json:"intent"`
	LayerName    string     `json:"layer_name,omitempty"`
	N            int        `json:"n,omitempty"`
	MinArea      float64    `json:"min_area,omitempty"`
	RadiusMeters float64    `json:"radius_meters,omitempty"`
}

func ChatIntent() Intent {
	return Intent{Type: IntentChat}
}

// Validate enforces the per-variant parameter invariants. It does not decide
// classification ambiguity; malformed classifications are rejected earlier.
func (i Intent) Validate() error {
	switch i.Type {
	case IntentGetGisData:
		if i.LayerName == "" {
			return fmt.Errorf("layer_name is required: %w", e.ErrInvalidInput)
		}
	case IntentFindNLargestParcels:
		if i.N <= 0 {
			return fmt.Errorf("n must be positive, got %d: %w", i.N, e.ErrInvalidInput)
		}
		if i.N > MaxNLargest {
			return fmt.Errorf("n must be at most %d, got %d: %w", MaxNLargest, i.N, e.ErrInvalidInput)
		}
	case IntentFindParcelsAboveArea:
		if i.MinArea <= 0 {
			return fmt.Errorf("min_area must be positive, got %v: %w", i.MinArea, e.ErrInvalidInput)
		}
	case IntentFindParcelsNearGpz:
		if i.RadiusMeters <= 0 {
			return fmt.Errorf("radius_meters must be positive, got %v: %w", i.RadiusMeters, e.ErrInvalidInput)
		}
	case IntentFindLargestParcel, IntentFindParcelsWithoutBuildings, IntentChat:
	default:
		return fmt.Errorf("unknown intent %q: %w", i.Type, e.ErrInvalidInput)
	}
	return nil
}
