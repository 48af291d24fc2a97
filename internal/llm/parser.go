package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/senmay/Geo-Asystent-AI/internal/domain"
	"github.com/senmay/Geo-Asystent-AI/pkg/e"
)

// rawIntent mirrors the JSON the model is asked to produce. Pointer fields
// distinguish "absent" from zero values during validation.
type rawIntent struct {
	Intent       string   `json:"intent"`
	LayerName    *string  `json:"layer_name"`
	N            *int     `json:"n"`
	MinArea      *float64 `json:"min_area"`
	RadiusMeters *float64 `json:"radius_meters"`

	// Some models wrap the payload in a "route" object; accept it.
	Route *rawIntent `json:"route"`
}

// ParseIntent extracts and validates a classification response. The model's
// self-reported intent name is never trusted on its own: required parameters
// are checked per variant, and anything unmatched fails so the caller can
// retry or fall back to chat.
func ParseIntent(text string) (domain.Intent, error) {
	raw, err := extractJSON(text)
	if err != nil {
		return domain.Intent{}, err
	}
	if raw.Route != nil {
		raw = raw.Route
	}

	// Fixed priority order: parameterized variants first, chat last, so a
	// response carrying both a spatial intent name and valid parameters is
	// never mistaken for small talk.
	switch raw.Intent {
	case string(domain.IntentGetGisData):
		if raw.LayerName == nil || strings.TrimSpace(*raw.LayerName) == "" {
			return domain.Intent{}, fmt.Errorf("get_gis_data without layer_name: %w", e.ErrLLMMalformed)
		}
		return domain.Intent{Type: domain.IntentGetGisData, LayerName: strings.TrimSpace(*raw.LayerName)}, nil

	case string(domain.IntentFindNLargestParcels):
		if raw.N == nil || *raw.N <= 0 {
			return domain.Intent{}, fmt.Errorf("find_n_largest_parcels without positive n: %w", e.ErrLLMMalformed)
		}
		return domain.Intent{Type: domain.IntentFindNLargestParcels, N: *raw.N}, nil

	case string(domain.IntentFindParcelsAboveArea):
		if raw.MinArea == nil || *raw.MinArea <= 0 {
			return domain.Intent{}, fmt.Errorf("find_parcels_above_area without positive min_area: %w", e.ErrLLMMalformed)
		}
		return domain.Intent{Type: domain.IntentFindParcelsAboveArea, MinArea: *raw.MinArea}, nil

	case string(domain.IntentFindParcelsNearGpz):
		radius := float64(domain.DefaultRadiusMeters)
		if raw.RadiusMeters != nil {
			if *raw.RadiusMeters <= 0 {
				return domain.Intent{}, fmt.Errorf("find_parcels_near_gpz with non-positive radius: %w", e.ErrLLMMalformed)
			}
			radius = *raw.RadiusMeters
		}
		return domain.Intent{Type: domain.IntentFindParcelsNearGpz, RadiusMeters: radius}, nil

	case string(domain.IntentFindLargestParcel):
		return domain.Intent{Type: domain.IntentFindLargestParcel}, nil

	case string(domain.IntentFindParcelsWithoutBuildings):
		return domain.Intent{Type: domain.IntentFindParcelsWithoutBuildings}, nil

	case string(domain.IntentChat):
		return domain.ChatIntent(), nil
	}

	return domain.Intent{}, fmt.Errorf("unknown intent %q: %w", raw.Intent, e.ErrLLMMalformed)
}

// extractJSON tries multiple strategies: direct parse, first-to-last brace
// window, fenced code block.
func extractJSON(text string) (*rawIntent, error) {
	text = strings.TrimSpace(text)

	var raw rawIntent
	if err := json.Unmarshal([]byte(text), &raw); err == nil {
		return &raw, nil
	}

	if start := strings.Index(text, "{"); start >= 0 {
		if end := strings.LastIndex(text, "}"); end > start {
			if err := json.Unmarshal([]byte(text[start:end+1]), &raw); err == nil {
				return &raw, nil
			}
		}
	}

	if idx := strings.Index(text, "```json"); idx >= 0 {
		after := text[idx+7:]
		if end := strings.Index(after, "```"); end >= 0 {
			if err := json.Unmarshal([]byte(strings.TrimSpace(after[:end])), &raw); err == nil {
				return &raw, nil
			}
		}
	}
	if idx := strings.Index(text, "```"); idx >= 0 {
		after := text[idx+3:]
		if end := strings.Index(after, "```"); end >= 0 {
			if err := json.Unmarshal([]byte(strings.TrimSpace(after[:end])), &raw); err == nil {
				return &raw, nil
			}
		}
	}

	return nil, fmt.Errorf("no JSON object in response %.120q: %w", text, e.ErrLLMMalformed)
}
