// Package registry maps user-facing layer names and their Polish/English
// aliases onto layer configurations. Pure lookup after construction, safe
// for concurrent reads.
package registry

import (
	"fmt"
	"sort"
	"strings"

	"github.com/senmay/Geo-Asystent-AI/internal/domain"
	"github.com/senmay/Geo-Asystent-AI/pkg/e"
)

// Canonical layer keys. The parcels and buildings keys are also the layers
// the spatial intents operate on.
const (
	LayerParcels     = "parcels"
	LayerBuildings   = "buildings"
	LayerGPZ         = "gpz_polska"
	LayerVoivodeship = "wojewodztwa"
	LayerNatura2000  = "natura2000"
)

type alias struct {
	pattern string
	key     string
}

// Longer patterns are matched first so "dzialki_przykladowe" does not
// short-circuit on "dzialki".
var aliases = []alias{
	{"działki_przykładowe", LayerParcels},
	{"dzialki_przykladowe", LayerParcels},
	{"przykladowe_dzialki", LayerParcels},
	{"działki", LayerParcels},
	{"dzialki", LayerParcels},
	{"działka", LayerParcels},
	{"dzialka", LayerParcels},
	{"parcels", LayerParcels},
	{"parcel", LayerParcels},
	{"budynki", LayerBuildings},
	{"budynek", LayerBuildings},
	{"buildings", LayerBuildings},
	{"building", LayerBuildings},
	{"gpz_110kv", LayerGPZ},
	{"gpz_polska", LayerGPZ},
	{"gpz", LayerGPZ},
	{"województwa", LayerVoivodeship},
	{"wojewodztwa", LayerVoivodeship},
	{"natura_2000", LayerNatura2000},
	{"natura2000", LayerNatura2000},
}

type Registry struct {
	layers       map[string]domain.LayerConfig
	lowResExists map[string]bool
}

// New builds a registry from loaded layer configurations and the cached
// result of low-resolution table existence probes (keyed by layer name).
func New(layers map[string]domain.LayerConfig, lowResExists map[string]bool) *Registry {
	if lowResExists == nil {
		lowResExists = map[string]bool{}
	}
	return &Registry{layers: layers, lowResExists: lowResExists}
}

// Resolve returns the configuration for a canonical key or any known alias,
// case-insensitively. Unknown names fail with e.ErrLayerNotFound carrying
// the attempted name.
func (r *Registry) Resolve(name string) (domain.LayerConfig, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		return domain.LayerConfig{}, fmt.Errorf("empty layer name: %w", e.ErrLayerNotFound)
	}

	if cfg, ok := r.layers[normalized]; ok {
		return cfg, nil
	}

	for _, al := range aliases {
		if strings.Contains(normalized, al.pattern) {
			if cfg, ok := r.layers[al.key]; ok {
				return cfg, nil
			}
		}
	}

	return domain.LayerConfig{}, fmt.Errorf("layer %q: %w", name, e.ErrLayerNotFound)
}

// LowResAvailable reports whether the layer's reduced-resolution table was
// present at startup. The probe result is cached so per-request fallback is
// a map read, not a failed query.
func (r *Registry) LowResAvailable(cfg domain.LayerConfig) bool {
	return cfg.HasLowRes && r.lowResExists[cfg.Name]
}

// All returns every registered layer, ordered by name.
func (r *Registry) All() []domain.LayerConfig {
	out := make([]domain.LayerConfig, 0, len(r.layers))
	for _, cfg := range r.layers {
		out = append(out, cfg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// DefaultLayers returns the static configuration set used when the
// layer_config table is absent, mirroring the demo dataset schema.
func DefaultLayers() map[string]domain.LayerConfig {
	style := domain.DefaultLayerStyle()
	return map[string]domain.LayerConfig{
		LayerParcels: {
			Name:           LayerParcels,
			TableName:      "parcels",
			GeometryColumn: "geometry",
			IDColumn:       "ID_DZIALKI",
			DisplayName:    "Działki",
			Description:    "Działki ewidencyjne",
			SRID:           2180,
			HasLowRes:      true,
			DefaultVisible: true,
			MaxZoom:        20,
			Style:          style,
		},
		LayerBuildings: {
			Name:           LayerBuildings,
			TableName:      "buildings",
			GeometryColumn: "geometry",
			IDColumn:       "ID_BUDYNKU",
			DisplayName:    "Budynki",
			Description:    "Obrysy budynków",
			SRID:           2180,
			HasLowRes:      true,
			MaxZoom:        20,
			Style:          style,
		},
		LayerGPZ: {
			Name:           LayerGPZ,
			TableName:      "gpz_110kv",
			GeometryColumn: "geom",
			IDColumn:       "id",
			DisplayName:    "GPZ 110kV",
			Description:    "Główne punkty zasilania 110kV",
			SRID:           2180,
			ClusterPoints:  true,
			MaxZoom:        20,
			Style:          style,
		},
		LayerVoivodeship: {
			Name:           LayerVoivodeship,
			TableName:      "wojewodztwa",
			GeometryColumn: "geom",
			IDColumn:       "JPT_NAZWA_",
			DisplayName:    "Województwa",
			Description:    "Granice województw",
			SRID:           4326,
			MaxZoom:        12,
			Style:          style,
		},
		LayerNatura2000: {
			Name:           LayerNatura2000,
			TableName:      "natura2000",
			GeometryColumn: "geom",
			IDColumn:       "id",
			DisplayName:    "Natura 2000",
			Description:    "Obszary chronione Natura 2000",
			SRID:           4326,
			MaxZoom:        16,
			Style:          style,
		},
	}
}
