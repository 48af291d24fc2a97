package registry

import (
	"errors"
	"testing"

	"github.com/senmay/Geo-Asystent-AI/pkg/e"
)

func newTestRegistry() *Registry {
	return New(DefaultLayers(), map[string]bool{
		LayerParcels: true,
	})
}

func TestResolve_AliasInvariance(t *testing.T) {
	t.Parallel()

	r := newTestRegistry()

	// Every alias of a layer must resolve to the same config.
	groups := map[string][]string{
		LayerParcels:     {"parcels", "działki", "dzialki", "Działki", "DZIALKA", "pokaż działki_przykładowe"},
		LayerBuildings:   {"buildings", "budynki", "Budynki"},
		LayerGPZ:         {"gpz", "GPZ", "gpz_110kv", "gpz_polska"},
		LayerVoivodeship: {"wojewodztwa", "województwa"},
		LayerNatura2000:  {"natura2000", "natura_2000"},
	}

	for wantKey, names := range groups {
		for _, name := range names {
			cfg, err := r.Resolve(name)
			if err != nil {
				t.Errorf("Resolve(%q) unexpected err: %v", name, err)
				continue
			}
			if cfg.Name != wantKey {
				t.Errorf("Resolve(%q) = %q, want %q", name, cfg.Name, wantKey)
			}
		}
	}
}

func TestResolve_Unknown(t *testing.T) {
	t.Parallel()

	r := newTestRegistry()

	for _, name := range []string{"nonexistent_layer", "", "   ", "rivers"} {
		_, err := r.Resolve(name)
		if !errors.Is(err, e.ErrLayerNotFound) {
			t.Errorf("Resolve(%q) = %v, want ErrLayerNotFound", name, err)
		}
	}
}

func TestResolve_LongerAliasWins(t *testing.T) {
	t.Parallel()

	r := newTestRegistry()

	cfg, err := r.Resolve("dzialki_przykladowe")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Name != LayerParcels {
		t.Errorf("got %q, want %q", cfg.Name, LayerParcels)
	}
}

func TestLowResAvailable(t *testing.T) {
	t.Parallel()

	r := newTestRegistry()

	parcels, _ := r.Resolve(LayerParcels)
	if !r.LowResAvailable(parcels) {
		t.Error("parcels low-res should be available")
	}

	// buildings has the variant configured but the probe said absent
	buildings, _ := r.Resolve(LayerBuildings)
	if r.LowResAvailable(buildings) {
		t.Error("buildings low-res should be unavailable")
	}

	// gpz never has a low-res variant
	gpz, _ := r.Resolve(LayerGPZ)
	if r.LowResAvailable(gpz) {
		t.Error("gpz must not report a low-res variant")
	}
}

func TestAll_SortedAndComplete(t *testing.T) {
	t.Parallel()

	r := newTestRegistry()
	all := r.All()
	if len(all) != len(DefaultLayers()) {
		t.Fatalf("All() returned %d layers, want %d", len(all), len(DefaultLayers()))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Name >= all[i].Name {
			t.Errorf("All() not sorted at %d: %q >= %q", i, all[i-1].Name, all[i].Name)
		}
	}
}
