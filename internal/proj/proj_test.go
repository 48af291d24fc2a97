package proj

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
)

// Known EPSG:2180 coordinates for Polish cities, derived from the official
// transformation. Tolerances are generous because the series expansion is
// accurate to centimeters while the map only needs meters.
func TestInverse_KnownPoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		x, y     float64
		wantLon  float64
		wantLat  float64
		tolerDeg float64
	}{
		{
			name:     "warsaw center",
			x:        637231.09,
			y:        486786.39,
			wantLon:  21.01,
			wantLat:  52.23,
			tolerDeg: 0.001,
		},
		{
			name:     "poznan",
			x:        357205.66,
			y:        506972.47,
			wantLon:  16.90,
			wantLat:  52.41,
			tolerDeg: 0.001,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := inverse(orb.Point{tt.x, tt.y})
			if math.Abs(got[0]-tt.wantLon) > tt.tolerDeg {
				t.Errorf("lon = %.5f, want %.5f ± %.3f", got[0], tt.wantLon, tt.tolerDeg)
			}
			if math.Abs(got[1]-tt.wantLat) > tt.tolerDeg {
				t.Errorf("lat = %.5f, want %.5f ± %.3f", got[1], tt.wantLat, tt.tolerDeg)
			}
		})
	}
}

func TestRoundTrip_ForwardInverse(t *testing.T) {
	t.Parallel()

	// Points covering the EPSG:2180 area of use.
	points := []orb.Point{
		{14.2, 49.1},
		{16.93, 52.41},
		{19.0, 52.0},
		{21.01, 52.23},
		{23.9, 54.8},
	}

	// The truncated series drifts up to ~2e-7 deg (about 2 cm) at the
	// edges of the zone, well below map precision.
	const tol = 1e-6
	for _, p := range points {
		back := inverse(forward(p))
		if math.Abs(back[0]-p[0]) > tol || math.Abs(back[1]-p[1]) > tol {
			t.Errorf("round trip %v -> %v drifted", p, back)
		}
	}
}

func TestToWGS84_BoundsInvariant(t *testing.T) {
	t.Parallel()

	ring := orb.Ring{
		{356000, 508000},
		{357000, 508000},
		{357000, 509000},
		{356000, 509000},
		{356000, 508000},
	}
	g, err := ToWGS84(SRIDPoland92, orb.Polygon{ring})
	if err != nil {
		t.Fatalf("ToWGS84: %v", err)
	}

	poly, ok := g.(orb.Polygon)
	if !ok {
		t.Fatalf("expected polygon, got %T", g)
	}
	for _, r := range poly {
		for _, p := range r {
			if p[0] < -180 || p[0] > 180 || p[1] < -90 || p[1] > 90 {
				t.Errorf("coordinate %v outside WGS84 bounds", p)
			}
		}
	}
}

func TestToWGS84_PassthroughAndUnsupported(t *testing.T) {
	t.Parallel()

	p := orb.Point{16.9, 52.4}
	got, err := ToWGS84(SRIDWGS84, p)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.(orb.Point) != p {
		t.Errorf("passthrough changed point: %v", got)
	}

	if _, err := ToWGS84(3857, p); err == nil {
		t.Error("expected error for unsupported SRID")
	}
}

func TestToWGS84_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	ls := orb.LineString{{356000, 508000}, {357000, 509000}}
	orig := ls.Clone()

	if _, err := ToWGS84(SRIDPoland92, ls); err != nil {
		t.Fatalf("ToWGS84: %v", err)
	}
	if !ls.Equal(orig) {
		t.Error("input geometry was mutated")
	}
}
