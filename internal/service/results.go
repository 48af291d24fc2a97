package service

import (
	"fmt"

	"github.com/paulmach/orb/geojson"

	"github.com/senmay/Geo-Asystent-AI/internal/domain"
	"github.com/senmay/Geo-Asystent-AI/internal/proj"
	"github.com/senmay/Geo-Asystent-AI/pkg/e"
)

type annotateMode int

const (
	annotateStandard annotateMode = iota
	annotateLargest
	annotateNumbered
	annotateIDOnly
)

// annotate attaches the per-record Polish message to the first limit
// records; limit <= 0 annotates everything. Records past the limit carry no
// message but still ship to the map. Area is converted from square meters to
// hectares and formatted to two decimals.
func annotate(res domain.SpatialResult, mode annotateMode, limit int) domain.SpatialResult {
	for i := range res.Records {
		if limit > 0 && i >= limit {
			break
		}
		rec := &res.Records[i]
		areaHa := rec.AreaSqm / 10000
		switch mode {
		case annotateLargest:
			rec.Message = fmt.Sprintf("Największa działka. ID: %s, powierzchnia: %.2f ha", rec.ID, areaHa)
		case annotateNumbered:
			rec.Message = fmt.Sprintf("Działka nr %d. ID: %s, powierzchnia: %.2f ha", i+1, rec.ID, areaHa)
		case annotateIDOnly:
			rec.Message = fmt.Sprintf("ID: %s", rec.ID)
		default:
			rec.Message = fmt.Sprintf("Działka nr %s, powierzchnia: %.2f ha", rec.ID, areaHa)
		}
	}
	return res
}

// displayNote returns the Polish summary when a result holds more records
// than get chat annotations; results within the cap yield an empty note.
func displayNote(res domain.SpatialResult, maxDisplay int) string {
	if maxDisplay <= 0 || res.Len() <= maxDisplay {
		return ""
	}
	return fmt.Sprintf("Znaleziono %d wyników, wyświetlono %d", res.Len(), maxDisplay)
}

// appendNote attaches the summary to the last annotated record's message so
// it reaches the chat display.
func appendNote(res domain.SpatialResult, note string, limit int) domain.SpatialResult {
	if note == "" || res.Empty() {
		return res
	}
	idx := res.Len() - 1
	if limit > 0 && limit-1 < idx {
		idx = limit - 1
	}
	rec := &res.Records[idx]
	rec.Message = rec.Message + "\n\n" + note
	return res
}

// toGeoJSON reprojects every geometry to WGS84 and serializes the result as
// a FeatureCollection string. An empty result yields a valid empty
// collection, never null. Output is deterministic for identical input.
func toGeoJSON(res domain.SpatialResult) (string, error) {
	const op = "service.toGeoJSON"

	fc := geojson.NewFeatureCollection()
	for _, rec := range res.Records {
		g, err := proj.ToWGS84(res.SRID, rec.Geometry)
		if err != nil {
			return "", fmt.Errorf("%s: %v: %w", op, err, e.ErrSpatialQuery)
		}

		f := geojson.NewFeature(g)
		for k, v := range rec.Attributes {
			f.Properties[k] = v
		}
		f.Properties["id"] = rec.ID
		if rec.Message != "" {
			f.Properties["message"] = rec.Message
		}
		fc.Append(f)
	}

	b, err := fc.MarshalJSON()
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(b), nil
}
