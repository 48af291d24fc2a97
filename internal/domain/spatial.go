package domain

import "github.com/paulmach/orb"

// SpatialRecord is one geometry-bearing row from a spatial query.
// Geometry stays in the source table's native CRS until serialization.
type SpatialRecord struct {
	ID         string
	Geometry   orb.Geometry
	AreaSqm    float64
	Message    string
	Attributes map[string]interface{}
}

// SpatialResult is an ordered set of records from one query.
// All records share the geometry type family of the source table.
type SpatialResult struct {
	Records []SpatialRecord
	SRID    int
	// LoadedTable names the table actually read, after any
	// low-resolution fallback.
	LoadedTable string
}

func (r SpatialResult) Empty() bool {
	return len(r.Records) == 0
}

func (r SpatialResult) Len() int {
	return len(r.Records)
}
