package postgres

import (
	"context"

	"github.com/senmay/Geo-Asystent-AI/internal/domain"
)

type GISRepository interface {
	// GetLayer fetches a full layer, reading the low-resolution table
	// variant when useLowRes is set and falling back to the full table
	// when the variant is missing or empty.
	GetLayer(ctx context.Context, cfg domain.LayerConfig, useLowRes bool) (domain.SpatialResult, error)
	FindNLargest(ctx context.Context, cfg domain.LayerConfig, useLowRes bool, n int) (domain.SpatialResult, error)
	FindAboveArea(ctx context.Context, cfg domain.LayerConfig, useLowRes bool, minAreaSqm float64) (domain.SpatialResult, error)
	FindNearPoints(ctx context.Context, cfg, points domain.LayerConfig, useLowRes bool, radiusMeters float64) (domain.SpatialResult, error)
	FindWithoutIntersecting(ctx context.Context, cfg, other domain.LayerConfig, useLowRes bool) (domain.SpatialResult, error)
	FeatureCount(ctx context.Context, cfg domain.LayerConfig) (int64, error)
	AreaStatistics(ctx context.Context, cfg domain.LayerConfig) (domain.LayerStatistics, error)
	GeometryHealth(ctx context.Context, cfg domain.LayerConfig) (GeometryHealth, error)
}

// GeometryHealth carries the raw data-quality counters behind layer
// validation.
type GeometryHealth struct {
	Total             int64
	NullGeometries    int64
	InvalidGeometries int64
	DuplicateIDs      int64
}

type LayerConfigRepository interface {
	LoadAll(ctx context.Context) (map[string]domain.LayerConfig, error)
	// TableExists resolves a relation name through to_regclass; used once
	// at startup to cache low-resolution variant availability.
	TableExists(ctx context.Context, table string) (bool, error)
}
