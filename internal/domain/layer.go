package domain

// LayerStyle carries Leaflet display attributes for one layer,
// split per geometry type family.
type LayerStyle struct {
	PointColor       string  `json:"point_color"`
	PointRadius      int     `json:"point_radius"`
	PointOpacity     float64 `json:"point_opacity"`
	PointFillOpacity float64 `json:"point_fill_opacity"`

	LineColor     string  `json:"line_color"`
	LineWeight    int     `json:"line_weight"`
	LineOpacity   float64 `json:"line_opacity"`
	LineDashArray string  `json:"line_dash_array,omitempty"`

	PolygonColor       string  `json:"polygon_color"`
	PolygonWeight      int     `json:"polygon_weight"`
	PolygonOpacity     float64 `json:"polygon_opacity"`
	PolygonFillColor   string  `json:"polygon_fill_color,omitempty"`
	PolygonFillOpacity float64 `json:"polygon_fill_opacity"`
}

func DefaultLayerStyle() LayerStyle {
	return LayerStyle{
		PointColor:         "#ff7800",
		PointRadius:        6,
		PointOpacity:       0.8,
		PointFillOpacity:   0.8,
		LineColor:          "#3388ff",
		LineWeight:         3,
		LineOpacity:        0.7,
		PolygonColor:       "#3388ff",
		PolygonWeight:      2,
		PolygonOpacity:     0.7,
		PolygonFillOpacity: 0.2,
	}
}

// LayerConfig describes one spatial dataset. Loaded once at startup from
// the layer_config table (or the static fallback set) and read-only after.
type LayerConfig struct {
	Name           string     `json:"layer_name"`
	TableName      string     `json:"table_name"`
	GeometryColumn string     `json:"geometry_column"`
	IDColumn       string     `json:"id_column"`
	DisplayName    string     `json:"display_name"`
	Description    string     `json:"description,omitempty"`
	SRID           int        `json:"srid"`
	HasLowRes      bool       `json:"has_low_resolution"`
	DefaultVisible bool       `json:"default_visible"`
	MinZoom        int        `json:"min_zoom"`
	MaxZoom        int        `json:"max_zoom"`
	ClusterPoints  bool       `json:"cluster_points"`
	Style          LayerStyle `json:"style"`
}

// LowResTableName is the reduced-resolution variant used for fast
// rendering at low zoom. Demo datasets ship it only for some layers.
func (c LayerConfig) LowResTableName() string {
	return c.TableName + "_low"
}

// LayerInfo couples a layer's configuration with its live feature count.
type LayerInfo struct {
	Config       LayerConfig `json:"config"`
	FeatureCount int64       `json:"feature_count"`
}

// LayerValidation reports data quality findings for one layer. Issues make
// the layer invalid; warnings do not.
type LayerValidation struct {
	LayerName     string   `json:"layer_name"`
	TotalFeatures int64    `json:"total_features"`
	Issues        []string `json:"issues"`
	Warnings      []string `json:"warnings"`
	IsValid       bool     `json:"is_valid"`
}

// LayerStatistics holds server-side area statistics for a parcel layer.
// Areas are square meters, computed in a metric CRS.
type LayerStatistics struct {
	TotalFeatures  int64   `json:"total_features"`
	TotalAreaSqm   float64 `json:"total_area_sqm"`
	AverageAreaSqm float64 `json:"average_area_sqm"`
	MinAreaSqm     float64 `json:"min_area_sqm"`
	MaxAreaSqm     float64 `json:"max_area_sqm"`
}
