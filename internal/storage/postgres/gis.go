package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/paulmach/orb/geojson"

	"github.com/senmay/Geo-Asystent-AI/internal/domain"
	"github.com/senmay/Geo-Asystent-AI/pkg/e"
)

const geomAlias = "geojson_geom"

type GISRepo struct {
	pool         *pgxpool.Pool
	logger       *slog.Logger
	metricSRID   int
	queryTimeout time.Duration
}

func NewGISRepo(pool *pgxpool.Pool, logger *slog.Logger, metricSRID int, queryTimeout time.Duration) *GISRepo {
	if metricSRID == 0 {
		metricSRID = 2180
	}
	if queryTimeout <= 0 {
		queryTimeout = 30 * time.Second
	}
	return &GISRepo{pool: pool, logger: logger, metricSRID: metricSRID, queryTimeout: queryTimeout}
}

// metricArea is the SQL expression computing feature area in square meters.
// Layers stored in a geographic CRS are transformed first; area in square
// degrees must never leak into ordering or display.
func (r *GISRepo) metricArea(cfg domain.LayerConfig, qualifier string) string {
	geom := pgx.Identifier{cfg.GeometryColumn}.Sanitize()
	if qualifier != "" {
		geom = qualifier + "." + geom
	}
	if cfg.SRID == r.metricSRID {
		return fmt.Sprintf("ST_Area(%s)", geom)
	}
	return fmt.Sprintf("ST_Area(ST_Transform(%s, %d))", geom, r.metricSRID)
}

// metricGeom is the SQL expression yielding the geometry in the metric CRS,
// for true-distance predicates.
func (r *GISRepo) metricGeom(cfg domain.LayerConfig, qualifier string) string {
	geom := pgx.Identifier{cfg.GeometryColumn}.Sanitize()
	if qualifier != "" {
		geom = qualifier + "." + geom
	}
	if cfg.SRID == r.metricSRID {
		return geom
	}
	return fmt.Sprintf("ST_Transform(%s, %d)", geom, r.metricSRID)
}

func (r *GISRepo) selectTable(cfg domain.LayerConfig, useLowRes bool) string {
	if useLowRes && cfg.HasLowRes {
		return cfg.LowResTableName()
	}
	return cfg.TableName
}

func (r *GISRepo) GetLayer(ctx context.Context, cfg domain.LayerConfig, useLowRes bool) (domain.SpatialResult, error) {
	const op = "postgres.GIS.GetLayer"

	table := r.selectTable(cfg, useLowRes)
	res, err := r.fetchLayerTable(ctx, op, cfg, table)

	// The demo dataset ships partial tables: a missing or empty low-res
	// variant falls back to the full-resolution table instead of failing.
	if useLowRes && cfg.HasLowRes && table != cfg.TableName {
		if err != nil && errors.Is(err, e.ErrTableMissing) {
			r.logger.Warn("low-res table missing, falling back to full resolution",
				slog.String("op", op),
				slog.String("table", table),
			)
			return r.fetchLayerTable(ctx, op, cfg, cfg.TableName)
		}
		if err == nil && res.Empty() {
			r.logger.Warn("low-res table empty, falling back to full resolution",
				slog.String("op", op),
				slog.String("table", table),
			)
			return r.fetchLayerTable(ctx, op, cfg, cfg.TableName)
		}
	}
	return res, err
}

func (r *GISRepo) fetchLayerTable(ctx context.Context, op string, cfg domain.LayerConfig, table string) (domain.SpatialResult, error) {
	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	sql := fmt.Sprintf(
		`SELECT *, ST_AsGeoJSON(%s) AS %s FROM %s`,
		pgx.Identifier{cfg.GeometryColumn}.Sanitize(),
		geomAlias,
		pgx.Identifier{table}.Sanitize(),
	)

	rows, err := r.pool.Query(ctx, sql)
	if err != nil {
		r.logger.Error("db query failed",
			slog.String("op", op),
			slog.String("table", table),
			slog.Any("error", err),
		)
		return domain.SpatialResult{}, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	return r.scanSpatialRows(ctx, op, rows, cfg, table)
}

func (r *GISRepo) FindNLargest(ctx context.Context, cfg domain.LayerConfig, useLowRes bool, n int) (domain.SpatialResult, error) {
	const op = "postgres.GIS.FindNLargest"

	if n <= 0 {
		return domain.SpatialResult{}, fmt.Errorf("%s: n=%d: %w", op, n, e.ErrInvalidInput)
	}

	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	table := r.selectTable(cfg, useLowRes)
	sql := fmt.Sprintf(
		`SELECT *, %s AS area_sqm, ST_AsGeoJSON(%s) AS %s
		 FROM %s
		 ORDER BY area_sqm DESC
		 LIMIT $1`,
		r.metricArea(cfg, ""),
		pgx.Identifier{cfg.GeometryColumn}.Sanitize(),
		geomAlias,
		pgx.Identifier{table}.Sanitize(),
	)

	rows, err := r.pool.Query(ctx, sql, n)
	if err != nil {
		r.logger.Error("db query failed",
			slog.String("op", op),
			slog.String("table", table),
			slog.Int("n", n),
			slog.Any("error", err),
		)
		return domain.SpatialResult{}, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	return r.scanSpatialRows(ctx, op, rows, cfg, table)
}

func (r *GISRepo) FindAboveArea(ctx context.Context, cfg domain.LayerConfig, useLowRes bool, minAreaSqm float64) (domain.SpatialResult, error) {
	const op = "postgres.GIS.FindAboveArea"

	if minAreaSqm <= 0 {
		return domain.SpatialResult{}, fmt.Errorf("%s: min_area=%v: %w", op, minAreaSqm, e.ErrInvalidInput)
	}

	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	table := r.selectTable(cfg, useLowRes)
	sql := fmt.Sprintf(
		`SELECT *, %s AS area_sqm, ST_AsGeoJSON(%s) AS %s
		 FROM %s
		 WHERE %s > $1
		 ORDER BY area_sqm DESC`,
		r.metricArea(cfg, ""),
		pgx.Identifier{cfg.GeometryColumn}.Sanitize(),
		geomAlias,
		pgx.Identifier{table}.Sanitize(),
		r.metricArea(cfg, ""),
	)

	rows, err := r.pool.Query(ctx, sql, minAreaSqm)
	if err != nil {
		r.logger.Error("db query failed",
			slog.String("op", op),
			slog.String("table", table),
			slog.Float64("min_area_sqm", minAreaSqm),
			slog.Any("error", err),
		)
		return domain.SpatialResult{}, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	return r.scanSpatialRows(ctx, op, rows, cfg, table)
}

// FindNearPoints returns features of cfg lying within radiusMeters of any
// feature of the points layer. Distance is computed in the metric CRS, not
// in degrees.
func (r *GISRepo) FindNearPoints(ctx context.Context, cfg, points domain.LayerConfig, useLowRes bool, radiusMeters float64) (domain.SpatialResult, error) {
	const op = "postgres.GIS.FindNearPoints"

	if radiusMeters <= 0 {
		return domain.SpatialResult{}, fmt.Errorf("%s: radius=%v: %w", op, radiusMeters, e.ErrInvalidInput)
	}

	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	table := r.selectTable(cfg, useLowRes)
	sql := fmt.Sprintf(
		`SELECT p.*, %s AS area_sqm, ST_AsGeoJSON(p.%s) AS %s
		 FROM %s p
		 WHERE EXISTS (
		   SELECT 1 FROM %s g
		   WHERE ST_DWithin(%s, %s, $1)
		 )`,
		r.metricArea(cfg, "p"),
		pgx.Identifier{cfg.GeometryColumn}.Sanitize(),
		geomAlias,
		pgx.Identifier{table}.Sanitize(),
		pgx.Identifier{points.TableName}.Sanitize(),
		r.metricGeom(cfg, "p"),
		r.metricGeom(points, "g"),
	)

	rows, err := r.pool.Query(ctx, sql, radiusMeters)
	if err != nil {
		r.logger.Error("db query failed",
			slog.String("op", op),
			slog.String("table", table),
			slog.String("point_table", points.TableName),
			slog.Float64("radius_meters", radiusMeters),
			slog.Any("error", err),
		)
		return domain.SpatialResult{}, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	return r.scanSpatialRows(ctx, op, rows, cfg, table)
}

// FindWithoutIntersecting is the spatial anti-join: features of cfg whose
// geometry intersects no feature of the other layer.
func (r *GISRepo) FindWithoutIntersecting(ctx context.Context, cfg, other domain.LayerConfig, useLowRes bool) (domain.SpatialResult, error) {
	const op = "postgres.GIS.FindWithoutIntersecting"

	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	table := r.selectTable(cfg, useLowRes)
	otherTable := r.selectTable(other, useLowRes)
	sql := fmt.Sprintf(
		`SELECT p.*, %s AS area_sqm, ST_AsGeoJSON(p.%s) AS %s
		 FROM %s p
		 WHERE NOT EXISTS (
		   SELECT 1 FROM %s b
		   WHERE ST_Intersects(p.%s, b.%s)
		 )`,
		r.metricArea(cfg, "p"),
		pgx.Identifier{cfg.GeometryColumn}.Sanitize(),
		geomAlias,
		pgx.Identifier{table}.Sanitize(),
		pgx.Identifier{otherTable}.Sanitize(),
		pgx.Identifier{cfg.GeometryColumn}.Sanitize(),
		pgx.Identifier{other.GeometryColumn}.Sanitize(),
	)

	rows, err := r.pool.Query(ctx, sql)
	if err != nil {
		r.logger.Error("db query failed",
			slog.String("op", op),
			slog.String("table", table),
			slog.String("other_table", otherTable),
			slog.Any("error", err),
		)
		return domain.SpatialResult{}, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	return r.scanSpatialRows(ctx, op, rows, cfg, table)
}

func (r *GISRepo) FeatureCount(ctx context.Context, cfg domain.LayerConfig) (int64, error) {
	const op = "postgres.GIS.FeatureCount"

	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	sql := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, pgx.Identifier{cfg.TableName}.Sanitize())

	var cnt int64
	if err := r.pool.QueryRow(ctx, sql).Scan(&cnt); err != nil {
		r.logger.Error("db queryrow scan failed",
			slog.String("op", op),
			slog.String("table", cfg.TableName),
			slog.Any("error", err),
		)
		return 0, e.WrapError(ctx, op, err)
	}
	return cnt, nil
}

func (r *GISRepo) AreaStatistics(ctx context.Context, cfg domain.LayerConfig) (domain.LayerStatistics, error) {
	const op = "postgres.GIS.AreaStatistics"

	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	sql := fmt.Sprintf(
		`SELECT COUNT(*),
		        COALESCE(SUM(area_sqm), 0),
		        COALESCE(AVG(area_sqm), 0),
		        COALESCE(MIN(area_sqm), 0),
		        COALESCE(MAX(area_sqm), 0)
		 FROM (SELECT %s AS area_sqm FROM %s) areas`,
		r.metricArea(cfg, ""),
		pgx.Identifier{cfg.TableName}.Sanitize(),
	)

	var stats domain.LayerStatistics
	err := r.pool.QueryRow(ctx, sql).Scan(
		&stats.TotalFeatures,
		&stats.TotalAreaSqm,
		&stats.AverageAreaSqm,
		&stats.MinAreaSqm,
		&stats.MaxAreaSqm,
	)
	if err != nil {
		r.logger.Error("db queryrow scan failed",
			slog.String("op", op),
			slog.String("table", cfg.TableName),
			slog.Any("error", err),
		)
		return domain.LayerStatistics{}, e.WrapError(ctx, op, err)
	}
	return stats, nil
}

// GeometryHealth counts null geometries, invalid geometries, and duplicate
// feature IDs in one pass over the full-resolution table.
func (r *GISRepo) GeometryHealth(ctx context.Context, cfg domain.LayerConfig) (GeometryHealth, error) {
	const op = "postgres.GIS.GeometryHealth"

	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	geom := pgx.Identifier{cfg.GeometryColumn}.Sanitize()
	id := pgx.Identifier{cfg.IDColumn}.Sanitize()
	table := pgx.Identifier{cfg.TableName}.Sanitize()

	sql := fmt.Sprintf(
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE %s IS NULL),
		        COUNT(*) FILTER (WHERE %s IS NOT NULL AND NOT ST_IsValid(%s)),
		        COALESCE((SELECT SUM(cnt - 1)
		                  FROM (SELECT COUNT(*) AS cnt FROM %s GROUP BY %s HAVING COUNT(*) > 1) dup), 0)
		 FROM %s`,
		geom, geom, geom, table, id, table,
	)

	var health GeometryHealth
	err := r.pool.QueryRow(ctx, sql).Scan(
		&health.Total,
		&health.NullGeometries,
		&health.InvalidGeometries,
		&health.DuplicateIDs,
	)
	if err != nil {
		r.logger.Error("db queryrow scan failed",
			slog.String("op", op),
			slog.String("table", cfg.TableName),
			slog.Any("error", err),
		)
		return GeometryHealth{}, e.WrapError(ctx, op, err)
	}
	return health, nil
}

// scanSpatialRows decodes every row into a SpatialRecord: the GeoJSON
// geometry column becomes an orb geometry, the raw geometry column is
// dropped, everything else lands in Attributes.
func (r *GISRepo) scanSpatialRows(ctx context.Context, op string, rows pgx.Rows, cfg domain.LayerConfig, loadedTable string) (domain.SpatialResult, error) {
	fields := rows.FieldDescriptions()

	records := make([]domain.SpatialRecord, 0, 64)
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			r.logger.Error("row values failed", slog.String("op", op), slog.Any("error", err))
			return domain.SpatialResult{}, e.WrapError(ctx, op, err)
		}

		rec := domain.SpatialRecord{Attributes: make(map[string]interface{}, len(fields))}
		for i, fd := range fields {
			name := fd.Name
			switch name {
			case geomAlias:
				raw, ok := values[i].(string)
				if !ok || raw == "" {
					continue
				}
				g, err := geojson.UnmarshalGeometry([]byte(raw))
				if err != nil {
					r.logger.Error("geometry decode failed",
						slog.String("op", op),
						slog.String("table", loadedTable),
						slog.Any("error", err),
					)
					return domain.SpatialResult{}, fmt.Errorf("%s: %w", op, e.ErrSpatialQuery)
				}
				rec.Geometry = g.Geometry()
			case cfg.GeometryColumn:
				// raw geometry bytes are not feature attributes
			case "area_sqm":
				rec.AreaSqm = toFloat64(values[i])
				rec.Attributes[name] = rec.AreaSqm
			case cfg.IDColumn:
				rec.ID = fmt.Sprint(values[i])
				rec.Attributes[name] = values[i]
			default:
				rec.Attributes[name] = values[i]
			}
		}
		if rec.ID == "" {
			rec.ID = "Brak ID"
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return domain.SpatialResult{}, e.WrapError(ctx, op, err)
	}

	return domain.SpatialResult{
		Records:     records,
		SRID:        cfg.SRID,
		LoadedTable: loadedTable,
	}, nil
}

func toFloat64(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int64:
		return float64(n)
	case int32:
		return float64(n)
	}
	return 0
}
