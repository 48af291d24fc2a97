package postgres

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/senmay/Geo-Asystent-AI/internal/domain"
	"github.com/senmay/Geo-Asystent-AI/internal/registry"
	"github.com/senmay/Geo-Asystent-AI/pkg/e"
)

type LayerConfigRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewLayerConfigRepo(pool *pgxpool.Pool, logger *slog.Logger) *LayerConfigRepo {
	return &LayerConfigRepo{pool: pool, logger: logger}
}

// LoadAll reads active layer configurations from the layer_config table.
// Demo deployments may not have the table at all; the static default set
// keeps the service usable in that case.
func (r *LayerConfigRepo) LoadAll(ctx context.Context) (map[string]domain.LayerConfig, error) {
	const op = "postgres.LayerConfig.LoadAll"

	const sql = `
		SELECT layer_name, display_name, table_name, geometry_column, id_column,
		       COALESCE(description, ''), COALESCE(srid, 2180),
		       has_low_resolution, default_visible, min_zoom, max_zoom, cluster_points,
		       COALESCE(point_color, '#ff7800'), COALESCE(point_radius, 6),
		       COALESCE(point_opacity, 0.8), COALESCE(point_fill_opacity, 0.8),
		       COALESCE(line_color, '#3388ff'), COALESCE(line_weight, 3),
		       COALESCE(line_opacity, 0.7), COALESCE(line_dash_array, ''),
		       COALESCE(polygon_color, '#3388ff'), COALESCE(polygon_weight, 2),
		       COALESCE(polygon_opacity, 0.7), COALESCE(polygon_fill_color, ''),
		       COALESCE(polygon_fill_opacity, 0.2)
		FROM layer_config
		WHERE active = true
		ORDER BY layer_name`

	rows, err := r.pool.Query(ctx, sql)
	if err != nil {
		wrapped := e.WrapError(ctx, op, err)
		if errors.Is(wrapped, e.ErrTableMissing) {
			r.logger.Warn("layer_config table missing, using static defaults", slog.String("op", op))
			return registry.DefaultLayers(), nil
		}
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, wrapped
	}
	defer rows.Close()

	layers := make(map[string]domain.LayerConfig)
	for rows.Next() {
		var cfg domain.LayerConfig
		err := rows.Scan(
			&cfg.Name, &cfg.DisplayName, &cfg.TableName, &cfg.GeometryColumn, &cfg.IDColumn,
			&cfg.Description, &cfg.SRID,
			&cfg.HasLowRes, &cfg.DefaultVisible, &cfg.MinZoom, &cfg.MaxZoom, &cfg.ClusterPoints,
			&cfg.Style.PointColor, &cfg.Style.PointRadius,
			&cfg.Style.PointOpacity, &cfg.Style.PointFillOpacity,
			&cfg.Style.LineColor, &cfg.Style.LineWeight,
			&cfg.Style.LineOpacity, &cfg.Style.LineDashArray,
			&cfg.Style.PolygonColor, &cfg.Style.PolygonWeight,
			&cfg.Style.PolygonOpacity, &cfg.Style.PolygonFillColor,
			&cfg.Style.PolygonFillOpacity,
		)
		if err != nil {
			r.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		layers[strings.ToLower(cfg.Name)] = cfg
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	if len(layers) == 0 {
		r.logger.Warn("layer_config table empty, using static defaults", slog.String("op", op))
		return registry.DefaultLayers(), nil
	}

	r.logger.Info("layer configurations loaded", slog.Int("count", len(layers)))
	return layers, nil
}

func (r *LayerConfigRepo) TableExists(ctx context.Context, table string) (bool, error) {
	const op = "postgres.LayerConfig.TableExists"

	var regclass *string
	if err := r.pool.QueryRow(ctx, `SELECT to_regclass($1)::text`, table).Scan(&regclass); err != nil {
		r.logger.Error("db queryrow scan failed",
			slog.String("op", op),
			slog.String("table", table),
			slog.Any("error", err),
		)
		return false, e.WrapError(ctx, op, err)
	}
	return regclass != nil, nil
}
