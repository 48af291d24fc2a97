package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/senmay/Geo-Asystent-AI/internal/domain"
	"github.com/senmay/Geo-Asystent-AI/internal/registry"
	"github.com/senmay/Geo-Asystent-AI/internal/storage/postgres"
	"github.com/senmay/Geo-Asystent-AI/pkg/e"
)

// LayerGeoJSONCache is the optional read-through cache for full layer
// fetches. Cache failures degrade to direct reads, never to errors.
type LayerGeoJSONCache interface {
	Get(ctx context.Context, layer string, lowRes bool) (string, error)
	Set(ctx context.Context, layer string, lowRes bool, geojson string) error
}

type gisService struct {
	registry   *registry.Registry
	repo       postgres.GISRepository
	cache      LayerGeoJSONCache
	logger     *slog.Logger
	maxDisplay int
}

func NewGISService(
	reg *registry.Registry,
	repo postgres.GISRepository,
	cache LayerGeoJSONCache,
	logger *slog.Logger,
	maxDisplay int,
) GISService {
	if maxDisplay <= 0 {
		maxDisplay = 5
	}
	return &gisService{
		registry:   reg,
		repo:       repo,
		cache:      cache,
		logger:     logger,
		maxDisplay: maxDisplay,
	}
}

func (s *gisService) GetLayerAsGeoJSON(ctx context.Context, layerName string) (string, error) {
	const op = "service.GIS.GetLayerAsGeoJSON"

	cfg, err := s.registry.Resolve(layerName)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	lowRes := s.registry.LowResAvailable(cfg)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, cfg.Name, lowRes)
		if err != nil {
			s.logger.Warn("layer cache get failed", slog.String("op", op), slog.Any("error", err))
		} else if cached != "" {
			s.logger.Debug("layer cache hit", slog.String("layer", cfg.Name))
			return cached, nil
		}
	}

	res, err := s.repo.GetLayer(ctx, cfg, lowRes)
	if err != nil {
		return "", err
	}

	res = annotate(res, annotateIDOnly, 0)
	out, err := toGeoJSON(res)
	if err != nil {
		return "", err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cfg.Name, lowRes, out); err != nil {
			s.logger.Warn("layer cache set failed", slog.String("op", op), slog.Any("error", err))
		}
	}

	s.logger.Info("layer served",
		slog.String("op", op),
		slog.String("layer", cfg.Name),
		slog.Int("features", res.Len()),
	)
	return out, nil
}

func (s *gisService) FindLargestParcel(ctx context.Context) (string, error) {
	const op = "service.GIS.FindLargestParcel"

	cfg, err := s.registry.Resolve(registry.LayerParcels)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	res, err := s.repo.FindNLargest(ctx, cfg, s.registry.LowResAvailable(cfg), 1)
	if err != nil {
		return "", err
	}

	res = annotate(res, annotateLargest, 0)
	s.logger.Info("largest parcel search done", slog.String("op", op), slog.Int("found", res.Len()))
	return toGeoJSON(res)
}

func (s *gisService) FindNLargestParcels(ctx context.Context, n int) (string, error) {
	const op = "service.GIS.FindNLargestParcels"

	if n <= 0 {
		return "", fmt.Errorf("%s: n=%d: %w", op, n, e.ErrInvalidInput)
	}

	cfg, err := s.registry.Resolve(registry.LayerParcels)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	res, err := s.repo.FindNLargest(ctx, cfg, s.registry.LowResAvailable(cfg), n)
	if err != nil {
		return "", err
	}

	res = annotate(res, annotateNumbered, s.maxDisplay)
	res = appendNote(res, displayNote(res, s.maxDisplay), s.maxDisplay)

	s.logger.Info("n largest parcels search done",
		slog.String("op", op),
		slog.Int("n", n),
		slog.Int("found", res.Len()),
	)
	return toGeoJSON(res)
}

func (s *gisService) FindParcelsAboveArea(ctx context.Context, minAreaSqm float64) (string, error) {
	const op = "service.GIS.FindParcelsAboveArea"

	if minAreaSqm <= 0 {
		return "", fmt.Errorf("%s: min_area=%v: %w", op, minAreaSqm, e.ErrInvalidInput)
	}

	cfg, err := s.registry.Resolve(registry.LayerParcels)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	res, err := s.repo.FindAboveArea(ctx, cfg, s.registry.LowResAvailable(cfg), minAreaSqm)
	if err != nil {
		return "", err
	}

	res = annotate(res, annotateStandard, s.maxDisplay)
	res = appendNote(res, displayNote(res, s.maxDisplay), s.maxDisplay)

	s.logger.Info("above-area parcel search done",
		slog.String("op", op),
		slog.Float64("min_area_sqm", minAreaSqm),
		slog.Int("found", res.Len()),
	)
	return toGeoJSON(res)
}

func (s *gisService) FindParcelsNearGPZ(ctx context.Context, radiusMeters float64) (string, error) {
	const op = "service.GIS.FindParcelsNearGPZ"

	if radiusMeters <= 0 {
		return "", fmt.Errorf("%s: radius=%v: %w", op, radiusMeters, e.ErrInvalidInput)
	}

	parcels, err := s.registry.Resolve(registry.LayerParcels)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	gpz, err := s.registry.Resolve(registry.LayerGPZ)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	res, err := s.repo.FindNearPoints(ctx, parcels, gpz, s.registry.LowResAvailable(parcels), radiusMeters)
	if err != nil {
		return "", err
	}

	res = annotate(res, annotateStandard, s.maxDisplay)
	res = appendNote(res, displayNote(res, s.maxDisplay), s.maxDisplay)

	s.logger.Info("near-gpz parcel search done",
		slog.String("op", op),
		slog.Float64("radius_meters", radiusMeters),
		slog.Int("found", res.Len()),
	)
	return toGeoJSON(res)
}

func (s *gisService) FindParcelsWithoutBuildings(ctx context.Context) (string, error) {
	const op = "service.GIS.FindParcelsWithoutBuildings"

	parcels, err := s.registry.Resolve(registry.LayerParcels)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	buildings, err := s.registry.Resolve(registry.LayerBuildings)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	res, err := s.repo.FindWithoutIntersecting(ctx, parcels, buildings, s.registry.LowResAvailable(parcels))
	if err != nil {
		return "", err
	}

	res = annotate(res, annotateStandard, s.maxDisplay)
	res = appendNote(res, displayNote(res, s.maxDisplay), s.maxDisplay)

	s.logger.Info("unbuilt parcel search done", slog.String("op", op), slog.Int("found", res.Len()))
	return toGeoJSON(res)
}

func (s *gisService) AvailableLayers(ctx context.Context) []domain.LayerConfig {
	return s.registry.All()
}

func (s *gisService) LayerInfo(ctx context.Context, layerName string) (domain.LayerInfo, error) {
	const op = "service.GIS.LayerInfo"

	cfg, err := s.registry.Resolve(layerName)
	if err != nil {
		return domain.LayerInfo{}, fmt.Errorf("%s: %w", op, err)
	}

	count, err := s.repo.FeatureCount(ctx, cfg)
	if err != nil {
		return domain.LayerInfo{}, err
	}

	return domain.LayerInfo{Config: cfg, FeatureCount: count}, nil
}

func (s *gisService) LayerStatistics(ctx context.Context, layerName string) (domain.LayerStatistics, error) {
	const op = "service.GIS.LayerStatistics"

	cfg, err := s.registry.Resolve(layerName)
	if err != nil {
		return domain.LayerStatistics{}, fmt.Errorf("%s: %w", op, err)
	}

	return s.repo.AreaStatistics(ctx, cfg)
}

// ValidateLayer checks data quality: empty layers and null geometries are
// issues, invalid geometries and duplicate IDs are warnings.
func (s *gisService) ValidateLayer(ctx context.Context, layerName string) (domain.LayerValidation, error) {
	const op = "service.GIS.ValidateLayer"

	cfg, err := s.registry.Resolve(layerName)
	if err != nil {
		return domain.LayerValidation{}, fmt.Errorf("%s: %w", op, err)
	}

	health, err := s.repo.GeometryHealth(ctx, cfg)
	if err != nil {
		return domain.LayerValidation{}, err
	}

	v := domain.LayerValidation{
		LayerName:     cfg.Name,
		TotalFeatures: health.Total,
		Issues:        []string{},
		Warnings:      []string{},
		IsValid:       true,
	}

	if health.Total == 0 {
		v.Issues = append(v.Issues, "Layer contains no data")
		v.IsValid = false
		return v, nil
	}
	if health.NullGeometries > 0 {
		v.Issues = append(v.Issues, fmt.Sprintf("%d features have null geometries", health.NullGeometries))
		v.IsValid = false
	}
	if health.InvalidGeometries > 0 {
		v.Warnings = append(v.Warnings, fmt.Sprintf("%d features have invalid geometries", health.InvalidGeometries))
	}
	if health.DuplicateIDs > 0 {
		v.Warnings = append(v.Warnings, fmt.Sprintf("%d features share a duplicate ID", health.DuplicateIDs))
	}

	s.logger.Info("layer validated",
		slog.String("op", op),
		slog.String("layer", cfg.Name),
		slog.Bool("valid", v.IsValid),
	)
	return v, nil
}
