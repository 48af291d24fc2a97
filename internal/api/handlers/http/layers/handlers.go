package layers

import (
	"context"
	"fmt"
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/senmay/Geo-Asystent-AI/internal/domain"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type LayerProvider interface {
	GetLayerAsGeoJSON(ctx context.Context, layerName string) (string, error)
	AvailableLayers(ctx context.Context) []domain.LayerConfig
	LayerInfo(ctx context.Context, layerName string) (domain.LayerInfo, error)
	LayerStatistics(ctx context.Context, layerName string) (domain.LayerStatistics, error)
	ValidateLayer(ctx context.Context, layerName string) (domain.LayerValidation, error)
}

type Handler struct {
	logger        *slog.Logger
	LayerProvider LayerProvider
}

func NewHandler(logger *slog.Logger, layerProvider LayerProvider) *Handler {
	return &Handler{
		logger:        logger,
		LayerProvider: layerProvider,
	}
}

// LayerList returns the configuration of every known layer, for the
// frontend to build its layer switcher.
func (h *Handler) LayerList(w http.ResponseWriter, r *http.Request) {
	configs := h.LayerProvider.AvailableLayers(r.Context())
	h.writeJSON(w, http.StatusOK, toLayerListResponse(configs))
}

// LayerGet streams one layer as a WGS84 GeoJSON FeatureCollection. The body
// is the collection itself, not an envelope.
func (h *Handler) LayerGet(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "layerName")

	out, err := h.LayerProvider.GetLayerAsGeoJSON(r.Context(), name)
	if err != nil {
		h.log(r).Error("layer fetch failed", slog.String("layer", name), slog.Any("error", err))
		h.handleError(w, name, err)
		return
	}

	w.Header().Set("Content-Type", "application/geo+json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := fmt.Fprint(w, out); err != nil {
		h.logger.Error("geojson write failed", slog.Any("error", err))
	}
}

// LayerInfo returns a layer's configuration plus its feature count.
func (h *Handler) LayerInfo(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "layerName")

	info, err := h.LayerProvider.LayerInfo(r.Context(), name)
	if err != nil {
		h.log(r).Error("layer info failed", slog.String("layer", name), slog.Any("error", err))
		h.handleError(w, name, err)
		return
	}

	h.writeJSON(w, http.StatusOK, info)
}

// LayerValidate reports data quality findings for one layer.
func (h *Handler) LayerValidate(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "layerName")

	validation, err := h.LayerProvider.ValidateLayer(r.Context(), name)
	if err != nil {
		h.log(r).Error("layer validation failed", slog.String("layer", name), slog.Any("error", err))
		h.handleError(w, name, err)
		return
	}

	h.writeJSON(w, http.StatusOK, validation)
}

// LayerStatistics returns server-side area statistics for one layer.
func (h *Handler) LayerStatistics(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "layerName")

	stats, err := h.LayerProvider.LayerStatistics(r.Context(), name)
	if err != nil {
		h.log(r).Error("layer statistics failed", slog.String("layer", name), slog.Any("error", err))
		h.handleError(w, name, err)
		return
	}

	h.writeJSON(w, http.StatusOK, stats)
}
