package layers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"log/slog"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/senmay/Geo-Asystent-AI/internal/domain"
	"github.com/senmay/Geo-Asystent-AI/pkg/e"
)

type layerListResponse struct {
	Layers []domain.LayerConfig `json:"layers"`
	Count  int                  `json:"count"`
}

func toLayerListResponse(configs []domain.LayerConfig) layerListResponse {
	if configs == nil {
		configs = []domain.LayerConfig{}
	}
	return layerListResponse{Layers: configs, Count: len(configs)}
}

// handleError keeps the layer endpoints' contract: an unknown layer is a
// 404 with a Polish message, never a 500.
func (h *Handler) handleError(w http.ResponseWriter, layerName string, err error) {
	switch {
	case errors.Is(err, e.ErrLayerNotFound), errors.Is(err, e.ErrNotFound):
		h.writeJSON(w, http.StatusNotFound, map[string]string{
			"error": fmt.Sprintf("Warstwa '%s' nie została znaleziona", layerName),
		})
	case errors.Is(err, e.ErrInvalidInput):
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "Wystąpił błąd podczas pobierania danych warstwy",
		})
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("json encode failed", slog.Any("error", err))
	}
}
