package chat

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"log/slog"

	"github.com/senmay/Geo-Asystent-AI/internal/domain"
	"github.com/senmay/Geo-Asystent-AI/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type QueryHandler interface {
	Handle(ctx context.Context, query string) domain.ChatResponse
}

type Handler struct {
	logger       *slog.Logger
	QueryHandler QueryHandler
}

func NewHandler(logger *slog.Logger, queryHandler QueryHandler) *Handler {
	return &Handler{
		logger:       logger,
		QueryHandler: queryHandler,
	}
}

// Chat accepts a Polish free-text query and always answers 200 with the
// uniform envelope; only malformed requests get a 4xx.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req domain.ChatRequest

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	// reject trailing data after the first JSON object
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := validator.ValidateStruct(req); err != nil {
		h.log(r).Warn("chat request rejected", slog.Any("error", err))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "query must not be empty"})
		return
	}

	resp := h.QueryHandler.Handle(r.Context(), req.Query)

	h.log(r).Info("chat query handled",
		slog.String("intent", resp.Intent),
		slog.String("type", string(resp.Type)),
	)
	h.writeJSON(w, http.StatusOK, resp)
}
