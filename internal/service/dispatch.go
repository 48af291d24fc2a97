package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/senmay/Geo-Asystent-AI/internal/domain"
	"github.com/senmay/Geo-Asystent-AI/internal/llm"
	"github.com/senmay/Geo-Asystent-AI/pkg/e"
)

// Dispatcher routes a classified query to the matching GIS operation or the
// conversational responder. Handle never returns an error: every failure is
// translated into a Polish text envelope so the chat endpoint stays uniform.
type Dispatcher struct {
	classifier IntentClassifier
	gis        GISService
	chat       ChatResponder
	logger     *slog.Logger
}

func NewDispatcher(classifier IntentClassifier, gis GISService, chat ChatResponder, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		classifier: classifier,
		gis:        gis,
		chat:       chat,
		logger:     logger,
	}
}

func (d *Dispatcher) Handle(ctx context.Context, query string) domain.ChatResponse {
	const op = "service.Dispatcher.Handle"

	intent, err := d.classifier.Classify(ctx, query)
	if err != nil {
		d.logger.Error("classification failed", slog.String("op", op), slog.Any("error", err))
		return domain.TextResponse(domain.IntentChat, classifierFallback(err))
	}

	if err := intent.Validate(); err != nil {
		d.logger.Warn("invalid intent parameters",
			slog.String("op", op),
			slog.String("intent", string(intent.Type)),
			slog.Any("error", err),
		)
		return domain.TextResponse(intent.Type, invalidParamsMessage(intent))
	}

	d.logger.Info("intent dispatched",
		slog.String("op", op),
		slog.String("intent", string(intent.Type)),
	)

	switch intent.Type {
	case domain.IntentGetGisData:
		return d.geoJSON(ctx, intent, func() (string, error) {
			return d.gis.GetLayerAsGeoJSON(ctx, intent.LayerName)
		})
	case domain.IntentFindLargestParcel:
		return d.geoJSON(ctx, intent, func() (string, error) {
			return d.gis.FindLargestParcel(ctx)
		})
	case domain.IntentFindNLargestParcels:
		return d.geoJSON(ctx, intent, func() (string, error) {
			return d.gis.FindNLargestParcels(ctx, intent.N)
		})
	case domain.IntentFindParcelsAboveArea:
		return d.geoJSON(ctx, intent, func() (string, error) {
			return d.gis.FindParcelsAboveArea(ctx, intent.MinArea)
		})
	case domain.IntentFindParcelsNearGpz:
		return d.geoJSON(ctx, intent, func() (string, error) {
			return d.gis.FindParcelsNearGPZ(ctx, intent.RadiusMeters)
		})
	case domain.IntentFindParcelsWithoutBuildings:
		return d.geoJSON(ctx, intent, func() (string, error) {
			return d.gis.FindParcelsWithoutBuildings(ctx)
		})
	default:
		return d.reply(ctx, query)
	}
}

// geoJSON runs one spatial operation and wraps its output; on failure it
// degrades to a text envelope carrying the original intent.
func (d *Dispatcher) geoJSON(ctx context.Context, intent domain.Intent, run func() (string, error)) domain.ChatResponse {
	const op = "service.Dispatcher.geoJSON"

	out, err := run()
	if err != nil {
		d.logger.Error("spatial operation failed",
			slog.String("op", op),
			slog.String("intent", string(intent.Type)),
			slog.Any("error", err),
		)
		return domain.TextResponse(intent.Type, spatialErrorMessage(intent, err))
	}
	return domain.GeoJSONResponse(intent.Type, out)
}

func (d *Dispatcher) reply(ctx context.Context, query string) domain.ChatResponse {
	const op = "service.Dispatcher.reply"

	text, err := d.chat.Reply(ctx, query)
	if err != nil {
		d.logger.Error("chat reply failed", slog.String("op", op), slog.Any("error", err))
		return domain.TextResponse(domain.IntentChat, classifierFallback(err))
	}
	return domain.TextResponse(domain.IntentChat, text)
}

func classifierFallback(err error) string {
	switch {
	case errors.Is(err, e.ErrDeadline) || errors.Is(err, context.DeadlineExceeded):
		return llm.FallbackResponse("timeout")
	case errors.Is(err, e.ErrLLMUnavailable):
		return llm.FallbackResponse("unavailable")
	case errors.Is(err, e.ErrLLMMalformed):
		return llm.FallbackResponse("classification")
	default:
		return llm.FallbackResponse("general")
	}
}

func invalidParamsMessage(intent domain.Intent) string {
	switch intent.Type {
	case domain.IntentGetGisData:
		return "Nie rozpoznałem nazwy warstwy. Dostępne warstwy to m.in. działki, budynki i GPZ."
	case domain.IntentFindNLargestParcels:
		return fmt.Sprintf("Liczba działek musi być w zakresie od 1 do %d.", domain.MaxNLargest)
	case domain.IntentFindParcelsAboveArea:
		return "Podana powierzchnia musi być większa od zera."
	case domain.IntentFindParcelsNearGpz:
		return "Podany promień musi być większy od zera."
	default:
		return llm.FallbackResponse("classification")
	}
}

func spatialErrorMessage(intent domain.Intent, err error) string {
	switch {
	case errors.Is(err, e.ErrLayerNotFound):
		layer := intent.LayerName
		if layer == "" {
			layer = "?"
		}
		return fmt.Sprintf("Nie znaleziono warstwy '%s'. Dostępne warstwy to m.in. działki, budynki i GPZ.", layer)
	case errors.Is(err, e.ErrInvalidInput):
		return invalidParamsMessage(intent)
	case errors.Is(err, e.ErrDeadline) || errors.Is(err, context.DeadlineExceeded):
		return llm.FallbackResponse("timeout")
	default:
		return llm.FallbackResponse("general")
	}
}
