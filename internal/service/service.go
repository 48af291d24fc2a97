package service

import (
	"context"

	"github.com/senmay/Geo-Asystent-AI/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// IntentClassifier maps free text onto the closed intent set.
type IntentClassifier interface {
	Classify(ctx context.Context, query string) (domain.Intent, error)
}

// GISService exposes the spatial operations behind the chat intents and the
// layer endpoints. Every GeoJSON-returning method serializes in WGS84.
type GISService interface {
	GetLayerAsGeoJSON(ctx context.Context, layerName string) (string, error)
	FindLargestParcel(ctx context.Context) (string, error)
	FindNLargestParcels(ctx context.Context, n int) (string, error)
	FindParcelsAboveArea(ctx context.Context, minAreaSqm float64) (string, error)
	FindParcelsNearGPZ(ctx context.Context, radiusMeters float64) (string, error)
	FindParcelsWithoutBuildings(ctx context.Context) (string, error)
	AvailableLayers(ctx context.Context) []domain.LayerConfig
	LayerInfo(ctx context.Context, layerName string) (domain.LayerInfo, error)
	LayerStatistics(ctx context.Context, layerName string) (domain.LayerStatistics, error)
	ValidateLayer(ctx context.Context, layerName string) (domain.LayerValidation, error)
}

// ChatResponder produces a conversational Polish reply.
type ChatResponder interface {
	Reply(ctx context.Context, query string) (string, error)
}

// QueryProcessor handles one chat query end to end. It never returns an
// error: failures are translated into Polish text envelopes.
type QueryProcessor interface {
	Handle(ctx context.Context, query string) domain.ChatResponse
}

type Service struct {
	GIS        GISService
	Dispatcher QueryProcessor
}

func NewService(gis GISService, dispatcher QueryProcessor) *Service {
	return &Service{
		GIS:        gis,
		Dispatcher: dispatcher,
	}
}
