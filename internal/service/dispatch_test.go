package service_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/senmay/Geo-Asystent-AI/internal/domain"
	"github.com/senmay/Geo-Asystent-AI/internal/service"
	mock_service "github.com/senmay/Geo-Asystent-AI/internal/service/mocks"
	"github.com/senmay/Geo-Asystent-AI/pkg/e"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDispatcher_SpatialIntent_ReturnsGeoJSONEnvelope(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	classifier := mock_service.NewMockIntentClassifier(ctrl)
	gis := mock_service.NewMockGISService(ctrl)
	chat := mock_service.NewMockChatResponder(ctrl)

	query := "pokaż 3 największe działki"
	intent := domain.Intent{Type: domain.IntentFindNLargestParcels, N: 3}
	fc := `{"type":"FeatureCollection","features":[]}`

	classifier.EXPECT().Classify(gomock.Any(), query).Return(intent, nil).Times(1)
	gis.EXPECT().FindNLargestParcels(gomock.Any(), 3).Return(fc, nil).Times(1)

	d := service.NewDispatcher(classifier, gis, chat, discardLogger())

	got := d.Handle(context.Background(), query)
	if got.Type != domain.ResponseGeoJSON {
		t.Fatalf("expected geojson envelope, got %q", got.Type)
	}
	if got.Intent != "find_n_largest_parcels" {
		t.Fatalf("unexpected intent: %q", got.Intent)
	}
	if got.Data != fc {
		t.Fatalf("unexpected data: %q", got.Data)
	}
}

func TestDispatcher_ChatIntent_RoutesToResponder(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	classifier := mock_service.NewMockIntentClassifier(ctrl)
	gis := mock_service.NewMockGISService(ctrl)
	chat := mock_service.NewMockChatResponder(ctrl)

	query := "czym jest GPZ?"
	classifier.EXPECT().Classify(gomock.Any(), query).Return(domain.ChatIntent(), nil).Times(1)
	chat.EXPECT().Reply(gomock.Any(), query).Return("GPZ to główny punkt zasilania.", nil).Times(1)

	d := service.NewDispatcher(classifier, gis, chat, discardLogger())

	got := d.Handle(context.Background(), query)
	if got.Type != domain.ResponseText {
		t.Fatalf("expected text envelope, got %q", got.Type)
	}
	if got.Intent != "chat" {
		t.Fatalf("unexpected intent: %q", got.Intent)
	}
	if got.Data != "GPZ to główny punkt zasilania." {
		t.Fatalf("unexpected data: %q", got.Data)
	}
}

func TestDispatcher_ClassifierUnavailable_TextFallback(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	classifier := mock_service.NewMockIntentClassifier(ctrl)
	gis := mock_service.NewMockGISService(ctrl)
	chat := mock_service.NewMockChatResponder(ctrl)

	query := "pokaż działki"
	classifier.EXPECT().Classify(gomock.Any(), query).
		Return(domain.Intent{}, fmt.Errorf("llm: %w", e.ErrLLMUnavailable)).
		Times(1)

	d := service.NewDispatcher(classifier, gis, chat, discardLogger())

	got := d.Handle(context.Background(), query)
	if got.Type != domain.ResponseText {
		t.Fatalf("expected text envelope, got %q", got.Type)
	}
	if !strings.Contains(got.Data, "problem z usługą AI") {
		t.Fatalf("expected unavailable fallback, got %q", got.Data)
	}
}

func TestDispatcher_ClassifierTimeout_TimeoutFallback(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	classifier := mock_service.NewMockIntentClassifier(ctrl)
	gis := mock_service.NewMockGISService(ctrl)
	chat := mock_service.NewMockChatResponder(ctrl)

	classifier.EXPECT().Classify(gomock.Any(), gomock.Any()).
		Return(domain.Intent{}, context.DeadlineExceeded).
		Times(1)

	d := service.NewDispatcher(classifier, gis, chat, discardLogger())

	got := d.Handle(context.Background(), "pokaż działki")
	if got.Type != domain.ResponseText {
		t.Fatalf("expected text envelope, got %q", got.Type)
	}
	if !strings.Contains(got.Data, "trwa zbyt długo") {
		t.Fatalf("expected timeout fallback, got %q", got.Data)
	}
}

func TestDispatcher_InvalidParams_NoGISCall(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	classifier := mock_service.NewMockIntentClassifier(ctrl)
	gis := mock_service.NewMockGISService(ctrl)
	chat := mock_service.NewMockChatResponder(ctrl)

	intent := domain.Intent{Type: domain.IntentFindNLargestParcels, N: 0}
	classifier.EXPECT().Classify(gomock.Any(), gomock.Any()).Return(intent, nil).Times(1)

	d := service.NewDispatcher(classifier, gis, chat, discardLogger())

	got := d.Handle(context.Background(), "pokaż 0 największych działek")
	if got.Type != domain.ResponseText {
		t.Fatalf("expected text envelope, got %q", got.Type)
	}
	if !strings.Contains(got.Data, "Liczba działek") {
		t.Fatalf("expected parameter message, got %q", got.Data)
	}
}

func TestDispatcher_LayerNotFound_PolishMessage(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	classifier := mock_service.NewMockIntentClassifier(ctrl)
	gis := mock_service.NewMockGISService(ctrl)
	chat := mock_service.NewMockChatResponder(ctrl)

	intent := domain.Intent{Type: domain.IntentGetGisData, LayerName: "jeziora"}
	classifier.EXPECT().Classify(gomock.Any(), gomock.Any()).Return(intent, nil).Times(1)
	gis.EXPECT().GetLayerAsGeoJSON(gomock.Any(), "jeziora").
		Return("", fmt.Errorf("resolve: %w", e.ErrLayerNotFound)).
		Times(1)

	d := service.NewDispatcher(classifier, gis, chat, discardLogger())

	got := d.Handle(context.Background(), "pokaż jeziora")
	if got.Type != domain.ResponseText {
		t.Fatalf("expected text envelope, got %q", got.Type)
	}
	if !strings.Contains(got.Data, "Nie znaleziono warstwy 'jeziora'") {
		t.Fatalf("unexpected message: %q", got.Data)
	}
	if got.Intent != "get_gis_data" {
		t.Fatalf("unexpected intent: %q", got.Intent)
	}
}

func TestDispatcher_SpatialFailure_GeneralFallback(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	classifier := mock_service.NewMockIntentClassifier(ctrl)
	gis := mock_service.NewMockGISService(ctrl)
	chat := mock_service.NewMockChatResponder(ctrl)

	intent := domain.Intent{Type: domain.IntentFindParcelsWithoutBuildings}
	classifier.EXPECT().Classify(gomock.Any(), gomock.Any()).Return(intent, nil).Times(1)
	gis.EXPECT().FindParcelsWithoutBuildings(gomock.Any()).
		Return("", errors.New("boom")).
		Times(1)

	d := service.NewDispatcher(classifier, gis, chat, discardLogger())

	got := d.Handle(context.Background(), "działki bez budynków")
	if got.Type != domain.ResponseText {
		t.Fatalf("expected text envelope, got %q", got.Type)
	}
	if !strings.Contains(got.Data, "nieoczekiwany błąd") {
		t.Fatalf("expected general fallback, got %q", got.Data)
	}
}

func TestDispatcher_ChatReplyFailure_TextFallback(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	classifier := mock_service.NewMockIntentClassifier(ctrl)
	gis := mock_service.NewMockGISService(ctrl)
	chat := mock_service.NewMockChatResponder(ctrl)

	classifier.EXPECT().Classify(gomock.Any(), gomock.Any()).Return(domain.ChatIntent(), nil).Times(1)
	chat.EXPECT().Reply(gomock.Any(), gomock.Any()).
		Return("", fmt.Errorf("llm: %w", e.ErrLLMUnavailable)).
		Times(1)

	d := service.NewDispatcher(classifier, gis, chat, discardLogger())

	got := d.Handle(context.Background(), "opowiedz o sobie")
	if got.Type != domain.ResponseText {
		t.Fatalf("expected text envelope, got %q", got.Type)
	}
	if !strings.Contains(got.Data, "Mogę pomóc z") {
		t.Fatalf("expected fallback suffix, got %q", got.Data)
	}
}
