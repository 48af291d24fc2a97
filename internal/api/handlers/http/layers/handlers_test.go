package layers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"

	"github.com/senmay/Geo-Asystent-AI/internal/api/handlers/http/layers"
	mock_layers "github.com/senmay/Geo-Asystent-AI/internal/api/handlers/http/layers/mocks"
	"github.com/senmay/Geo-Asystent-AI/internal/domain"
	"github.com/senmay/Geo-Asystent-AI/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func withLayerParam(req *http.Request, name string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("layerName", name)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestLayerGet_OK_RawGeoJSONBody(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mock_layers.NewMockLayerProvider(ctrl)
	h := layers.NewHandler(newTestLogger(), provider)

	fc := `{"type":"FeatureCollection","features":[]}`
	provider.EXPECT().
		GetLayerAsGeoJSON(gomock.Any(), "dzialki").
		Return(fc, nil).
		Times(1)

	req := withLayerParam(httptest.NewRequest(http.MethodGet, "/api/v1/layers/dzialki", nil), "dzialki")
	rr := httptest.NewRecorder()

	h.LayerGet(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	if got := rr.Body.String(); got != fc {
		t.Fatalf("expected raw geojson body, got %q", got)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/geo+json") {
		t.Fatalf("unexpected content type: %q", ct)
	}
}

func TestLayerGet_UnknownLayer_404_Polish(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mock_layers.NewMockLayerProvider(ctrl)
	h := layers.NewHandler(newTestLogger(), provider)

	provider.EXPECT().
		GetLayerAsGeoJSON(gomock.Any(), "jeziora").
		Return("", fmt.Errorf("resolve: %w", e.ErrLayerNotFound)).
		Times(1)

	req := withLayerParam(httptest.NewRequest(http.MethodGet, "/api/v1/layers/jeziora", nil), "jeziora")
	rr := httptest.NewRecorder()

	h.LayerGet(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d body=%s", http.StatusNotFound, rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), "Warstwa 'jeziora' nie została znaleziona") {
		t.Fatalf("unexpected body: %s", rr.Body.String())
	}
}

func TestLayerGet_StorageFailure_500(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mock_layers.NewMockLayerProvider(ctrl)
	h := layers.NewHandler(newTestLogger(), provider)

	provider.EXPECT().
		GetLayerAsGeoJSON(gomock.Any(), "dzialki").
		Return("", errors.New("pool closed")).
		Times(1)

	req := withLayerParam(httptest.NewRequest(http.MethodGet, "/api/v1/layers/dzialki", nil), "dzialki")
	rr := httptest.NewRecorder()

	h.LayerGet(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected %d got %d body=%s", http.StatusInternalServerError, rr.Code, rr.Body.String())
	}
	if strings.Contains(rr.Body.String(), "pool closed") {
		t.Fatalf("internal error leaked to client: %s", rr.Body.String())
	}
}

func TestLayerList_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mock_layers.NewMockLayerProvider(ctrl)
	h := layers.NewHandler(newTestLogger(), provider)

	configs := []domain.LayerConfig{
		{Name: "buildings", TableName: "buildings", SRID: 2180},
		{Name: "parcels", TableName: "parcels", SRID: 2180},
	}
	provider.EXPECT().AvailableLayers(gomock.Any()).Return(configs).Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/layers", nil)
	rr := httptest.NewRecorder()

	h.LayerList(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	var got struct {
		Layers []domain.LayerConfig `json:"layers"`
		Count  int                  `json:"count"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if got.Count != 2 || len(got.Layers) != 2 {
		t.Fatalf("unexpected list: %+v", got)
	}
}

func TestLayerInfo_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mock_layers.NewMockLayerProvider(ctrl)
	h := layers.NewHandler(newTestLogger(), provider)

	want := domain.LayerInfo{
		Config:       domain.LayerConfig{Name: "parcels", TableName: "parcels", SRID: 2180},
		FeatureCount: 1234,
	}
	provider.EXPECT().LayerInfo(gomock.Any(), "parcels").Return(want, nil).Times(1)

	req := withLayerParam(httptest.NewRequest(http.MethodGet, "/api/v1/layers/parcels/info", nil), "parcels")
	rr := httptest.NewRecorder()

	h.LayerInfo(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	var got domain.LayerInfo
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if got.FeatureCount != 1234 || got.Config.Name != "parcels" {
		t.Fatalf("unexpected info: %+v", got)
	}
}

func TestLayerValidate_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mock_layers.NewMockLayerProvider(ctrl)
	h := layers.NewHandler(newTestLogger(), provider)

	want := domain.LayerValidation{
		LayerName:     "parcels",
		TotalFeatures: 3,
		Issues:        []string{},
		Warnings:      []string{"1 features have invalid geometries"},
		IsValid:       true,
	}
	provider.EXPECT().ValidateLayer(gomock.Any(), "parcels").Return(want, nil).Times(1)

	req := withLayerParam(httptest.NewRequest(http.MethodGet, "/api/v1/layers/parcels/validate", nil), "parcels")
	rr := httptest.NewRecorder()

	h.LayerValidate(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	var got domain.LayerValidation
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if !got.IsValid || got.TotalFeatures != 3 || len(got.Warnings) != 1 {
		t.Fatalf("unexpected validation: %+v", got)
	}
}

func TestLayerValidate_UnknownLayer_404(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mock_layers.NewMockLayerProvider(ctrl)
	h := layers.NewHandler(newTestLogger(), provider)

	provider.EXPECT().
		ValidateLayer(gomock.Any(), "jeziora").
		Return(domain.LayerValidation{}, fmt.Errorf("resolve: %w", e.ErrLayerNotFound)).
		Times(1)

	req := withLayerParam(httptest.NewRequest(http.MethodGet, "/api/v1/layers/jeziora/validate", nil), "jeziora")
	rr := httptest.NewRecorder()

	h.LayerValidate(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d body=%s", http.StatusNotFound, rr.Code, rr.Body.String())
	}
}

func TestLayerStatistics_UnknownLayer_404(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mock_layers.NewMockLayerProvider(ctrl)
	h := layers.NewHandler(newTestLogger(), provider)

	provider.EXPECT().
		LayerStatistics(gomock.Any(), "lasy").
		Return(domain.LayerStatistics{}, fmt.Errorf("resolve: %w", e.ErrLayerNotFound)).
		Times(1)

	req := withLayerParam(httptest.NewRequest(http.MethodGet, "/api/v1/layers/lasy/statistics", nil), "lasy")
	rr := httptest.NewRecorder()

	h.LayerStatistics(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d body=%s", http.StatusNotFound, rr.Code, rr.Body.String())
	}
}
