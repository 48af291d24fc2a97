package chat_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/golang/mock/gomock"

	"github.com/senmay/Geo-Asystent-AI/internal/api/handlers/http/chat"
	mock_chat "github.com/senmay/Geo-Asystent-AI/internal/api/handlers/http/chat/mocks"
	"github.com/senmay/Geo-Asystent-AI/internal/domain"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

func TestChat_OK_GeoJSONEnvelope(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	qh := mock_chat.NewMockQueryHandler(ctrl)
	h := chat.NewHandler(newTestLogger(), qh)

	want := domain.GeoJSONResponse(domain.IntentGetGisData, `{"type":"FeatureCollection","features":[]}`)
	qh.EXPECT().
		Handle(gomock.Any(), "pokaż działki").
		Return(want).
		Times(1)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", bytes.NewBufferString(`{"query":"pokaż działki"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	h.Chat(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[domain.ChatResponse](t, rr)
	if got != want {
		t.Fatalf("unexpected response: got=%+v want=%+v", got, want)
	}
}

func TestChat_OK_TextEnvelope(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	qh := mock_chat.NewMockQueryHandler(ctrl)
	h := chat.NewHandler(newTestLogger(), qh)

	want := domain.TextResponse(domain.IntentChat, "Cześć! W czym mogę pomóc?")
	qh.EXPECT().Handle(gomock.Any(), "cześć").Return(want).Times(1)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", bytes.NewBufferString(`{"query":"cześć"}`))
	rr := httptest.NewRecorder()

	h.Chat(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	got := decodeJSON[domain.ChatResponse](t, rr)
	if got != want {
		t.Fatalf("unexpected response: got=%+v want=%+v", got, want)
	}
}

func TestChat_InvalidJSON_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	qh := mock_chat.NewMockQueryHandler(ctrl)
	h := chat.NewHandler(newTestLogger(), qh)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", bytes.NewBufferString("{bad json"))
	rr := httptest.NewRecorder()

	h.Chat(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestChat_EmptyBody_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	qh := mock_chat.NewMockQueryHandler(ctrl)
	h := chat.NewHandler(newTestLogger(), qh)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", nil)
	rr := httptest.NewRecorder()

	h.Chat(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestChat_BlankQuery_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	qh := mock_chat.NewMockQueryHandler(ctrl)
	h := chat.NewHandler(newTestLogger(), qh)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", bytes.NewBufferString(`{"query":"   "}`))
	rr := httptest.NewRecorder()

	h.Chat(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestChat_UnknownField_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	qh := mock_chat.NewMockQueryHandler(ctrl)
	h := chat.NewHandler(newTestLogger(), qh)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", bytes.NewBufferString(`{"query":"x","extra":1}`))
	rr := httptest.NewRecorder()

	h.Chat(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestChat_TrailingData_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	qh := mock_chat.NewMockQueryHandler(ctrl)
	h := chat.NewHandler(newTestLogger(), qh)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", bytes.NewBufferString(`{"query":"x"}{"query":"y"}`))
	rr := httptest.NewRecorder()

	h.Chat(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}
