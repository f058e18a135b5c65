package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/guide-content-pipeline/internal/domain"
)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func strPtr(s string) *string { return &s }

func testGuideView() *domain.GuideView {
	return &domain.GuideView{
		POI:                domain.POI{Label: "Beppu Hells", Slug: "beppu-hells", Type: "sightseeing"},
		ID:                 "JPN-OITA-TUR-001",
		Title:              "Beppu Hells",
		Language:           "ja",
		AvailableLanguages: []string{"en", "ja"},
		AssetBaseURL:       "https://assets.test/laxy.travel.dev/tours/JPN-OITA-TUR-001/",
		Steps: []domain.StepView{
			{
				ID:    "1",
				Title: "Sea Hell",
				Order: 1,
				Assets: domain.StepAssets{
					AudioURL: strPtr("https://assets.test/laxy.travel.dev/tours/JPN-OITA-TUR-001/audio/jpn/1.mp3"),
					Images:   []domain.ImageAsset{},
				},
			},
		},
	}
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
