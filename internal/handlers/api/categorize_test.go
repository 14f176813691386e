package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"

	"microcat/internal/models"
	"microcat/internal/service"
)

type fakeStore struct {
	err     error
	records []models.ClassificationRecord
}

func (f *fakeStore) InsertClassification(ctx context.Context, rec *models.ClassificationRecord) error {
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, *rec)
	return nil
}

func (f *fakeStore) Ping(ctx context.Context) error {
	return f.err
}

func newTestApp(store *fakeStore) *fiber.App {
	app := fiber.New()
	h := NewCategorizeHandler(service.New(store, nil, 0))
	app.Post("/categorize", h.Categorize)
	return app
}

func postJSON(t *testing.T, app *fiber.App, body string) (*http.Response, string) {
	t.Helper()
	req, _ := http.NewRequest(http.MethodPost, "/categorize", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	data, _ := io.ReadAll(resp.Body)
	return resp, string(data)
}

func TestCategorize_Success(t *testing.T) {
	store := &fakeStore{}
	app := newTestApp(store)

	resp, body := postJSON(t, app, `{"object":"computer"}`)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200: %s", resp.StatusCode, body)
	}

	want := `{"object":"computer","category":"Technology","confidence":0.9}`
	if body != want {
		t.Errorf("body = %s, want %s", body, want)
	}
	if len(store.records) != 1 {
		t.Errorf("store received %d records, want 1", len(store.records))
	}
}

func TestCategorize_Categories(t *testing.T) {
	tests := []struct {
		object     string
		category   string
		confidence float64
	}{
		{"recipe", "Food", 0.8},
		{"unknown", "Technology", 0.3},
		{"", "Technology", 0.3},
		{"I bought a new laptop for my course", "Technology", 0.8},
		{"Travel LUGGAGE set", "Travel", 0.6},
	}

	for _, tt := range tests {
		t.Run(tt.object, func(t *testing.T) {
			app := newTestApp(&fakeStore{})

			payload, _ := json.Marshal(models.ClassificationRequest{Object: tt.object})
			resp, body := postJSON(t, app, string(payload))
			if resp.StatusCode != fiber.StatusOK {
				t.Fatalf("status = %d, want 200: %s", resp.StatusCode, body)
			}

			var got struct {
				Object     string  `json:"object"`
				Category   string  `json:"category"`
				Confidence float64 `json:"confidence"`
			}
			if err := json.Unmarshal([]byte(body), &got); err != nil {
				t.Fatalf("invalid response body %q: %v", body, err)
			}
			if got.Object != tt.object || got.Category != tt.category || got.Confidence != tt.confidence {
				t.Errorf("response = %+v, want {%q %q %v}", got, tt.object, tt.category, tt.confidence)
			}
		})
	}
}

func TestCategorize_MalformedRequest(t *testing.T) {
	for _, body := range []string{`{}`, `{"object":1}`, `not json`, ``} {
		t.Run(fmt.Sprintf("%q", body), func(t *testing.T) {
			store := &fakeStore{}
			app := newTestApp(store)

			resp, respBody := postJSON(t, app, body)
			if resp.StatusCode != fiber.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
			if !strings.Contains(respBody, `"status":"error"`) {
				t.Errorf("body = %s, want error envelope", respBody)
			}
			if len(store.records) != 0 {
				t.Errorf("store received %d records, want 0", len(store.records))
			}
		})
	}
}

func TestCategorize_StoreUnavailable(t *testing.T) {
	app := newTestApp(&fakeStore{err: errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")})

	resp, body := postJSON(t, app, `{"object":"computer"}`)
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Errorf("status = %d, want 500", resp.StatusCode)
	}
	if body != "" {
		t.Errorf("body = %q, want empty", body)
	}
}

func TestProbe(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		storeErr   error
		wantStatus int
		wantBody   string
	}{
		{"liveness ignores store", "/healthz", errors.New("down"), 200, `{"status":"ok"}`},
		{"readiness ok", "/readyz", nil, 200, `{"status":"ok"}`},
		{"readiness store down", "/readyz", errors.New("down"), 503, `{"status":"error","error":"store unavailable"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewProbeHandler(&fakeStore{err: tt.storeErr})
			app := fiber.New()
			app.Get("/healthz", h.Liveness)
			app.Get("/readyz", h.Readiness)

			req, _ := http.NewRequest(http.MethodGet, tt.path, nil)
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			body, _ := io.ReadAll(resp.Body)
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if string(body) != tt.wantBody {
				t.Errorf("body = %s, want %s", body, tt.wantBody)
			}
		})
	}
}
