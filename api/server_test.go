package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewAPI(t *testing.T) {
	api, router := NewAPI()

	if api == nil {
		t.Error("NewAPI returned nil API")
	}
	if router == nil {
		t.Error("NewAPI returned nil router")
	}
}

func TestNewAPI_HasCorrectTitle(t *testing.T) {
	api, _ := NewAPI()

	info := api.OpenAPI().Info
	if info.Title != "Podcheck API" {
		t.Errorf("API title = %s, want Podcheck API", info.Title)
	}
}

func TestNewAPI_HasCorrectVersion(t *testing.T) {
	api, _ := NewAPI()

	info := api.OpenAPI().Info
	if info.Version != "1.0.0" {
		t.Errorf("API version = %s, want 1.0.0", info.Version)
	}
}

func TestNewAPI_ServesOpenAPISpec(t *testing.T) {
	_, router := NewAPI()

	req := httptest.NewRequest(http.MethodGet, "/openapi.json", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("GET /openapi.json = %d, want 200", rec.Code)
	}
}

func TestNewAPIWithMiddleware(t *testing.T) {
	api, router := NewAPIWithMiddleware(APIConfig{
		RateLimit:  10,
		RateBurst:  10,
		RateWindow: time.Minute,
	})

	if api == nil {
		t.Error("NewAPIWithMiddleware returned nil API")
	}
	if router == nil {
		t.Error("NewAPIWithMiddleware returned nil router")
	}
}
