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
	if info.Title != "NoteGrab API" {
		t.Errorf("API title = %s, want NoteGrab API", info.Title)
	}
	if info.Version != "1.0.0" {
		t.Errorf("API version = %s, want 1.0.0", info.Version)
	}
}

func TestNewAPI_ServesOpenAPISpec(t *testing.T) {
	_, router := NewAPI()

	req := httptest.NewRequest("GET", "/openapi.json", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("GET /openapi.json status = %d, want 200", rec.Code)
	}
}

func TestNewAPI_SetsCORSHeaders(t *testing.T) {
	_, router := NewAPI()

	req := httptest.NewRequest("OPTIONS", "/extract/media", nil)
	req.Header.Set("Origin", "https://www.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("preflight response is missing CORS headers")
	}
}

func TestNewAPIWithMiddleware_RateLimits(t *testing.T) {
	_, router := NewAPIWithMiddleware(APIConfig{
		RateLimit:  1,
		RateWindow: time.Minute,
	})

	first := httptest.NewRecorder()
	req1 := httptest.NewRequest("GET", "/openapi.json", nil)
	req1.RemoteAddr = "127.0.0.1:1000"
	router.ServeHTTP(first, req1)

	second := httptest.NewRecorder()
	req2 := httptest.NewRequest("GET", "/openapi.json", nil)
	req2.RemoteAddr = "127.0.0.1:1000"
	router.ServeHTTP(second, req2)

	if second.Code != http.StatusTooManyRequests {
		t.Errorf("second request status = %d, want 429", second.Code)
	}
}
