package http

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	"github.com/freshly-app/freshly/internal/vision"
)

func newUploadRequest(t *testing.T, field, filename string) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	part.Write([]byte("not a real jpeg"))
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/upload-image", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func newRouter(t *testing.T) *mux.Router {
	t.Helper()
	// No backends configured: analysis degrades to the static demo set.
	handler := NewUploadHandler(vision.NewService(nil, nil), t.TempDir())
	router := mux.NewRouter()
	handler.RegisterRoutes(router)
	handler.RegisterHealthCheck(router)
	return router
}

func TestUploadImageDemoFallback(t *testing.T) {
	router := newRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, newUploadRequest(t, "image", "fridge.jpg"))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    struct {
			DetectedItems []struct {
				Name string `json:"name"`
			} `json:"detectedItems"`
			FallbackMode bool   `json:"fallbackMode"`
			Method       string `json:"method"`
			Filename     string `json:"filename"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if !resp.Success {
		t.Error("expected success")
	}
	if !resp.Data.FallbackMode {
		t.Error("expected fallbackMode with no backends configured")
	}
	if resp.Data.Method != vision.MethodStaticFallback {
		t.Errorf("method = %q, want %q", resp.Data.Method, vision.MethodStaticFallback)
	}
	if len(resp.Data.DetectedItems) != 3 {
		t.Fatalf("expected 3 demo items, got %d", len(resp.Data.DetectedItems))
	}
	if resp.Data.Filename == "" {
		t.Error("expected a stored filename")
	}
	if resp.Message == "Image analyzed successfully" {
		t.Error("demo mode must be disclosed in the message")
	}
}

func TestUploadImageMissingFile(t *testing.T) {
	router := newRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, newUploadRequest(t, "photo", "fridge.jpg"))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHealthCheck(t *testing.T) {
	router := newRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !resp.Success {
		t.Error("expected a healthy response")
	}
}
