package http

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/freshly-app/freshly/internal/vision"
	"github.com/freshly-app/freshly/pkg/logger"
)

// maxUploadBytes caps image uploads at 10 MB.
const maxUploadBytes = 10 << 20

var (
	analysisCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vision_analyses_total",
			Help: "Total number of image analyses by resulting method",
		},
		[]string{"method", "status"},
	)
	analysisLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "vision_analysis_duration_seconds",
			Help:    "Duration of image analyses in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// UploadHandler handles image upload and analysis requests.
type UploadHandler struct {
	service   *vision.Service
	uploadDir string
}

// NewUploadHandler creates a new upload handler. Uploaded files are kept
// in uploadDir.
func NewUploadHandler(service *vision.Service, uploadDir string) *UploadHandler {
	return &UploadHandler{service: service, uploadDir: uploadDir}
}

// Response is the JSON envelope for the vision endpoints.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type uploadResult struct {
	vision.Result
	Filename string `json:"filename"`
}

// UploadImage handles POST /api/upload-image. It stores the uploaded file,
// runs the analysis pipeline and returns the detected candidates. The
// candidates are not written to the inventory; the client confirms them
// through the inventory batch endpoint.
func (h *UploadHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "No image file provided",
		})
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "No image file provided",
		})
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to read uploaded image")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to read uploaded image",
		})
		return
	}

	filename, err := h.saveUpload(header.Filename, image)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to store uploaded image")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to store uploaded image",
		})
		return
	}

	logger.Info(r.Context()).
		Str("filename", filename).
		Int("bytes", len(image)).
		Msg("Image uploaded")

	result, err := h.service.Analyze(r.Context(), image, header.Filename)
	analysisLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		analysisCounter.WithLabelValues("none", "error").Inc()
		logger.Error(r.Context()).Err(err).Msg("Image analysis failed")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to process image",
		})
		return
	}
	analysisCounter.WithLabelValues(result.Method, "ok").Inc()

	message := "Image analyzed successfully"
	if result.FallbackMode {
		message = "Image analyzed successfully (Demo-Modus - Vision API nicht verfügbar)"
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    uploadResult{Result: result, Filename: filename},
	})
}

func (h *UploadHandler) saveUpload(original string, image []byte) (string, error) {
	name := time.Now().UTC().Format("20060102T150405") + "-" + uuid.NewString() + filepath.Ext(original)
	if err := os.WriteFile(filepath.Join(h.uploadDir, name), image, 0o644); err != nil {
		return "", err
	}
	return name, nil
}

// RegisterRoutes registers the vision routes.
func (h *UploadHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/upload-image", h.UploadImage).Methods("POST")
}

// RegisterHealthCheck registers the health check endpoint.
func (h *UploadHandler) RegisterHealthCheck(router *mux.Router) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Freshly service is healthy",
			Data: map[string]interface{}{
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			},
		})
	}).Methods("GET")
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
