package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	inventory "github.com/freshly-app/freshly/internal/inventory/domain"
	"github.com/freshly-app/freshly/internal/shopping/domain"
	"github.com/freshly-app/freshly/internal/shopping/usecase/command"
	"github.com/freshly-app/freshly/internal/shopping/usecase/query"
	"github.com/freshly-app/freshly/pkg/logger"
)

var (
	requestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shopping_requests_total",
			Help: "Total number of requests to the shopping list endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)
	requestLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "shopping_request_duration_seconds",
			Help:    "Duration of shopping list requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
	derivedEntries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shopping_derived_entries_total",
			Help: "Number of shopping list entries created by derivation",
		},
		[]string{"source"},
	)
)

// ItemHandler handles HTTP requests for the shopping list.
type ItemHandler struct {
	addHandler      *command.AddItemsHandler
	updateHandler   *command.UpdateItemHandler
	deleteHandler   *command.DeleteItemHandler
	lowStockHandler *command.DeriveLowStockHandler
	templateHandler *command.GenerateTemplateHandler
	listHandler     *query.ListItemsHandler
}

// NewItemHandler creates a new shopping list handler.
func NewItemHandler(repo domain.ItemRepository, inventoryRepo inventory.ItemRepository) *ItemHandler {
	return &ItemHandler{
		addHandler:      command.NewAddItemsHandler(repo),
		updateHandler:   command.NewUpdateItemHandler(repo),
		deleteHandler:   command.NewDeleteItemHandler(repo),
		lowStockHandler: command.NewDeriveLowStockHandler(repo, inventoryRepo),
		templateHandler: command.NewGenerateTemplateHandler(repo, inventoryRepo),
		listHandler:     query.NewListItemsHandler(repo),
	}
}

// Response is the JSON envelope for all shopping list endpoints.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type itemRequest struct {
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Quantity float64         `json:"quantity"`
	Unit     string          `json:"unit"`
	Priority domain.Priority `json:"priority"`
	Source   domain.Source   `json:"source"`
	Reason   string          `json:"reason"`
}

// ListItems handles GET /api/shopping-list
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	defer track("GET", "/api/shopping-list", time.Now())

	items, err := h.listHandler.Handle()
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list shopping list")
		respondJSON(w, http.StatusInternalServerError, "GET", "/api/shopping-list", Response{
			Success: false,
			Error:   "Failed to list shopping list",
		})
		return
	}

	respondJSON(w, http.StatusOK, "GET", "/api/shopping-list", Response{
		Success: true,
		Data:    items,
	})
}

// CreateItem handles POST /api/shopping-list
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	defer track("POST", "/api/shopping-list", time.Now())

	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, "POST", "/api/shopping-list", Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	items, err := h.addHandler.Handle(command.AddItemsCommand{Items: []command.AddItemCommand{{
		Name:     req.Name,
		Category: req.Category,
		Quantity: req.Quantity,
		Unit:     req.Unit,
		Priority: req.Priority,
		Source:   req.Source,
		Reason:   req.Reason,
	}}})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to add shopping item")
		respondJSON(w, http.StatusBadRequest, "POST", "/api/shopping-list", Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusCreated, "POST", "/api/shopping-list", Response{
		Success: true,
		Message: "Item added successfully",
		Data:    items[0],
	})
}

// UpdateItem handles PUT /api/shopping-list/{id}
func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	defer track("PUT", "/api/shopping-list/{id}", time.Now())

	var update domain.ItemUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		respondJSON(w, http.StatusBadRequest, "PUT", "/api/shopping-list/{id}", Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	item, err := h.updateHandler.Handle(command.UpdateItemCommand{
		ID:     mux.Vars(r)["id"],
		Update: update,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondJSON(w, http.StatusNotFound, "PUT", "/api/shopping-list/{id}", Response{
				Success: false,
				Error:   "Item not found",
			})
			return
		}
		logger.Error(r.Context()).Err(err).Msg("Failed to update shopping item")
		respondJSON(w, http.StatusInternalServerError, "PUT", "/api/shopping-list/{id}", Response{
			Success: false,
			Error:   "Failed to update shopping item",
		})
		return
	}

	respondJSON(w, http.StatusOK, "PUT", "/api/shopping-list/{id}", Response{
		Success: true,
		Message: "Item updated successfully",
		Data:    item,
	})
}

// DeleteItem handles DELETE /api/shopping-list/{id}
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	defer track("DELETE", "/api/shopping-list/{id}", time.Now())

	item, err := h.deleteHandler.Handle(command.DeleteItemCommand{ID: mux.Vars(r)["id"]})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondJSON(w, http.StatusNotFound, "DELETE", "/api/shopping-list/{id}", Response{
				Success: false,
				Error:   "Item not found",
			})
			return
		}
		logger.Error(r.Context()).Err(err).Msg("Failed to delete shopping item")
		respondJSON(w, http.StatusInternalServerError, "DELETE", "/api/shopping-list/{id}", Response{
			Success: false,
			Error:   "Failed to delete shopping item",
		})
		return
	}

	respondJSON(w, http.StatusOK, "DELETE", "/api/shopping-list/{id}", Response{
		Success: true,
		Message: "Item deleted successfully",
		Data:    item,
	})
}

// AddLowStock handles POST /api/shopping-list/add-low-stock
func (h *ItemHandler) AddLowStock(w http.ResponseWriter, r *http.Request) {
	defer track("POST", "/api/shopping-list/add-low-stock", time.Now())

	var req struct {
		Threshold float64 `json:"threshold"`
	}
	// An empty body means the default threshold.
	json.NewDecoder(r.Body).Decode(&req)

	items, err := h.lowStockHandler.Handle(command.DeriveLowStockCommand{Threshold: req.Threshold})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to derive low stock entries")
		respondJSON(w, http.StatusInternalServerError, "POST", "/api/shopping-list/add-low-stock", Response{
			Success: false,
			Error:   "Failed to add low stock items to shopping list",
		})
		return
	}

	message := "Keine Artikel mit wenig Vorrat gefunden"
	if len(items) > 0 {
		message = strconv.Itoa(len(items)) + " Artikel aus \"wenig Vorrat\" zur Einkaufsliste hinzugefügt"
		derivedEntries.WithLabelValues(string(domain.SourceLowStock)).Add(float64(len(items)))
	}

	respondJSON(w, http.StatusOK, "POST", "/api/shopping-list/add-low-stock", Response{
		Success: true,
		Message: message,
		Data:    items,
	})
}

// GenerateTemplate handles POST /api/shopping-list/generate
func (h *ItemHandler) GenerateTemplate(w http.ResponseWriter, r *http.Request) {
	defer track("POST", "/api/shopping-list/generate", time.Now())

	var req struct {
		Threshold float64 `json:"threshold"`
	}
	json.NewDecoder(r.Body).Decode(&req)

	items, err := h.templateHandler.Handle(command.GenerateTemplateCommand{Threshold: req.Threshold})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to generate template entries")
		respondJSON(w, http.StatusInternalServerError, "POST", "/api/shopping-list/generate", Response{
			Success: false,
			Error:   "Failed to generate shopping list",
		})
		return
	}
	if len(items) > 0 {
		derivedEntries.WithLabelValues(string(domain.SourceTemplate)).Add(float64(len(items)))
	}

	respondJSON(w, http.StatusOK, "POST", "/api/shopping-list/generate", Response{
		Success: true,
		Message: strconv.Itoa(len(items)) + " Artikel zur Einkaufsliste hinzugefügt",
		Data:    items,
	})
}

// RegisterRoutes registers all shopping list routes. The fixed paths must
// come before the {id} routes.
func (h *ItemHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/shopping-list", h.ListItems).Methods("GET")
	router.HandleFunc("/api/shopping-list", h.CreateItem).Methods("POST")
	router.HandleFunc("/api/shopping-list/add-low-stock", h.AddLowStock).Methods("POST")
	router.HandleFunc("/api/shopping-list/generate", h.GenerateTemplate).Methods("POST")
	router.HandleFunc("/api/shopping-list/{id}", h.UpdateItem).Methods("PUT")
	router.HandleFunc("/api/shopping-list/{id}", h.DeleteItem).Methods("DELETE")
}

func track(method, endpoint string, start time.Time) {
	requestLatency.WithLabelValues(method, endpoint).Observe(time.Since(start).Seconds())
}

func respondJSON(w http.ResponseWriter, status int, method, endpoint string, payload interface{}) {
	requestCounter.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
