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

	"github.com/freshly-app/freshly/internal/inventory/domain"
	"github.com/freshly-app/freshly/internal/inventory/usecase/command"
	"github.com/freshly-app/freshly/internal/inventory/usecase/query"
	"github.com/freshly-app/freshly/pkg/logger"
)

var (
	requestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_requests_total",
			Help: "Total number of requests to the inventory endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)
	requestLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inventory_request_duration_seconds",
			Help:    "Duration of inventory requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
	inventorySize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "inventory_items",
			Help: "Number of items currently in the inventory",
		},
	)
)

// ItemHandler handles HTTP requests for the inventory.
type ItemHandler struct {
	// Command handlers
	addHandler        *command.AddItemHandler
	addBatchHandler   *command.AddItemsHandler
	updateHandler     *command.UpdateItemHandler
	deleteHandler     *command.DeleteItemHandler
	bulkDeleteHandler *command.BulkDeleteHandler

	// Query handlers
	listHandler     *query.ListItemsHandler
	lowStockHandler *query.LowStockHandler
	expiringHandler *query.ExpiringHandler
}

// NewItemHandler creates a new inventory handler.
func NewItemHandler(repo domain.ItemRepository) *ItemHandler {
	return &ItemHandler{
		addHandler:        command.NewAddItemHandler(repo),
		addBatchHandler:   command.NewAddItemsHandler(repo),
		updateHandler:     command.NewUpdateItemHandler(repo),
		deleteHandler:     command.NewDeleteItemHandler(repo),
		bulkDeleteHandler: command.NewBulkDeleteHandler(repo),
		listHandler:       query.NewListItemsHandler(repo),
		lowStockHandler:   query.NewLowStockHandler(repo),
		expiringHandler:   query.NewExpiringHandler(repo),
	}
}

// Response is the JSON envelope for all inventory endpoints.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type itemRequest struct {
	Name       string        `json:"name"`
	Category   string        `json:"category"`
	Quantity   float64       `json:"quantity"`
	Unit       string        `json:"unit"`
	Emoji      string        `json:"emoji"`
	ExpiryDate string        `json:"expiryDate"`
	Confidence *int          `json:"confidence"`
	Source     domain.Source `json:"source"`
}

func (r itemRequest) toCommand() command.AddItemCommand {
	return command.AddItemCommand{
		Name:       r.Name,
		Category:   r.Category,
		Quantity:   r.Quantity,
		Unit:       r.Unit,
		Emoji:      r.Emoji,
		ExpiryDate: r.ExpiryDate,
		Confidence: r.Confidence,
		Source:     r.Source,
	}
}

// ListItems handles GET /api/inventory
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	defer track("GET", "/api/inventory", time.Now())

	items, err := h.listHandler.Handle()
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list inventory")
		respondJSON(w, http.StatusInternalServerError, "GET", "/api/inventory", Response{
			Success: false,
			Error:   "Failed to list inventory",
		})
		return
	}
	inventorySize.Set(float64(len(items)))

	respondJSON(w, http.StatusOK, "GET", "/api/inventory", Response{
		Success: true,
		Data:    items,
	})
}

// CreateItem handles POST /api/inventory
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	defer track("POST", "/api/inventory", time.Now())

	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, "POST", "/api/inventory", Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	item, err := h.addHandler.Handle(req.toCommand())
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to add item")
		respondJSON(w, http.StatusBadRequest, "POST", "/api/inventory", Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusCreated, "POST", "/api/inventory", Response{
		Success: true,
		Message: "Item added successfully",
		Data:    item,
	})
}

// CreateItems handles POST /api/inventory/batch, the confirmation step for
// detection candidates.
func (h *ItemHandler) CreateItems(w http.ResponseWriter, r *http.Request) {
	defer track("POST", "/api/inventory/batch", time.Now())

	var req struct {
		Items []itemRequest `json:"items"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, "POST", "/api/inventory/batch", Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.AddItemsCommand{}
	for _, item := range req.Items {
		cmd.Items = append(cmd.Items, item.toCommand())
	}

	items, err := h.addBatchHandler.Handle(cmd)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to add items")
		respondJSON(w, http.StatusBadRequest, "POST", "/api/inventory/batch", Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusCreated, "POST", "/api/inventory/batch", Response{
		Success: true,
		Message: "Items added successfully",
		Data:    items,
	})
}

// UpdateItem handles PUT /api/inventory/{id}
func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	defer track("PUT", "/api/inventory/{id}", time.Now())

	var update domain.ItemUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		respondJSON(w, http.StatusBadRequest, "PUT", "/api/inventory/{id}", Response{
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
			respondJSON(w, http.StatusNotFound, "PUT", "/api/inventory/{id}", Response{
				Success: false,
				Error:   "Item not found",
			})
			return
		}
		logger.Error(r.Context()).Err(err).Msg("Failed to update item")
		respondJSON(w, http.StatusInternalServerError, "PUT", "/api/inventory/{id}", Response{
			Success: false,
			Error:   "Failed to update item",
		})
		return
	}

	respondJSON(w, http.StatusOK, "PUT", "/api/inventory/{id}", Response{
		Success: true,
		Message: "Item updated successfully",
		Data:    item,
	})
}

// BulkDeleteItems handles DELETE /api/inventory/bulk
func (h *ItemHandler) BulkDeleteItems(w http.ResponseWriter, r *http.Request) {
	defer track("DELETE", "/api/inventory/bulk", time.Now())

	var req struct {
		ItemIDs []string `json:"itemIds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.ItemIDs) == 0 {
		respondJSON(w, http.StatusBadRequest, "DELETE", "/api/inventory/bulk", Response{
			Success: false,
			Error:   "itemIds array is required",
		})
		return
	}

	result, err := h.bulkDeleteHandler.Handle(command.BulkDeleteCommand{IDs: req.ItemIDs})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to bulk delete items")
		respondJSON(w, http.StatusInternalServerError, "DELETE", "/api/inventory/bulk", Response{
			Success: false,
			Error:   "Failed to bulk delete items",
		})
		return
	}

	respondJSON(w, http.StatusOK, "DELETE", "/api/inventory/bulk", Response{
		Success: true,
		Message: "Deleted " + strconv.Itoa(len(result.DeletedItems)) + " items",
		Data:    result,
	})
}

// DeleteItem handles DELETE /api/inventory/{id}
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	defer track("DELETE", "/api/inventory/{id}", time.Now())

	item, err := h.deleteHandler.Handle(command.DeleteItemCommand{ID: mux.Vars(r)["id"]})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondJSON(w, http.StatusNotFound, "DELETE", "/api/inventory/{id}", Response{
				Success: false,
				Error:   "Item not found",
			})
			return
		}
		logger.Error(r.Context()).Err(err).Msg("Failed to delete item")
		respondJSON(w, http.StatusInternalServerError, "DELETE", "/api/inventory/{id}", Response{
			Success: false,
			Error:   "Failed to delete item",
		})
		return
	}

	respondJSON(w, http.StatusOK, "DELETE", "/api/inventory/{id}", Response{
		Success: true,
		Message: "Item deleted successfully",
		Data:    item,
	})
}

// LowStockItems handles GET /api/inventory/low-stock
func (h *ItemHandler) LowStockItems(w http.ResponseWriter, r *http.Request) {
	defer track("GET", "/api/inventory/low-stock", time.Now())

	threshold, _ := strconv.ParseFloat(r.URL.Query().Get("threshold"), 64)
	items, err := h.lowStockHandler.Handle(query.LowStockQuery{Threshold: threshold})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to query low stock")
		respondJSON(w, http.StatusInternalServerError, "GET", "/api/inventory/low-stock", Response{
			Success: false,
			Error:   "Failed to query low stock",
		})
		return
	}

	respondJSON(w, http.StatusOK, "GET", "/api/inventory/low-stock", Response{
		Success: true,
		Data:    items,
	})
}

// ExpiringItems handles GET /api/inventory/expiring
func (h *ItemHandler) ExpiringItems(w http.ResponseWriter, r *http.Request) {
	defer track("GET", "/api/inventory/expiring", time.Now())

	days, _ := strconv.Atoi(r.URL.Query().Get("days"))
	items, err := h.expiringHandler.Handle(query.ExpiringQuery{WithinDays: days})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to query expiring items")
		respondJSON(w, http.StatusInternalServerError, "GET", "/api/inventory/expiring", Response{
			Success: false,
			Error:   "Failed to query expiring items",
		})
		return
	}

	respondJSON(w, http.StatusOK, "GET", "/api/inventory/expiring", Response{
		Success: true,
		Data:    items,
	})
}

// RegisterRoutes registers all inventory routes. The bulk route must come
// before the {id} route.
func (h *ItemHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/inventory", h.ListItems).Methods("GET")
	router.HandleFunc("/api/inventory", h.CreateItem).Methods("POST")
	router.HandleFunc("/api/inventory/batch", h.CreateItems).Methods("POST")
	router.HandleFunc("/api/inventory/low-stock", h.LowStockItems).Methods("GET")
	router.HandleFunc("/api/inventory/expiring", h.ExpiringItems).Methods("GET")
	router.HandleFunc("/api/inventory/bulk", h.BulkDeleteItems).Methods("DELETE")
	router.HandleFunc("/api/inventory/{id}", h.UpdateItem).Methods("PUT")
	router.HandleFunc("/api/inventory/{id}", h.DeleteItem).Methods("DELETE")
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
