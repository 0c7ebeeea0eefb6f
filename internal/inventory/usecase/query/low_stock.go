package query

import (
	"fmt"

	"github.com/freshly-app/freshly/internal/inventory/domain"
)

// DefaultLowStockThreshold marks items running out when two or fewer are
// left.
const DefaultLowStockThreshold = 2

// LowStockQuery represents the query for items at or below a quantity
// threshold.
type LowStockQuery struct {
	Threshold float64
}

// LowStockHandler handles the low stock query.
type LowStockHandler struct {
	repo domain.ItemRepository
}

// NewLowStockHandler creates a new low stock handler.
func NewLowStockHandler(repo domain.ItemRepository) *LowStockHandler {
	return &LowStockHandler{repo: repo}
}

// Handle returns every item with quantity at or below the threshold.
func (h *LowStockHandler) Handle(query LowStockQuery) ([]domain.Item, error) {
	if query.Threshold <= 0 {
		query.Threshold = DefaultLowStockThreshold
	}
	items, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to query low stock: %w", err)
	}
	lowStock := []domain.Item{}
	for _, item := range items {
		if item.Quantity <= query.Threshold {
			lowStock = append(lowStock, item)
		}
	}
	return lowStock, nil
}
