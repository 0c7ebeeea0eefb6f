package query

import (
	"fmt"

	"github.com/freshly-app/freshly/internal/inventory/domain"
)

// ListItemsHandler handles the list inventory query.
type ListItemsHandler struct {
	repo domain.ItemRepository
}

// NewListItemsHandler creates a new list items handler.
func NewListItemsHandler(repo domain.ItemRepository) *ListItemsHandler {
	return &ListItemsHandler{repo: repo}
}

// Handle returns a snapshot of the full inventory.
func (h *ListItemsHandler) Handle() ([]domain.Item, error) {
	items, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	return items, nil
}
