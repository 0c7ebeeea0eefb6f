package query

import (
	"github.com/freshly-app/freshly/internal/shopping/domain"
)

// ListItemsHandler handles the shopping list query.
type ListItemsHandler struct {
	repo domain.ItemRepository
}

// NewListItemsHandler creates a new list handler.
func NewListItemsHandler(repo domain.ItemRepository) *ListItemsHandler {
	return &ListItemsHandler{repo: repo}
}

// Handle returns the full shopping list.
func (h *ListItemsHandler) Handle() ([]domain.Item, error) {
	return h.repo.FindAll()
}
