package command

import (
	"fmt"

	"github.com/freshly-app/freshly/internal/inventory/domain"
)

// DeleteItemCommand represents the command to delete one item.
type DeleteItemCommand struct {
	ID string
}

// DeleteItemHandler handles the delete item command.
type DeleteItemHandler struct {
	repo domain.ItemRepository
}

// NewDeleteItemHandler creates a new delete item handler.
func NewDeleteItemHandler(repo domain.ItemRepository) *DeleteItemHandler {
	return &DeleteItemHandler{repo: repo}
}

// Handle removes the item and returns the removed record.
func (h *DeleteItemHandler) Handle(cmd DeleteItemCommand) (*domain.Item, error) {
	if cmd.ID == "" {
		return nil, fmt.Errorf("id is required")
	}
	return h.repo.Delete(cmd.ID)
}
