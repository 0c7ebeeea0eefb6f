package command

import (
	"github.com/freshly-app/freshly/internal/shopping/domain"
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
	return h.repo.Delete(cmd.ID)
}
