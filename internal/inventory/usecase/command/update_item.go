package command

import (
	"fmt"

	"github.com/freshly-app/freshly/internal/inventory/domain"
)

// UpdateItemCommand represents the command to partially update an item.
type UpdateItemCommand struct {
	ID     string
	Update domain.ItemUpdate
}

// UpdateItemHandler handles the update item command.
type UpdateItemHandler struct {
	repo domain.ItemRepository
}

// NewUpdateItemHandler creates a new update item handler.
func NewUpdateItemHandler(repo domain.ItemRepository) *UpdateItemHandler {
	return &UpdateItemHandler{repo: repo}
}

// Handle merges the non-nil update fields into the stored item. The merge
// is shallow and performs no validation.
func (h *UpdateItemHandler) Handle(cmd UpdateItemCommand) (*domain.Item, error) {
	if cmd.ID == "" {
		return nil, fmt.Errorf("id is required")
	}
	return h.repo.Update(cmd.ID, cmd.Update)
}
