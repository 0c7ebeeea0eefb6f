package command

import (
	"fmt"

	"github.com/freshly-app/freshly/internal/inventory/domain"
)

// AddItemsCommand represents the command to add a batch of items, e.g.
// user-confirmed detection candidates.
type AddItemsCommand struct {
	Items []AddItemCommand
}

// AddItemsHandler handles the batch add command.
type AddItemsHandler struct {
	repo domain.ItemRepository
}

// NewAddItemsHandler creates a new batch add handler.
func NewAddItemsHandler(repo domain.ItemRepository) *AddItemsHandler {
	return &AddItemsHandler{repo: repo}
}

// Handle persists the whole batch in one collection write.
func (h *AddItemsHandler) Handle(cmd AddItemsCommand) ([]domain.Item, error) {
	items := make([]domain.Item, 0, len(cmd.Items))
	for _, draft := range cmd.Items {
		item, err := buildItem(draft)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	if len(items) == 0 {
		return items, nil
	}
	if err := h.repo.CreateBatch(items); err != nil {
		return nil, fmt.Errorf("failed to add items: %w", err)
	}
	return items, nil
}
