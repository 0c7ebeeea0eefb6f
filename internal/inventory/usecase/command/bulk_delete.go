package command

import (
	"errors"
	"fmt"

	"github.com/freshly-app/freshly/internal/inventory/domain"
)

// BulkDeleteCommand represents the command to delete multiple items.
type BulkDeleteCommand struct {
	IDs []string
}

// BulkDeleteResult separates deleted ids from ids that were not present.
type BulkDeleteResult struct {
	DeletedItems  []string `json:"deletedItems"`
	NotFoundItems []string `json:"notFoundItems,omitempty"`
}

// BulkDeleteHandler handles the bulk delete command.
type BulkDeleteHandler struct {
	repo domain.ItemRepository
}

// NewBulkDeleteHandler creates a new bulk delete handler.
func NewBulkDeleteHandler(repo domain.ItemRepository) *BulkDeleteHandler {
	return &BulkDeleteHandler{repo: repo}
}

// Handle deletes every id it can find. Missing ids are collected rather
// than failing the whole batch.
func (h *BulkDeleteHandler) Handle(cmd BulkDeleteCommand) (*BulkDeleteResult, error) {
	if len(cmd.IDs) == 0 {
		return nil, fmt.Errorf("ids are required")
	}
	result := &BulkDeleteResult{DeletedItems: []string{}}
	for _, id := range cmd.IDs {
		if _, err := h.repo.Delete(id); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				result.NotFoundItems = append(result.NotFoundItems, id)
				continue
			}
			return nil, fmt.Errorf("failed to delete item %s: %w", id, err)
		}
		result.DeletedItems = append(result.DeletedItems, id)
	}
	return result, nil
}
