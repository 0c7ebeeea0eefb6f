package command

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/freshly-app/freshly/internal/shopping/domain"
	"github.com/freshly-app/freshly/internal/taxonomy"
)

// AddItemCommand represents one shopping list draft.
type AddItemCommand struct {
	Name     string
	Category string
	Quantity float64
	Unit     string
	Priority domain.Priority
	Source   domain.Source
	Reason   string
}

// AddItemsCommand represents the command to append drafts to the list.
type AddItemsCommand struct {
	Items []AddItemCommand
}

// AddItemsHandler handles the add items command.
type AddItemsHandler struct {
	repo domain.ItemRepository
}

// NewAddItemsHandler creates a new add items handler.
func NewAddItemsHandler(repo domain.ItemRepository) *AddItemsHandler {
	return &AddItemsHandler{repo: repo}
}

// Handle assigns id, added date and completed=false per draft and appends
// them in one write.
func (h *AddItemsHandler) Handle(cmd AddItemsCommand) ([]domain.Item, error) {
	items := make([]domain.Item, 0, len(cmd.Items))
	for _, draft := range cmd.Items {
		item, err := buildItem(draft)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	if err := h.repo.CreateBatch(items); err != nil {
		return nil, fmt.Errorf("failed to add shopping items: %w", err)
	}
	return items, nil
}

func buildItem(cmd AddItemCommand) (*domain.Item, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	item := &domain.Item{
		ID:        uuid.NewString(),
		Name:      cmd.Name,
		Category:  cmd.Category,
		Quantity:  cmd.Quantity,
		Unit:      cmd.Unit,
		Priority:  cmd.Priority,
		Completed: false,
		AddedDate: time.Now(),
		Source:    cmd.Source,
		Reason:    cmd.Reason,
	}
	if item.Quantity <= 0 {
		item.Quantity = 1
	}
	if item.Category == "" {
		item.Category = taxonomy.CategoryOther
	}
	if item.Unit == "" {
		item.Unit = taxonomy.DefaultUnit
	}
	if item.Priority == "" {
		item.Priority = domain.PriorityMedium
	}
	if item.Source == "" {
		item.Source = domain.SourceManual
	}
	return item, nil
}
