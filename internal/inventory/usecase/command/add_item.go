package command

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/freshly-app/freshly/internal/inventory/domain"
	"github.com/freshly-app/freshly/internal/taxonomy"
)

// AddItemCommand represents the command to add one inventory item.
type AddItemCommand struct {
	Name       string
	Category   string
	Quantity   float64
	Unit       string
	Emoji      string
	ExpiryDate string
	Confidence *int
	Source     domain.Source
}

// AddItemHandler handles the add item command.
type AddItemHandler struct {
	repo domain.ItemRepository
}

// NewAddItemHandler creates a new add item handler.
func NewAddItemHandler(repo domain.ItemRepository) *AddItemHandler {
	return &AddItemHandler{repo: repo}
}

// Handle assigns id and added date, applies draft defaults and persists
// the item.
func (h *AddItemHandler) Handle(cmd AddItemCommand) (*domain.Item, error) {
	item, err := buildItem(cmd)
	if err != nil {
		return nil, err
	}
	if err := h.repo.Create(item); err != nil {
		return nil, fmt.Errorf("failed to add item: %w", err)
	}
	return item, nil
}

func buildItem(cmd AddItemCommand) (*domain.Item, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	item := &domain.Item{
		ID:         uuid.NewString(),
		Name:       cmd.Name,
		Category:   cmd.Category,
		Quantity:   cmd.Quantity,
		Unit:       cmd.Unit,
		Emoji:      cmd.Emoji,
		ExpiryDate: cmd.ExpiryDate,
		AddedDate:  time.Now(),
		Confidence: cmd.Confidence,
		Source:     cmd.Source,
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
	if item.Emoji == "" {
		item.Emoji = taxonomy.EmojiFor(item.Name, item.Category)
	}
	if item.Source == "" {
		item.Source = domain.SourceManual
	}
	return item, nil
}
