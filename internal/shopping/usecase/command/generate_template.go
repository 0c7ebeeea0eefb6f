package command

import (
	"fmt"
	"strings"

	inventory "github.com/freshly-app/freshly/internal/inventory/domain"
	"github.com/freshly-app/freshly/internal/shopping/domain"
	"github.com/freshly-app/freshly/internal/taxonomy"
)

// staples is the weekly base template. Order is the order entries appear
// on the generated list.
var staples = []AddItemCommand{
	{Name: "Brot", Category: taxonomy.CategoryGrain, Quantity: 1, Unit: "Stück"},
	{Name: "Milch", Category: taxonomy.CategoryDairy, Quantity: 1, Unit: "Liter"},
	{Name: "Eier", Category: taxonomy.CategoryDairy, Quantity: 10, Unit: "Stück"},
	{Name: "Butter", Category: taxonomy.CategoryDairy, Quantity: 1, Unit: "Stück"},
	{Name: "Äpfel", Category: taxonomy.CategoryFruit, Quantity: 6, Unit: "Stück"},
}

// GenerateTemplateCommand represents the command to generate the staple
// template list.
type GenerateTemplateCommand struct {
	Threshold float64
}

// GenerateTemplateHandler handles the template generation command.
type GenerateTemplateHandler struct {
	shoppingRepo  domain.ItemRepository
	inventoryRepo inventory.ItemRepository
}

// NewGenerateTemplateHandler creates a new template generation handler.
func NewGenerateTemplateHandler(shoppingRepo domain.ItemRepository, inventoryRepo inventory.ItemRepository) *GenerateTemplateHandler {
	return &GenerateTemplateHandler{shoppingRepo: shoppingRepo, inventoryRepo: inventoryRepo}
}

// Handle appends the staple template to the shopping list, skipping
// staples the inventory still holds above the threshold.
func (h *GenerateTemplateHandler) Handle(cmd GenerateTemplateCommand) ([]domain.Item, error) {
	if cmd.Threshold <= 0 {
		cmd.Threshold = DefaultLowStockThreshold
	}
	stock, err := h.inventoryRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory: %w", err)
	}

	stocked := map[string]bool{}
	for _, item := range stock {
		if item.Quantity > cmd.Threshold {
			stocked[strings.ToLower(item.Name)] = true
		}
	}

	drafts := []AddItemCommand{}
	for _, staple := range staples {
		if stocked[strings.ToLower(staple.Name)] {
			continue
		}
		draft := staple
		draft.Priority = domain.PriorityMedium
		draft.Source = domain.SourceTemplate
		draft.Reason = "Wochenvorrat"
		drafts = append(drafts, draft)
	}
	if len(drafts) == 0 {
		return []domain.Item{}, nil
	}

	return NewAddItemsHandler(h.shoppingRepo).Handle(AddItemsCommand{Items: drafts})
}
