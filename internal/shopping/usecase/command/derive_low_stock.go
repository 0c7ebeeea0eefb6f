package command

import (
	"fmt"
	"strconv"

	inventory "github.com/freshly-app/freshly/internal/inventory/domain"
	"github.com/freshly-app/freshly/internal/shopping/domain"
	"github.com/freshly-app/freshly/internal/taxonomy"
)

// DefaultLowStockThreshold mirrors the inventory low stock default.
const DefaultLowStockThreshold = 2

// replenishTarget is the stock level the derivation buys back up to.
const replenishTarget = 3

// DeriveLowStockCommand represents the command to turn low stock inventory
// into shopping list entries.
type DeriveLowStockCommand struct {
	Threshold float64
}

// DeriveLowStockHandler handles the low stock derivation command.
type DeriveLowStockHandler struct {
	shoppingRepo  domain.ItemRepository
	inventoryRepo inventory.ItemRepository
}

// NewDeriveLowStockHandler creates a new low stock derivation handler.
func NewDeriveLowStockHandler(shoppingRepo domain.ItemRepository, inventoryRepo inventory.ItemRepository) *DeriveLowStockHandler {
	return &DeriveLowStockHandler{shoppingRepo: shoppingRepo, inventoryRepo: inventoryRepo}
}

// Handle synthesizes one high priority draft per low stock inventory item
// and appends them to the shopping list. Repeated invocations append
// repeated suggestions; the derivation never deduplicates against pending
// entries.
func (h *DeriveLowStockHandler) Handle(cmd DeriveLowStockCommand) ([]domain.Item, error) {
	if cmd.Threshold <= 0 {
		cmd.Threshold = DefaultLowStockThreshold
	}
	stock, err := h.inventoryRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory: %w", err)
	}

	drafts := []AddItemCommand{}
	for _, item := range stock {
		if item.Quantity > cmd.Threshold {
			continue
		}
		drafts = append(drafts, AddItemCommand{
			Name:     item.Name,
			Category: item.Category,
			Quantity: neededQuantity(item.Quantity),
			Unit:     defaultUnit(item.Unit),
			Priority: domain.PriorityHigh,
			Source:   domain.SourceLowStock,
			Reason:   "Wenig Vorrat (" + formatQuantity(item.Quantity) + " vorhanden)",
		})
	}
	if len(drafts) == 0 {
		return []domain.Item{}, nil
	}

	return NewAddItemsHandler(h.shoppingRepo).Handle(AddItemsCommand{Items: drafts})
}

func neededQuantity(current float64) float64 {
	needed := replenishTarget - current
	if needed < 1 {
		return 1
	}
	return needed
}

func defaultUnit(unit string) string {
	if unit == "" {
		return taxonomy.DefaultUnit
	}
	return unit
}

func formatQuantity(quantity float64) string {
	return strconv.FormatFloat(quantity, 'f', -1, 64)
}
