package domain

import (
	"errors"
	"time"
)

// ErrNotFound is reported when a shopping list id does not exist.
var ErrNotFound = errors.New("shopping item not found")

// Priority ranks how urgently an item should be bought.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Source identifies how a shopping list entry was created.
type Source string

const (
	SourceManual   Source = "manual"
	SourceLowStock Source = "low-stock-derived"
	SourceTemplate Source = "template-derived"
)

// Item is one entry of the shopping list. Its id space is independent of
// the inventory id space.
type Item struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Quantity  float64   `json:"quantity"`
	Unit      string    `json:"unit"`
	Priority  Priority  `json:"priority"`
	Completed bool      `json:"completed"`
	AddedDate time.Time `json:"addedDate"`
	Source    Source    `json:"source"`
	Reason    string    `json:"reason,omitempty"`
}

// ItemUpdate is a partial update; nil fields are left untouched. Toggling
// Completed is the common case.
type ItemUpdate struct {
	Name      *string   `json:"name"`
	Category  *string   `json:"category"`
	Quantity  *float64  `json:"quantity"`
	Unit      *string   `json:"unit"`
	Priority  *Priority `json:"priority"`
	Completed *bool     `json:"completed"`
	Reason    *string   `json:"reason"`
}

// Apply merges the update into the item.
func (u ItemUpdate) Apply(item *Item) {
	if u.Name != nil {
		item.Name = *u.Name
	}
	if u.Category != nil {
		item.Category = *u.Category
	}
	if u.Quantity != nil {
		item.Quantity = *u.Quantity
	}
	if u.Unit != nil {
		item.Unit = *u.Unit
	}
	if u.Priority != nil {
		item.Priority = *u.Priority
	}
	if u.Completed != nil {
		item.Completed = *u.Completed
	}
	if u.Reason != nil {
		item.Reason = *u.Reason
	}
}

// ItemRepository defines the contract for shopping list data access.
type ItemRepository interface {
	CreateBatch(items []Item) error
	FindAll() ([]Item, error)
	Update(id string, update ItemUpdate) (*Item, error)
	Delete(id string) (*Item, error)
}
