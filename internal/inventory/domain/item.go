package domain

import (
	"errors"
	"time"
)

// ErrNotFound is reported when an item id does not exist in the
// collection. It is a regular outcome, not a fault.
var ErrNotFound = errors.New("item not found")

// Source identifies how an inventory item entered the collection.
type Source string

const (
	SourceManual Source = "manual"
	SourceVision Source = "vision-detected"
)

// Item is one entry of the household inventory.
type Item struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	Quantity   float64   `json:"quantity"`
	Unit       string    `json:"unit"`
	Emoji      string    `json:"emoji,omitempty"`
	ExpiryDate string    `json:"expiryDate,omitempty"`
	AddedDate  time.Time `json:"addedDate"`
	Confidence *int      `json:"confidence,omitempty"`
	Source     Source    `json:"source"`
}

// ItemUpdate is a partial update; nil fields are left untouched. The merge
// is shallow and unvalidated on purpose.
type ItemUpdate struct {
	Name       *string  `json:"name"`
	Category   *string  `json:"category"`
	Quantity   *float64 `json:"quantity"`
	Unit       *string  `json:"unit"`
	Emoji      *string  `json:"emoji"`
	ExpiryDate *string  `json:"expiryDate"`
	Confidence *int     `json:"confidence"`
	Source     *Source  `json:"source"`
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
	if u.Emoji != nil {
		item.Emoji = *u.Emoji
	}
	if u.ExpiryDate != nil {
		item.ExpiryDate = *u.ExpiryDate
	}
	if u.Confidence != nil {
		item.Confidence = u.Confidence
	}
	if u.Source != nil {
		item.Source = *u.Source
	}
}

// ItemRepository defines the contract for inventory data access.
type ItemRepository interface {
	Create(item *Item) error
	CreateBatch(items []Item) error
	FindAll() ([]Item, error)
	FindByID(id string) (*Item, error)
	Update(id string, update ItemUpdate) (*Item, error)
	Delete(id string) (*Item, error)
}
