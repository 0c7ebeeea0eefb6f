package command

import (
	"errors"
	"reflect"
	"testing"

	"github.com/freshly-app/freshly/internal/inventory/domain"
)

type fakeRepository struct {
	items []domain.Item
}

func (r *fakeRepository) Create(item *domain.Item) error {
	r.items = append(r.items, *item)
	return nil
}

func (r *fakeRepository) CreateBatch(items []domain.Item) error {
	r.items = append(r.items, items...)
	return nil
}

func (r *fakeRepository) FindAll() ([]domain.Item, error) {
	return r.items, nil
}

func (r *fakeRepository) FindByID(id string) (*domain.Item, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			item := r.items[i]
			return &item, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeRepository) Update(id string, update domain.ItemUpdate) (*domain.Item, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			update.Apply(&r.items[i])
			item := r.items[i]
			return &item, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeRepository) Delete(id string) (*domain.Item, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			removed := r.items[i]
			r.items = append(r.items[:i], r.items[i+1:]...)
			return &removed, nil
		}
	}
	return nil, domain.ErrNotFound
}

func TestAddItemAppliesDefaults(t *testing.T) {
	repo := &fakeRepository{}
	handler := NewAddItemHandler(repo)

	item, err := handler.Handle(AddItemCommand{Name: "Apfel"})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}

	if item.ID == "" {
		t.Error("expected a generated id")
	}
	if item.AddedDate.IsZero() {
		t.Error("expected a generated added date")
	}
	if item.Quantity != 1 {
		t.Errorf("Quantity = %v, want 1", item.Quantity)
	}
	if item.Unit != "Stück" {
		t.Errorf("Unit = %q, want Stück", item.Unit)
	}
	if item.Emoji != "🍎" {
		t.Errorf("Emoji = %q, want 🍎", item.Emoji)
	}
	if item.Source != domain.SourceManual {
		t.Errorf("Source = %q, want manual", item.Source)
	}
	if len(repo.items) != 1 {
		t.Fatalf("expected 1 persisted item, got %d", len(repo.items))
	}
}

func TestAddItemKeepsProvidedFields(t *testing.T) {
	repo := &fakeRepository{}
	handler := NewAddItemHandler(repo)

	confidence := 92
	item, err := handler.Handle(AddItemCommand{
		Name:       "Milch",
		Category:   "Milchprodukte",
		Quantity:   2,
		Unit:       "Liter",
		ExpiryDate: "2026-09-02",
		Confidence: &confidence,
		Source:     domain.SourceVision,
	})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}

	if item.Quantity != 2 || item.Unit != "Liter" || item.Category != "Milchprodukte" {
		t.Errorf("provided fields were replaced: %+v", item)
	}
	if item.Confidence == nil || *item.Confidence != 92 {
		t.Errorf("Confidence = %v, want 92", item.Confidence)
	}
	if item.Source != domain.SourceVision {
		t.Errorf("Source = %q, want vision-detected", item.Source)
	}
}

func TestAddItemRequiresName(t *testing.T) {
	handler := NewAddItemHandler(&fakeRepository{})

	if _, err := handler.Handle(AddItemCommand{Quantity: 2}); err == nil {
		t.Error("expected an error for a nameless item")
	}
}

func TestAddItemsBatch(t *testing.T) {
	repo := &fakeRepository{}
	handler := NewAddItemsHandler(repo)

	items, err := handler.Handle(AddItemsCommand{Items: []AddItemCommand{
		{Name: "Apfel"},
		{Name: "Brot"},
	}})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ID == items[1].ID {
		t.Error("batch items share an id")
	}
	if len(repo.items) != 2 {
		t.Errorf("expected 2 persisted items, got %d", len(repo.items))
	}
}

func TestUpdateItemUnknownID(t *testing.T) {
	handler := NewUpdateItemHandler(&fakeRepository{})

	name := "Birne"
	_, err := handler.Handle(UpdateItemCommand{ID: "missing", Update: domain.ItemUpdate{Name: &name}})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want not found", err)
	}
}

func TestBulkDeleteCollectsMissingIDs(t *testing.T) {
	repo := &fakeRepository{items: []domain.Item{
		{ID: "a", Name: "Apfel"},
		{ID: "c", Name: "Brot"},
	}}
	handler := NewBulkDeleteHandler(repo)

	result, err := handler.Handle(BulkDeleteCommand{IDs: []string{"a", "b", "c"}})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}

	if !reflect.DeepEqual(result.DeletedItems, []string{"a", "c"}) {
		t.Errorf("DeletedItems = %v, want [a c]", result.DeletedItems)
	}
	if !reflect.DeepEqual(result.NotFoundItems, []string{"b"}) {
		t.Errorf("NotFoundItems = %v, want [b]", result.NotFoundItems)
	}
	if len(repo.items) != 0 {
		t.Errorf("expected empty inventory, got %d items", len(repo.items))
	}
}

func TestBulkDeleteRequiresIDs(t *testing.T) {
	handler := NewBulkDeleteHandler(&fakeRepository{})

	if _, err := handler.Handle(BulkDeleteCommand{}); err == nil {
		t.Error("expected an error for an empty id list")
	}
}
