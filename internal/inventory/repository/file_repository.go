package repository

import (
	"errors"
	"fmt"

	"github.com/freshly-app/freshly/internal/inventory/domain"
	"github.com/freshly-app/freshly/pkg/storage"
)

const collection = "inventory"

// FileItemRepository persists the inventory as one JSON document. Every
// operation reads the full collection, mutates it in memory and writes it
// back; concurrent writers race and the last write wins.
type FileItemRepository struct {
	store *storage.Store
}

func NewFileItemRepository(store *storage.Store) *FileItemRepository {
	return &FileItemRepository{store: store}
}

func (r *FileItemRepository) Create(item *domain.Item) error {
	return r.CreateBatch([]domain.Item{*item})
}

func (r *FileItemRepository) CreateBatch(items []domain.Item) error {
	existing, err := storage.ReadCollection[domain.Item](r.store, collection)
	if err != nil {
		return err
	}
	existing = append(existing, items...)
	if err := storage.WriteCollection(r.store, collection, existing); err != nil {
		return fmt.Errorf("failed to persist inventory: %w", err)
	}
	return nil
}

func (r *FileItemRepository) FindAll() ([]domain.Item, error) {
	return storage.ReadCollection[domain.Item](r.store, collection)
}

func (r *FileItemRepository) FindByID(id string) (*domain.Item, error) {
	items, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			item := items[i]
			return &item, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *FileItemRepository) Update(id string, update domain.ItemUpdate) (*domain.Item, error) {
	items, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID != id {
			continue
		}
		update.Apply(&items[i])
		if err := storage.WriteCollection(r.store, collection, items); err != nil {
			return nil, fmt.Errorf("failed to persist inventory: %w", err)
		}
		item := items[i]
		return &item, nil
	}
	return nil, domain.ErrNotFound
}

func (r *FileItemRepository) Delete(id string) (*domain.Item, error) {
	items, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID != id {
			continue
		}
		removed := items[i]
		items = append(items[:i], items[i+1:]...)
		if err := storage.WriteCollection(r.store, collection, items); err != nil {
			return nil, fmt.Errorf("failed to persist inventory: %w", err)
		}
		return &removed, nil
	}
	return nil, domain.ErrNotFound
}

// IsNotFound reports whether err is the non-exceptional missing-id outcome.
func IsNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
