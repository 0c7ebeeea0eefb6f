package repository

import (
	"errors"
	"fmt"

	"github.com/freshly-app/freshly/internal/shopping/domain"
	"github.com/freshly-app/freshly/pkg/storage"
)

const collection = "shopping-list"

// FileItemRepository persists the shopping list as one JSON document,
// rewritten in full on every mutation.
type FileItemRepository struct {
	store *storage.Store
}

func NewFileItemRepository(store *storage.Store) *FileItemRepository {
	return &FileItemRepository{store: store}
}

func (r *FileItemRepository) CreateBatch(items []domain.Item) error {
	existing, err := storage.ReadCollection[domain.Item](r.store, collection)
	if err != nil {
		return err
	}
	existing = append(existing, items...)
	if err := storage.WriteCollection(r.store, collection, existing); err != nil {
		return fmt.Errorf("failed to persist shopping list: %w", err)
	}
	return nil
}

func (r *FileItemRepository) FindAll() ([]domain.Item, error) {
	return storage.ReadCollection[domain.Item](r.store, collection)
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
			return nil, fmt.Errorf("failed to persist shopping list: %w", err)
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
			return nil, fmt.Errorf("failed to persist shopping list: %w", err)
		}
		return &removed, nil
	}
	return nil, domain.ErrNotFound
}

// IsNotFound reports whether err is the non-exceptional missing-id outcome.
func IsNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
