package repository

import (
	"testing"
	"time"

	"github.com/freshly-app/freshly/internal/shopping/domain"
	"github.com/freshly-app/freshly/pkg/storage"
)

func newTestRepository(t *testing.T) *FileItemRepository {
	t.Helper()
	store, err := storage.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return NewFileItemRepository(store)
}

func TestCreateBatchAndFindAll(t *testing.T) {
	repo := newTestRepository(t)

	err := repo.CreateBatch([]domain.Item{
		{ID: "a", Name: "Milch", Quantity: 1, Unit: "Liter", Priority: domain.PriorityHigh, AddedDate: time.Now(), Source: domain.SourceLowStock},
		{ID: "b", Name: "Brot", Quantity: 1, Unit: "Stück", Priority: domain.PriorityMedium, AddedDate: time.Now(), Source: domain.SourceManual},
	})
	if err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}

	items, err := repo.FindAll()
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
}

func TestToggleCompleted(t *testing.T) {
	repo := newTestRepository(t)

	if err := repo.CreateBatch([]domain.Item{{ID: "a", Name: "Milch"}}); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}

	completed := true
	item, err := repo.Update("a", domain.ItemUpdate{Completed: &completed})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !item.Completed {
		t.Error("expected item to be completed")
	}

	items, err := repo.FindAll()
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if !items[0].Completed {
		t.Error("completed flag not persisted")
	}
}

func TestDeleteUnknownID(t *testing.T) {
	repo := newTestRepository(t)

	if _, err := repo.Delete("missing"); !IsNotFound(err) {
		t.Errorf("Delete err = %v, want not found", err)
	}
}
