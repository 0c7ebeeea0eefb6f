package repository

import (
	"os"
	"reflect"
	"testing"
	"time"

	"github.com/freshly-app/freshly/internal/inventory/domain"
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

func testItem(id, name string, quantity float64) domain.Item {
	return domain.Item{
		ID:        id,
		Name:      name,
		Category:  "Obst",
		Quantity:  quantity,
		Unit:      "Stück",
		AddedDate: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		Source:    domain.SourceManual,
	}
}

func TestCreateThenFindByID(t *testing.T) {
	repo := newTestRepository(t)

	want := testItem("item-1", "Apfel", 3)
	if err := repo.Create(&want); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.FindByID("item-1")
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if !reflect.DeepEqual(*got, want) {
		t.Errorf("FindByID = %+v, want %+v", *got, want)
	}
}

func TestFindAllIsStableWithoutWrites(t *testing.T) {
	repo := newTestRepository(t)

	if err := repo.CreateBatch([]domain.Item{
		testItem("a", "Apfel", 3),
		testItem("b", "Milch", 1),
	}); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}

	first, err := repo.FindAll()
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	second, err := repo.FindAll()
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("consecutive FindAll calls differ: %+v vs %+v", first, second)
	}
}

func TestFindAllEmptyCollection(t *testing.T) {
	repo := newTestRepository(t)

	items, err := repo.FindAll()
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected empty inventory, got %d items", len(items))
	}
}

func TestFindAllCorruptFile(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if err := os.WriteFile(store.Path(collection), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	repo := NewFileItemRepository(store)
	items, err := repo.FindAll()
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("corrupt file should read as empty, got %d items", len(items))
	}
}

func TestUpdateMergesOnlyProvidedFields(t *testing.T) {
	repo := newTestRepository(t)

	item := testItem("item-1", "Apfel", 3)
	if err := repo.Create(&item); err != nil {
		t.Fatalf("Create: %v", err)
	}

	quantity := 5.0
	got, err := repo.Update("item-1", domain.ItemUpdate{Quantity: &quantity})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Quantity != 5 {
		t.Errorf("Quantity = %v, want 5", got.Quantity)
	}
	if got.Name != "Apfel" || got.Category != "Obst" {
		t.Errorf("untouched fields changed: %+v", got)
	}

	persisted, err := repo.FindByID("item-1")
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if persisted.Quantity != 5 {
		t.Errorf("persisted Quantity = %v, want 5", persisted.Quantity)
	}
}

func TestUpdateUnknownID(t *testing.T) {
	repo := newTestRepository(t)

	name := "Birne"
	if _, err := repo.Update("missing", domain.ItemUpdate{Name: &name}); !IsNotFound(err) {
		t.Errorf("Update err = %v, want not found", err)
	}
}

func TestDeleteReturnsRemovedItem(t *testing.T) {
	repo := newTestRepository(t)

	item := testItem("item-1", "Apfel", 3)
	if err := repo.Create(&item); err != nil {
		t.Fatalf("Create: %v", err)
	}

	removed, err := repo.Delete("item-1")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if removed.Name != "Apfel" {
		t.Errorf("removed.Name = %q, want Apfel", removed.Name)
	}

	if _, err := repo.FindByID("item-1"); !IsNotFound(err) {
		t.Errorf("FindByID after delete err = %v, want not found", err)
	}
}

func TestDeleteUnknownID(t *testing.T) {
	repo := newTestRepository(t)

	if _, err := repo.Delete("missing"); !IsNotFound(err) {
		t.Errorf("Delete err = %v, want not found", err)
	}
}
