//go:build wireinject
// +build wireinject

package shopping

import (
	"github.com/google/wire"

	inventorydomain "github.com/freshly-app/freshly/internal/inventory/domain"
	"github.com/freshly-app/freshly/internal/shopping/delivery/http"
	"github.com/freshly-app/freshly/internal/shopping/domain"
	"github.com/freshly-app/freshly/internal/shopping/repository"
	"github.com/freshly-app/freshly/pkg/storage"
)

// ProvideItemRepository provides the file backed shopping list repository
func ProvideItemRepository(store *storage.Store) domain.ItemRepository {
	return repository.NewFileItemRepository(store)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideItemRepository,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(store *storage.Store, inventoryRepo inventorydomain.ItemRepository) (*http.ItemHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewItemHandler,
	)
	return nil, nil
}
