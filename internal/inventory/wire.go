//go:build wireinject
// +build wireinject

package inventory

import (
	"github.com/google/wire"

	"github.com/freshly-app/freshly/internal/inventory/delivery/http"
	"github.com/freshly-app/freshly/internal/inventory/domain"
	"github.com/freshly-app/freshly/internal/inventory/repository"
	"github.com/freshly-app/freshly/pkg/storage"
)

// ProvideItemRepository provides the file backed inventory repository
func ProvideItemRepository(store *storage.Store) domain.ItemRepository {
	return repository.NewFileItemRepositoryWithTracing(repository.NewFileItemRepository(store))
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideItemRepository,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(store *storage.Store) (*http.ItemHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewItemHandler,
	)
	return nil, nil
}

// InitializeRepository exposes the repository for cross domain consumers
func InitializeRepository(store *storage.Store) (domain.ItemRepository, error) {
	wire.Build(
		RepositorySet,
	)
	return nil, nil
}
