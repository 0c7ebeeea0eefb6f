package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/freshly-app/freshly/internal/inventory/domain"
)

var tracer = otel.Tracer("inventory-repository")

// FileItemRepositoryWithTracing wraps FileItemRepository with tracing.
type FileItemRepositoryWithTracing struct {
	*FileItemRepository
}

// NewFileItemRepositoryWithTracing creates a new repository with tracing.
func NewFileItemRepositoryWithTracing(inner *FileItemRepository) *FileItemRepositoryWithTracing {
	return &FileItemRepositoryWithTracing{FileItemRepository: inner}
}

// CreateWithContext persists an item under a span.
func (r *FileItemRepositoryWithTracing) CreateWithContext(ctx context.Context, item *domain.Item) error {
	_, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("item.name", item.Name),
			attribute.String("item.category", item.Category),
			attribute.Float64("item.quantity", item.Quantity),
		),
	)
	defer span.End()

	err := r.FileItemRepository.Create(item)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.String("item.id", item.ID))
	return nil
}

// FindAllWithContext lists the collection under a span.
func (r *FileItemRepositoryWithTracing) FindAllWithContext(ctx context.Context) ([]domain.Item, error) {
	_, span := tracer.Start(ctx, "repository.FindAll")
	defer span.End()

	items, err := r.FileItemRepository.FindAll()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("item.count", len(items)))
	return items, nil
}

// DeleteWithContext removes an item under a span.
func (r *FileItemRepositoryWithTracing) DeleteWithContext(ctx context.Context, id string) (*domain.Item, error) {
	_, span := tracer.Start(ctx, "repository.Delete",
		trace.WithAttributes(attribute.String("item.id", id)),
	)
	defer span.End()

	removed, err := r.FileItemRepository.Delete(id)
	if err != nil {
		if !IsNotFound(err) {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		return nil, err
	}
	return removed, nil
}
