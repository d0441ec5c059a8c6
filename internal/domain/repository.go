// Package domain provides core business logic interfaces and types.
package domain

import (
	"context"
)

// Keyed is implemented by every persisted entity. Identity is the
// primary key alone; two records with the same key are the same entity.
type Keyed interface {
	// Key returns the primary key value.
	Key() string
}

// Entity extends Keyed with self-validation of internal invariants
// (no database access).
type Entity interface {
	Keyed

	// Validate checks entity invariants.
	// Returns nil if valid, AppError with details otherwise.
	Validate(ctx context.Context) error
}

// CatalogRepository defines CRUD operations for one entity type.
// It carries no entity-specific logic; all invariant enforcement and
// failure diagnosis lives in the services one layer up.
type CatalogRepository[T Keyed] interface {
	// Create inserts a new entity. Fails on duplicate key, missing
	// reference or store fault; the cause is not classified here.
	Create(ctx context.Context, entity T) error

	// GetByKey retrieves an entity by primary key (NOT_FOUND if absent).
	GetByKey(ctx context.Context, key string) (T, error)

	// Update overwrites the stored record with the entity's full state.
	// NOT_FOUND if no row with that key exists.
	Update(ctx context.Context, entity T) error

	// Delete removes an entity by primary key. NOT_FOUND if absent;
	// CONFLICT when dependent rows block removal.
	Delete(ctx context.Context, key string) error

	// ListAll performs a full scan. Order is not guaranteed; callers
	// apply their own sort or filter for display.
	ListAll(ctx context.Context) ([]T, error)

	// ListSorted performs a full scan ordered by the given column.
	// The column must belong to the entity's allow-list; anything else
	// is rejected before any SQL is built.
	ListSorted(ctx context.Context, orderBy string) ([]T, error)

	// Exists checks if an entity with the given key exists.
	Exists(ctx context.Context, key string) (bool, error)
}
