// Package domaintest provides in-memory fakes for service tests.
package domaintest

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"mercado/internal/core/apperror"
	"mercado/internal/domain"
)

// FakeRepo is an in-memory CatalogRepository. It mirrors the store
// contract of the real repositories: opaque store errors on failed
// writes, NOT_FOUND on absent keys, and allow-listed sorting.
type FakeRepo[T domain.Keyed] struct {
	mu      sync.Mutex
	items   map[string]T
	columns []string
	sortKey func(T, string) string

	// FailNext, when set, makes the next write fail with an opaque
	// store error. Used to drive the failure-diagnosis paths.
	FailNext bool
}

// NewFakeRepo creates a fake with the given sortable columns. sortKey
// extracts the sort value of an entity for a column.
func NewFakeRepo[T domain.Keyed](columns []string, sortKey func(T, string) string) *FakeRepo[T] {
	return &FakeRepo[T]{
		items:   make(map[string]T),
		columns: columns,
		sortKey: sortKey,
	}
}

// Seed inserts entities directly, bypassing the store contract.
func (r *FakeRepo[T]) Seed(items ...T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range items {
		r.items[it.Key()] = it
	}
}

// Len reports the number of stored entities.
func (r *FakeRepo[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

func (r *FakeRepo[T]) takeFailure() bool {
	if r.FailNext {
		r.FailNext = false
		return true
	}
	return false
}

// Create implements domain.CatalogRepository. A duplicate key fails
// with an opaque store error, as the real store does.
func (r *FakeRepo[T]) Create(ctx context.Context, entity T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.takeFailure() {
		return apperror.NewStore(fmt.Errorf("induced failure"))
	}
	if _, ok := r.items[entity.Key()]; ok {
		return apperror.NewStore(fmt.Errorf("duplicate key %q", entity.Key()))
	}
	r.items[entity.Key()] = entity
	return nil
}

// GetByKey implements domain.CatalogRepository.
func (r *FakeRepo[T]) GetByKey(ctx context.Context, key string) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entity, ok := r.items[key]
	if !ok {
		var zero T
		return zero, apperror.NewNotFound("record", key)
	}
	return entity, nil
}

// Update implements domain.CatalogRepository.
func (r *FakeRepo[T]) Update(ctx context.Context, entity T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.takeFailure() {
		return apperror.NewStore(fmt.Errorf("induced failure"))
	}
	if _, ok := r.items[entity.Key()]; !ok {
		return apperror.NewNotFound("record", entity.Key())
	}
	r.items[entity.Key()] = entity
	return nil
}

// Delete implements domain.CatalogRepository.
func (r *FakeRepo[T]) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.takeFailure() {
		return apperror.NewStore(fmt.Errorf("induced failure"))
	}
	if _, ok := r.items[key]; !ok {
		return apperror.NewNotFound("record", key)
	}
	delete(r.items, key)
	return nil
}

// ListAll implements domain.CatalogRepository.
func (r *FakeRepo[T]) ListAll(ctx context.Context) ([]T, error) {
	return r.ListSorted(ctx, r.columns[0])
}

// ListSorted implements domain.CatalogRepository, rejecting columns
// outside the allow-list before any lookup.
func (r *FakeRepo[T]) ListSorted(ctx context.Context, orderBy string) ([]T, error) {
	allowed := false
	for _, c := range r.columns {
		if c == orderBy {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, apperror.NewValidation(fmt.Sprintf("cannot sort by %q", orderBy))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]T, 0, len(r.items))
	for _, it := range r.items {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool {
		return r.sortKey(out[i], orderBy) < r.sortKey(out[j], orderBy)
	})
	return out, nil
}

// Exists implements domain.CatalogRepository.
func (r *FakeRepo[T]) Exists(ctx context.Context, key string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.items[key]
	return ok, nil
}

// FakeTxManager runs the callback directly, with no store behind it.
type FakeTxManager struct{}

// RunInTransaction implements tx.Manager.
func (FakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
