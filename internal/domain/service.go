package domain

import (
	"context"
	"fmt"

	"mercado/internal/core/apperror"
	"mercado/internal/core/tx"
)

// CatalogService provides the CRUD logic shared by every catalog.
// Entity services embed it and add their own invariants and failure
// diagnosis on top.
type CatalogService[T Entity] struct {
	repo      CatalogRepository[T]
	txManager tx.Manager

	// entityName for error messages
	entityName string
}

// NewCatalogService creates a new catalog service.
func NewCatalogService[T Entity](repo CatalogRepository[T], txManager tx.Manager, entityName string) *CatalogService[T] {
	return &CatalogService[T]{
		repo:       repo,
		txManager:  txManager,
		entityName: entityName,
	}
}

// Repo exposes the underlying repository to embedding services.
func (s *CatalogService[T]) Repo() CatalogRepository[T] {
	return s.repo
}

// EntityName returns the name used in error messages.
func (s *CatalogService[T]) EntityName() string {
	return s.entityName
}

func (s *CatalogService[T]) normalizeValidationErr(err error) error {
	if err == nil {
		return nil
	}
	if apperror.IsAppError(err) {
		return err
	}
	return apperror.NewValidation(err.Error())
}

func (s *CatalogService[T]) normalizeGetErr(err error, key any) error {
	if err == nil {
		return nil
	}
	// Map not-found to this service's entity name, keep other AppErrors.
	if apperror.IsNotFound(err) {
		return apperror.NewNotFound(s.entityName, key)
	}
	if apperror.IsAppError(err) {
		return err
	}
	return apperror.NewInternal(err).WithDetail("entity", s.entityName).WithDetail("key", key)
}

// Create validates the entity and inserts it in a transaction.
// The raw repository error is returned; embedding services diagnose the
// cause with targeted existence checks.
func (s *CatalogService[T]) Create(ctx context.Context, entity T) error {
	if err := entity.Validate(ctx); err != nil {
		return s.normalizeValidationErr(err)
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, entity); err != nil {
			return fmt.Errorf("create %s: %w", s.entityName, err)
		}
		return nil
	})
}

// GetByKey retrieves an entity by primary key.
func (s *CatalogService[T]) GetByKey(ctx context.Context, key string) (T, error) {
	entity, err := s.repo.GetByKey(ctx, key)
	if err != nil {
		return entity, s.normalizeGetErr(err, key)
	}
	return entity, nil
}

// Find retrieves an entity by key, signalling absence without an error.
// This is the point lookup services use for failure diagnosis.
func (s *CatalogService[T]) Find(ctx context.Context, key string) (T, bool, error) {
	entity, err := s.repo.GetByKey(ctx, key)
	if err != nil {
		var zero T
		if apperror.IsNotFound(err) {
			return zero, false, nil
		}
		return zero, false, s.normalizeGetErr(err, key)
	}
	return entity, true, nil
}

// Update validates the entity and overwrites the stored record.
func (s *CatalogService[T]) Update(ctx context.Context, entity T) error {
	if err := entity.Validate(ctx); err != nil {
		return s.normalizeValidationErr(err)
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, entity); err != nil {
			return fmt.Errorf("update %s: %w", s.entityName, err)
		}
		return nil
	})
}

// Delete removes an entity by primary key.
func (s *CatalogService[T]) Delete(ctx context.Context, key string) error {
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Delete(ctx, key); err != nil {
			return fmt.Errorf("delete %s: %w", s.entityName, err)
		}
		return nil
	})
}

// ListAll retrieves every entity, order unspecified.
func (s *CatalogService[T]) ListAll(ctx context.Context) ([]T, error) {
	return s.repo.ListAll(ctx)
}

// ListSorted retrieves every entity ordered by an allow-listed column.
func (s *CatalogService[T]) ListSorted(ctx context.Context, orderBy string) ([]T, error) {
	return s.repo.ListSorted(ctx, orderBy)
}

// Exists checks if an entity with the given key exists.
func (s *CatalogService[T]) Exists(ctx context.Context, key string) (bool, error) {
	return s.repo.Exists(ctx, key)
}
