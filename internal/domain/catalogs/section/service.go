package section

import (
	"context"

	"mercado/internal/core/apperror"
	"mercado/internal/core/tx"
	"mercado/internal/domain"
)

// CascadeWarning is surfaced to the caller before a section is deleted:
// removing a section removes every product that belongs to it.
const CascadeWarning = "all products in this section will be removed"

// Service provides business logic for the Section catalog.
type Service struct {
	*domain.CatalogService[*Section]
}

// NewService creates a new Section service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	return &Service{
		CatalogService: domain.NewCatalogService[*Section](repo, txManager, "section"),
	}
}

// Create inserts a new section. When the insert fails, the cause is
// diagnosed by re-querying the store: a record under the same code means
// duplicate key, anything else stays an opaque store failure.
func (s *Service) Create(ctx context.Context, sec *Section) error {
	err := s.CatalogService.Create(ctx, sec)
	if err == nil {
		return nil
	}
	if apperror.IsValidation(err) {
		return err
	}

	if _, found, ferr := s.Find(ctx, sec.Code); ferr == nil && found {
		return apperror.NewAlreadyExists(s.EntityName(), sec.Code).WithCause(err)
	}
	return s.asStoreFailure(err)
}

// Update replaces the description of an existing section. An empty new
// description keeps the stored one; only non-empty input overwrites it.
func (s *Service) Update(ctx context.Context, code, newDescription string) (*Section, error) {
	sec, err := s.GetByKey(ctx, code)
	if err != nil {
		return nil, err
	}

	if newDescription != "" {
		sec.Description = newDescription
	}

	if err := s.CatalogService.Update(ctx, sec); err != nil {
		if apperror.IsValidation(err) {
			return nil, err
		}
		return nil, s.asStoreFailure(err)
	}
	return sec, nil
}

// Delete removes a section and, through the store-level cascade, all of
// its products. Callers present CascadeWarning beforehand. On failure
// the only diagnosed cause is an absent section; a section that still
// exists after a failed delete is blocked by dependents or a store
// fault.
func (s *Service) Delete(ctx context.Context, code string) error {
	err := s.CatalogService.Delete(ctx, code)
	if err == nil {
		return nil
	}

	if _, found, ferr := s.Find(ctx, code); ferr == nil && !found {
		return apperror.NewNotFound(s.EntityName(), code).WithCause(err)
	}
	return s.asStoreFailure(err)
}

// asStoreFailure keeps structured conflicts intact and wraps everything
// else as an opaque store failure.
func (s *Service) asStoreFailure(err error) error {
	if appErr, ok := apperror.AsAppError(err); ok && appErr.Code == apperror.CodeConflict {
		return appErr
	}
	return apperror.NewStore(err)
}
