package product

import (
	"context"

	"github.com/shopspring/decimal"

	"mercado/internal/core/apperror"
	"mercado/internal/core/tx"
	"mercado/internal/domain"
	"mercado/internal/domain/catalogs/section"
)

// Service provides business logic for the Product catalog.
type Service struct {
	*domain.CatalogService[*Product]
	sections section.Repository
}

// NewService creates a new Product service.
func NewService(repo Repository, sections section.Repository, txManager tx.Manager) *Service {
	return &Service{
		CatalogService: domain.NewCatalogService[*Product](repo, txManager, "product"),
		sections:       sections,
	}
}

// Create inserts a new product. The section reference is not checked up
// front: the insert is attempted as-is and, when it fails, the cause is
// attributed afterwards by two independent checks. The product may
// already exist AND the section may be missing, and both are reported.
func (s *Service) Create(ctx context.Context, p *Product) error {
	err := s.CatalogService.Create(ctx, p)
	if err == nil {
		return nil
	}
	if apperror.IsValidation(err) {
		return err
	}

	var diag *apperror.AppError

	if _, found, ferr := s.Find(ctx, p.Code); ferr == nil && found {
		diag = apperror.NewAlreadyExists(s.EntityName(), p.Code)
	}
	if missing := s.sectionMissing(ctx, p.SectionCode); missing {
		if diag == nil {
			diag = apperror.NewReferenceMissing(s.EntityName(), "section", p.SectionCode)
		} else {
			diag = diag.WithDetail("missing_section", p.SectionCode)
		}
	}

	if diag != nil {
		return diag.WithCause(err)
	}
	return apperror.NewStore(err)
}

// UpdateInput carries the new field values for a product update.
// Description and SectionCode use the empty string as the leave-unchanged
// sentinel; Price and Stock always overwrite the stored values.
type UpdateInput struct {
	Description string
	Price       decimal.Decimal
	Stock       int
	SectionCode string
}

// Update applies a partial update to an existing product. A missing
// product is terminal. The section is swapped only when a non-empty code
// is supplied and that section resolves; an unresolvable code leaves the
// section unchanged without a warning, and is attributed only if the
// subsequent write fails.
func (s *Service) Update(ctx context.Context, code string, in UpdateInput) (*Product, error) {
	p, err := s.GetByKey(ctx, code)
	if err != nil {
		return nil, err
	}

	if in.Description != "" {
		p.Description = in.Description
	}
	p.Price = in.Price
	p.Stock = in.Stock

	if in.SectionCode != "" {
		if sec, serr := s.sections.GetByKey(ctx, in.SectionCode); serr == nil {
			p.SectionCode = sec.Code
		}
	}

	if err := s.CatalogService.Update(ctx, p); err != nil {
		if apperror.IsValidation(err) {
			return nil, err
		}
		if in.SectionCode != "" && s.sectionMissing(ctx, in.SectionCode) {
			return nil, apperror.NewReferenceMissing(s.EntityName(), "section", in.SectionCode).WithCause(err)
		}
		return nil, apperror.NewStore(err)
	}
	return p, nil
}

// Delete removes a product, diagnosing an absent product on failure.
func (s *Service) Delete(ctx context.Context, code string) error {
	err := s.CatalogService.Delete(ctx, code)
	if err == nil {
		return nil
	}

	if _, found, ferr := s.Find(ctx, code); ferr == nil && !found {
		return apperror.NewNotFound(s.EntityName(), code).WithCause(err)
	}
	return apperror.NewStore(err)
}

// List retrieves products, optionally restricted to one section. The
// filter is applied here over a full scan; an empty filter means no
// filtering, not "match the empty code".
func (s *Service) List(ctx context.Context, sectionFilter string) ([]*Product, error) {
	all, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if sectionFilter == "" {
		return all, nil
	}

	filtered := make([]*Product, 0, len(all))
	for _, p := range all {
		if p.SectionCode == sectionFilter {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (s *Service) sectionMissing(ctx context.Context, sectionCode string) bool {
	exists, err := s.sections.Exists(ctx, sectionCode)
	return err == nil && !exists
}
