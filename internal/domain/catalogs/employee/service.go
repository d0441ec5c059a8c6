package employee

import (
	"context"
	"fmt"

	"mercado/internal/core/apperror"
	"mercado/internal/core/tx"
	"mercado/internal/domain"
	"mercado/internal/domain/catalogs/section"
)

// Service provides business logic for the Employee catalog.
type Service struct {
	*domain.CatalogService[*Employee]
	sections section.Repository
}

// NewService creates a new Employee service.
func NewService(repo Repository, sections section.Repository, txManager tx.Manager) *Service {
	return &Service{
		CatalogService: domain.NewCatalogService[*Employee](repo, txManager, "employee"),
		sections:       sections,
	}
}

// Create inserts a new employee. Unlike the product path, both guard
// checks run eagerly before any insert is attempted: a taken code and an
// unresolvable section each end the operation early.
func (s *Service) Create(ctx context.Context, e *Employee) error {
	if err := e.Validate(ctx); err != nil {
		return err
	}

	if _, found, ferr := s.Find(ctx, e.Code); ferr != nil {
		return ferr
	} else if found {
		return apperror.NewAlreadyExists(s.EntityName(), e.Code)
	}

	if exists, err := s.sections.Exists(ctx, e.SectionCode); err != nil {
		return apperror.NewStore(err)
	} else if !exists {
		return apperror.NewReferenceMissing(s.EntityName(), "section", e.SectionCode)
	}

	if err := s.CatalogService.Create(ctx, e); err != nil {
		if apperror.IsValidation(err) {
			return err
		}
		return apperror.NewStore(err)
	}
	return nil
}

// UpdateInput carries the new field values for an employee update.
// Name and SectionCode use the empty string as the leave-unchanged
// sentinel. AnnualSalary treats zero the same way: zero means "no
// change", not a valid target salary.
type UpdateInput struct {
	Name         string
	AnnualSalary int
	SectionCode  string
}

// UpdateResult is the outcome of an employee update, including warnings
// about fields that were skipped.
type UpdateResult struct {
	Employee *Employee
	Warnings []string
}

// Update applies a partial update to an existing employee. A supplied
// section code that does not resolve leaves the section unchanged and
// adds an explicit warning to the result immediately. It is the one
// field whose skip is reported to the caller rather than silently
// absorbed.
func (s *Service) Update(ctx context.Context, code string, in UpdateInput) (*UpdateResult, error) {
	e, err := s.GetByKey(ctx, code)
	if err != nil {
		return nil, err
	}

	res := &UpdateResult{Employee: e}

	if in.Name != "" {
		e.Name = in.Name
	}
	if in.AnnualSalary != 0 {
		e.AnnualSalary = in.AnnualSalary
	}
	if in.SectionCode != "" {
		if exists, serr := s.sections.Exists(ctx, in.SectionCode); serr == nil && exists {
			e.SectionCode = in.SectionCode
		} else {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("section %s does not exist; employee section left unchanged", in.SectionCode))
		}
	}

	if err := s.CatalogService.Update(ctx, e); err != nil {
		if apperror.IsValidation(err) {
			return nil, err
		}
		return nil, apperror.NewStore(err)
	}
	return res, nil
}

// Delete removes an employee. On failure an absent employee is the only
// attributable cause; anything else is reported as a possible
// referential-integrity or store failure.
func (s *Service) Delete(ctx context.Context, code string) error {
	err := s.CatalogService.Delete(ctx, code)
	if err == nil {
		return nil
	}

	if _, found, ferr := s.Find(ctx, code); ferr == nil && !found {
		return apperror.NewNotFound(s.EntityName(), code).WithCause(err)
	}
	return apperror.NewStore(err).WithDetail("hint", "possible referential-integrity violation")
}

// List retrieves employees, optionally restricted to one section.
// Employees without a resolvable section are skipped by the filter but
// kept in the unfiltered listing; display layers render their section
// as N/A.
func (s *Service) List(ctx context.Context, sectionFilter string) ([]*Employee, error) {
	all, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if sectionFilter == "" {
		return all, nil
	}

	filtered := make([]*Employee, 0, len(all))
	for _, e := range all {
		if e.SectionCode != "" && e.SectionCode == sectionFilter {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}
