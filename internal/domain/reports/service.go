package reports

import (
	"context"

	"github.com/shopspring/decimal"

	"mercado/internal/core/apperror"
	"mercado/internal/core/tx"
	"mercado/internal/domain/catalogs/employee"
	"mercado/internal/domain/catalogs/product"
	"mercado/internal/domain/catalogs/section"
)

// Service hosts the aggregate report operations.
type Service struct {
	repo      Repository
	sections  section.Repository
	products  product.Repository
	employees employee.Repository
	txManager tx.Manager
}

// NewService creates a new reports service.
func NewService(
	repo Repository,
	sections section.Repository,
	products product.Repository,
	employees employee.Repository,
	txManager tx.Manager,
) *Service {
	return &Service{
		repo:      repo,
		sections:  sections,
		products:  products,
		employees: employees,
		txManager: txManager,
	}
}

// StockValuation computes the total stock value (price * stock), for the
// whole catalog or for one section. A non-empty section must exist.
// An absent aggregate (empty section or empty catalog) is reported as
// HasProducts=false rather than a zero total.
func (s *Service) StockValuation(ctx context.Context, sectionCode string) (*StockValuation, error) {
	result := &StockValuation{SectionCode: sectionCode}

	if sectionCode != "" {
		sec, err := s.sections.GetByKey(ctx, sectionCode)
		if err != nil {
			if apperror.IsNotFound(err) {
				return nil, apperror.NewNotFound("section", sectionCode)
			}
			return nil, apperror.NewStore(err)
		}
		result.SectionDescription = sec.Description
	}

	value, err := s.repo.StockValue(ctx, sectionCode)
	if err != nil {
		return nil, apperror.NewStore(err)
	}

	if value.Valid {
		result.Total = value.Decimal
		result.HasProducts = true
	}
	return result, nil
}

// RaiseSectionPrices raises every product price of a section by the
// given percentage in one bulk statement. The percentage is applied
// as-is; there is no lower-bound check on the price path. A section
// with no products yields an EMPTY_SECTION soft failure.
func (s *Service) RaiseSectionPrices(ctx context.Context, sectionCode string, percent decimal.Decimal) (*RaiseResult, error) {
	sec, err := s.mustSection(ctx, sectionCode)
	if err != nil {
		return nil, err
	}

	var affected int64
	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		var rerr error
		affected, rerr = s.repo.RaisePrices(ctx, sectionCode, percent)
		return rerr
	})
	if err != nil {
		return nil, apperror.NewStore(err)
	}

	result := &RaiseResult{
		SectionCode:        sectionCode,
		SectionDescription: sec.Description,
		Percent:            percent,
		Affected:           affected,
	}
	if affected == 0 {
		return result, apperror.NewEmptySection(sectionCode, "products")
	}
	return result, nil
}

// RaiseSectionSalaries raises every annual salary of a section by the
// given percentage. Unlike the price path, the percentage must be
// strictly positive.
func (s *Service) RaiseSectionSalaries(ctx context.Context, sectionCode string, percent decimal.Decimal) (*RaiseResult, error) {
	sec, err := s.mustSection(ctx, sectionCode)
	if err != nil {
		return nil, err
	}

	if !percent.IsPositive() {
		return nil, apperror.NewValidation("raise percentage must be positive").
			WithDetail("percent", percent.String())
	}

	var affected int64
	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		var rerr error
		affected, rerr = s.repo.RaiseSalaries(ctx, sectionCode, percent)
		return rerr
	})
	if err != nil {
		return nil, apperror.NewStore(err)
	}

	result := &RaiseResult{
		SectionCode:        sectionCode,
		SectionDescription: sec.Description,
		Percent:            percent,
		Affected:           affected,
	}
	if affected == 0 {
		return result, apperror.NewEmptySection(sectionCode, "employees")
	}
	return result, nil
}

// ProductsBy lists all products ordered by an allow-listed column.
func (s *Service) ProductsBy(ctx context.Context, orderBy string) ([]*product.Product, error) {
	return s.products.ListSorted(ctx, orderBy)
}

// EmployeesBy lists all employees ordered by an allow-listed column.
func (s *Service) EmployeesBy(ctx context.Context, orderBy string) ([]*employee.Employee, error) {
	return s.employees.ListSorted(ctx, orderBy)
}

// SectionProducts lists the products of one section ordered by
// description. The section must exist.
func (s *Service) SectionProducts(ctx context.Context, sectionCode string) ([]*product.Product, error) {
	if _, err := s.mustSection(ctx, sectionCode); err != nil {
		return nil, err
	}

	all, err := s.products.ListSorted(ctx, "description")
	if err != nil {
		return nil, err
	}

	items := make([]*product.Product, 0, len(all))
	for _, p := range all {
		if p.SectionCode == sectionCode {
			items = append(items, p)
		}
	}
	return items, nil
}

// SectionEmployees lists the employees of one section ordered by name.
// The section must exist.
func (s *Service) SectionEmployees(ctx context.Context, sectionCode string) ([]*employee.Employee, error) {
	if _, err := s.mustSection(ctx, sectionCode); err != nil {
		return nil, err
	}

	all, err := s.employees.ListSorted(ctx, "name")
	if err != nil {
		return nil, err
	}

	items := make([]*employee.Employee, 0, len(all))
	for _, e := range all {
		if e.SectionCode == sectionCode {
			items = append(items, e)
		}
	}
	return items, nil
}

func (s *Service) mustSection(ctx context.Context, sectionCode string) (*section.Section, error) {
	sec, err := s.sections.GetByKey(ctx, sectionCode)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("section", sectionCode)
		}
		return nil, apperror.NewStore(err)
	}
	return sec, nil
}
