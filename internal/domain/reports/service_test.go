package reports_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mercado/internal/core/apperror"
	"mercado/internal/domain/catalogs/employee"
	"mercado/internal/domain/catalogs/product"
	"mercado/internal/domain/catalogs/section"
	"mercado/internal/domain/domaintest"
	"mercado/internal/domain/reports"
)

// fakeAggRepo returns canned aggregate results and records the raise
// arguments it was called with.
type fakeAggRepo struct {
	stock    decimal.NullDecimal
	affected int64

	lastSection string
	lastPercent decimal.Decimal
}

func (f *fakeAggRepo) StockValue(ctx context.Context, sectionCode string) (decimal.NullDecimal, error) {
	f.lastSection = sectionCode
	return f.stock, nil
}

func (f *fakeAggRepo) RaisePrices(ctx context.Context, sectionCode string, percent decimal.Decimal) (int64, error) {
	f.lastSection = sectionCode
	f.lastPercent = percent
	return f.affected, nil
}

func (f *fakeAggRepo) RaiseSalaries(ctx context.Context, sectionCode string, percent decimal.Decimal) (int64, error) {
	f.lastSection = sectionCode
	f.lastPercent = percent
	return f.affected, nil
}

type fixture struct {
	svc       *reports.Service
	agg       *fakeAggRepo
	sections  *domaintest.FakeRepo[*section.Section]
	products  *domaintest.FakeRepo[*product.Product]
	employees *domaintest.FakeRepo[*employee.Employee]
}

func newFixture() fixture {
	agg := &fakeAggRepo{}
	sections := domaintest.NewFakeRepo[*section.Section](
		[]string{"code", "description"},
		func(s *section.Section, col string) string { return s.Code })
	products := domaintest.NewFakeRepo[*product.Product](
		[]string{"code", "description", "price", "stock", "section_code"},
		func(p *product.Product, col string) string {
			if col == "description" {
				return p.Description
			}
			return p.Code
		})
	employees := domaintest.NewFakeRepo[*employee.Employee](
		[]string{"code", "name", "annual_salary", "section_code"},
		func(e *employee.Employee, col string) string {
			if col == "name" {
				return e.Name
			}
			return e.Code
		})

	return fixture{
		svc:       reports.NewService(agg, sections, products, employees, domaintest.FakeTxManager{}),
		agg:       agg,
		sections:  sections,
		products:  products,
		employees: employees,
	}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestStockValuation(t *testing.T) {
	ctx := context.Background()

	t.Run("whole catalog with products", func(t *testing.T) {
		f := newFixture()
		f.agg.stock = decimal.NewNullDecimal(dec("1234.50"))

		v, err := f.svc.StockValuation(ctx, "")
		require.NoError(t, err)
		assert.True(t, v.HasProducts)
		assert.True(t, v.Total.Equal(dec("1234.50")))
	})

	t.Run("empty catalog reports no value, not zero", func(t *testing.T) {
		f := newFixture()

		v, err := f.svc.StockValuation(ctx, "")
		require.NoError(t, err)
		assert.False(t, v.HasProducts)
	})

	t.Run("empty section reports no value the same way", func(t *testing.T) {
		f := newFixture()
		f.sections.Seed(section.New("FR", "Fruits"))

		v, err := f.svc.StockValuation(ctx, "FR")
		require.NoError(t, err)
		assert.False(t, v.HasProducts)
		assert.Equal(t, "Fruits", v.SectionDescription)
	})

	t.Run("missing section is terminal", func(t *testing.T) {
		f := newFixture()

		_, err := f.svc.StockValuation(ctx, "XX")
		require.Error(t, err)
		assert.True(t, apperror.IsNotFound(err))
	})
}

func TestRaiseSectionPrices(t *testing.T) {
	ctx := context.Background()

	t.Run("raises and reports the affected count", func(t *testing.T) {
		f := newFixture()
		f.sections.Seed(section.New("FR", "Fruits"))
		f.agg.affected = 2

		res, err := f.svc.RaiseSectionPrices(ctx, "FR", dec("10"))
		require.NoError(t, err)
		assert.Equal(t, int64(2), res.Affected)
		assert.Equal(t, "FR", f.agg.lastSection)
		assert.True(t, f.agg.lastPercent.Equal(dec("10")))
	})

	t.Run("non-positive percent is accepted on the price path", func(t *testing.T) {
		f := newFixture()
		f.sections.Seed(section.New("FR", "Fruits"))
		f.agg.affected = 1

		_, err := f.svc.RaiseSectionPrices(ctx, "FR", dec("-5"))
		require.NoError(t, err)
	})

	t.Run("section without products is a soft failure", func(t *testing.T) {
		f := newFixture()
		f.sections.Seed(section.New("FR", "Fruits"))

		res, err := f.svc.RaiseSectionPrices(ctx, "FR", dec("10"))
		require.Error(t, err)
		appErr, ok := apperror.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeEmptySection, appErr.Code)
		require.NotNil(t, res)
		assert.Equal(t, int64(0), res.Affected)
	})

	t.Run("missing section is terminal", func(t *testing.T) {
		f := newFixture()

		_, err := f.svc.RaiseSectionPrices(ctx, "XX", dec("10"))
		require.Error(t, err)
		assert.True(t, apperror.IsNotFound(err))
	})
}

func TestRaiseSectionSalaries(t *testing.T) {
	ctx := context.Background()

	t.Run("raises and reports the affected count", func(t *testing.T) {
		f := newFixture()
		f.sections.Seed(section.New("FR", "Fruits"))
		f.agg.affected = 3

		res, err := f.svc.RaiseSectionSalaries(ctx, "FR", dec("10"))
		require.NoError(t, err)
		assert.Equal(t, int64(3), res.Affected)
	})

	t.Run("zero percent is rejected on the salary path", func(t *testing.T) {
		f := newFixture()
		f.sections.Seed(section.New("FR", "Fruits"))

		_, err := f.svc.RaiseSectionSalaries(ctx, "FR", decimal.Zero)
		require.Error(t, err)
		assert.True(t, apperror.IsValidation(err))
	})

	t.Run("negative percent is rejected on the salary path", func(t *testing.T) {
		f := newFixture()
		f.sections.Seed(section.New("FR", "Fruits"))

		_, err := f.svc.RaiseSectionSalaries(ctx, "FR", dec("-10"))
		require.Error(t, err)
		assert.True(t, apperror.IsValidation(err))
	})

	t.Run("section without employees is a soft failure", func(t *testing.T) {
		f := newFixture()
		f.sections.Seed(section.New("FR", "Fruits"))

		res, err := f.svc.RaiseSectionSalaries(ctx, "FR", dec("10"))
		require.Error(t, err)
		appErr, ok := apperror.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeEmptySection, appErr.Code)
		require.NotNil(t, res)
	})
}

func TestSortedListings(t *testing.T) {
	ctx := context.Background()

	t.Run("products ordered by an allow-listed column", func(t *testing.T) {
		f := newFixture()
		f.products.Seed(
			product.New("P002", "Juice", dec("3.20"), 5, "DR"),
			product.New("P001", "Apples", dec("2.50"), 10, "FR"),
		)

		items, err := f.svc.ProductsBy(ctx, "description")
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "Apples", items[0].Description)
	})

	t.Run("hostile order column is rejected", func(t *testing.T) {
		f := newFixture()

		_, err := f.svc.EmployeesBy(ctx, "salary; DROP TABLE employees")
		require.Error(t, err)
		assert.True(t, apperror.IsValidation(err))
	})

	t.Run("section products are filtered and ordered by description", func(t *testing.T) {
		f := newFixture()
		f.sections.Seed(section.New("FR", "Fruits"))
		f.products.Seed(
			product.New("P001", "Pears", dec("3.00"), 7, "FR"),
			product.New("P002", "Apples", dec("2.50"), 10, "FR"),
			product.New("P003", "Juice", dec("3.20"), 5, "DR"),
		)

		items, err := f.svc.SectionProducts(ctx, "FR")
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "Apples", items[0].Description)
		assert.Equal(t, "Pears", items[1].Description)
	})

	t.Run("section employees require an existing section", func(t *testing.T) {
		f := newFixture()

		_, err := f.svc.SectionEmployees(ctx, "XX")
		require.Error(t, err)
		assert.True(t, apperror.IsNotFound(err))
	})
}
