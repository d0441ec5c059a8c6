package reports

import (
	"context"

	"github.com/shopspring/decimal"
)

// Repository defines the aggregate queries the reports service needs.
// Each bulk raise runs as a single UPDATE statement and returns the
// number of affected rows.
type Repository interface {
	// StockValue computes SUM(price * stock), restricted to one section
	// when sectionCode is non-empty. An absent aggregate (SQL NULL) is
	// carried through as an invalid NullDecimal.
	StockValue(ctx context.Context, sectionCode string) (decimal.NullDecimal, error)

	// RaisePrices applies price := price + price * percent / 100 to
	// every product of the section.
	RaisePrices(ctx context.Context, sectionCode string, percent decimal.Decimal) (int64, error)

	// RaiseSalaries applies the same formula to annual salaries of the
	// section's employees.
	RaiseSalaries(ctx context.Context, sectionCode string, percent decimal.Decimal) (int64, error)
}
