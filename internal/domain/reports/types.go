// Package reports provides aggregate operations over the catalogs:
// stock valuation, bulk percentage raises and allow-listed sorted
// listings.
package reports

import (
	"github.com/shopspring/decimal"
)

// StockValuation is the result of a stock value report.
// HasProducts is false when the underlying SUM aggregate was absent:
// a section predicate with no matching rows, or an empty catalog for
// the global report. Both present as "no value".
type StockValuation struct {
	// SectionCode is empty for the whole-catalog valuation.
	SectionCode        string          `json:"sectionCode,omitempty"`
	SectionDescription string          `json:"sectionDescription,omitempty"`
	Total              decimal.Decimal `json:"total"`
	HasProducts        bool            `json:"hasProducts"`
}

// RaiseResult is the outcome of a bulk percentage raise.
type RaiseResult struct {
	SectionCode        string          `json:"sectionCode"`
	SectionDescription string          `json:"sectionDescription"`
	Percent            decimal.Decimal `json:"percent"`
	Affected           int64           `json:"affected"`
}
