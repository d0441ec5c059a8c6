package dto

import (
	"github.com/shopspring/decimal"

	"mercado/internal/domain/reports"
)

// StockValueResponse is the API shape of a stock valuation. Total is
// omitted when the valuation covered no products.
type StockValueResponse struct {
	SectionCode        string           `json:"sectionCode,omitempty"`
	SectionDescription string           `json:"sectionDescription,omitempty"`
	Total              *decimal.Decimal `json:"total,omitempty"`
	HasProducts        bool             `json:"hasProducts"`
}

// RaiseRequest is the payload for a bulk percentage raise.
type RaiseRequest struct {
	SectionCode string          `json:"sectionCode" binding:"required"`
	Percent     decimal.Decimal `json:"percent"`
}

// RaiseResponse is the outcome of a bulk percentage raise.
type RaiseResponse struct {
	SectionCode        string          `json:"sectionCode"`
	SectionDescription string          `json:"sectionDescription"`
	Percent            decimal.Decimal `json:"percent"`
	Affected           int64           `json:"affected"`
}

// FromStockValuation converts the report result to the API shape.
func FromStockValuation(v *reports.StockValuation) StockValueResponse {
	resp := StockValueResponse{
		SectionCode:        v.SectionCode,
		SectionDescription: v.SectionDescription,
		HasProducts:        v.HasProducts,
	}
	if v.HasProducts {
		total := v.Total
		resp.Total = &total
	}
	return resp
}

// FromRaiseResult converts the raise result to the API shape.
func FromRaiseResult(r *reports.RaiseResult) RaiseResponse {
	return RaiseResponse{
		SectionCode:        r.SectionCode,
		SectionDescription: r.SectionDescription,
		Percent:            r.Percent,
		Affected:           r.Affected,
	}
}
