// Package product provides the Product catalog: sellable items, each
// belonging to exactly one section.
package product

import (
	"context"

	"github.com/shopspring/decimal"

	"mercado/internal/core/apperror"
	"mercado/internal/domain/catalogs/section"
)

// CodeLength is the fixed length of a product code.
const CodeLength = 4

// MaxDescriptionLength bounds the product description.
const MaxDescriptionLength = 40

// Product represents a sellable item.
type Product struct {
	// Code is the primary key, exactly four characters.
	Code string `db:"code" json:"code"`

	// Description is the display name (may be empty).
	Description string `db:"description" json:"description"`

	// Price is the unit price, non-negative with 2-decimal precision.
	Price decimal.Decimal `db:"price" json:"price"`

	// Stock is the current stock level, non-negative.
	Stock int `db:"stock" json:"stock"`

	// SectionCode references the owning section.
	SectionCode string `db:"section_code" json:"sectionCode"`
}

// New creates a Product.
func New(code, description string, price decimal.Decimal, stock int, sectionCode string) *Product {
	return &Product{
		Code:        code,
		Description: description,
		Price:       price,
		Stock:       stock,
		SectionCode: sectionCode,
	}
}

// Key implements domain.Keyed. Identity is the code alone.
func (p *Product) Key() string {
	return p.Code
}

// Validate implements domain.Entity.
func (p *Product) Validate(ctx context.Context) error {
	if len(p.Code) != CodeLength {
		return apperror.NewValidation("product code must be exactly 4 characters").
			WithDetail("field", "code").
			WithDetail("value", p.Code)
	}
	if len(p.Description) > MaxDescriptionLength {
		return apperror.NewValidation("product description too long").
			WithDetail("field", "description").
			WithDetail("max", MaxDescriptionLength)
	}
	if p.Price.IsNegative() {
		return apperror.NewValidation("price cannot be negative").
			WithDetail("field", "price")
	}
	if p.Price.Exponent() < -2 {
		return apperror.NewValidation("price precision is limited to 2 decimals").
			WithDetail("field", "price").
			WithDetail("value", p.Price.String())
	}
	if p.Stock < 0 {
		return apperror.NewValidation("stock cannot be negative").
			WithDetail("field", "stock")
	}
	if len(p.SectionCode) != section.CodeLength {
		return apperror.NewValidation("section code must be exactly 2 characters").
			WithDetail("field", "sectionCode").
			WithDetail("value", p.SectionCode)
	}
	return nil
}
