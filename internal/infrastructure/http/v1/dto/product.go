package dto

import (
	"github.com/shopspring/decimal"

	"mercado/internal/domain/catalogs/product"
)

// CreateProductRequest is the payload for creating a product.
type CreateProductRequest struct {
	Code        string          `json:"code" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	SectionCode string          `json:"sectionCode" binding:"required"`
}

// UpdateProductRequest is the payload for updating a product. An empty
// description or section code keeps the stored value; price and stock
// always overwrite.
type UpdateProductRequest struct {
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	SectionCode string          `json:"sectionCode"`
}

// ProductResponse is the API shape of a product.
type ProductResponse struct {
	Code        string          `json:"code"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	SectionCode string          `json:"sectionCode"`
}

// ToProduct converts the request into a domain entity.
func (r CreateProductRequest) ToProduct() *product.Product {
	return product.New(r.Code, r.Description, r.Price, r.Stock, r.SectionCode)
}

// ToUpdateInput converts the request into the service update input.
func (r UpdateProductRequest) ToUpdateInput() product.UpdateInput {
	return product.UpdateInput{
		Description: r.Description,
		Price:       r.Price,
		Stock:       r.Stock,
		SectionCode: r.SectionCode,
	}
}

// FromProduct converts a domain entity into the API shape.
func FromProduct(p *product.Product) ProductResponse {
	return ProductResponse{
		Code:        p.Code,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		SectionCode: p.SectionCode,
	}
}

// FromProducts converts a slice of products.
func FromProducts(items []*product.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(items))
	for _, p := range items {
		out = append(out, FromProduct(p))
	}
	return out
}
