package catalog_repo

import (
	"mercado/internal/domain/catalogs/product"
	"mercado/internal/infrastructure/storage/postgres"
)

// NewProductRepo creates the product repository.
func NewProductRepo(txm *postgres.TxManager) product.Repository {
	return NewBaseCatalogRepo(txm, "products", "code",
		func() *product.Product { return &product.Product{} })
}
