package catalog_repo

import (
	"mercado/internal/domain/catalogs/section"
	"mercado/internal/infrastructure/storage/postgres"
)

// NewSectionRepo creates the section repository.
func NewSectionRepo(txm *postgres.TxManager) section.Repository {
	return NewBaseCatalogRepo(txm, "sections", "code",
		func() *section.Section { return &section.Section{} })
}
