package section

import (
	"mercado/internal/domain"
)

// Repository defines the interface for Section persistence.
// Deleting a section cascades to its products at the store level.
type Repository interface {
	domain.CatalogRepository[*Section]
}
