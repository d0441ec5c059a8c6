package catalog_repo

import (
	"mercado/internal/domain/catalogs/employee"
	"mercado/internal/infrastructure/storage/postgres"
)

// NewEmployeeRepo creates the employee repository.
func NewEmployeeRepo(txm *postgres.TxManager) employee.Repository {
	return NewBaseCatalogRepo(txm, "employees", "code",
		func() *employee.Employee { return &employee.Employee{} })
}
