// Package v1 wires the HTTP API.
package v1

import (
	"github.com/gin-gonic/gin"

	"mercado/internal/domain/catalogs/employee"
	"mercado/internal/domain/catalogs/product"
	"mercado/internal/domain/catalogs/section"
	"mercado/internal/domain/reports"
	"mercado/internal/infrastructure/http/v1/handlers"
	"mercado/internal/infrastructure/http/v1/middleware"
	"mercado/internal/infrastructure/storage/postgres"
)

// Deps carries everything the router needs.
type Deps struct {
	Pool      *postgres.Pool
	Sections  *section.Service
	Products  *product.Service
	Employees *employee.Service
	Reports   *reports.Service
}

// NewRouter builds the gin engine with the full middleware chain and
// all v1 routes mounted under /api/v1.
func NewRouter(deps Deps) *gin.Engine {
	r := gin.New()

	r.Use(
		middleware.Recovery(),
		middleware.Trace(),
		middleware.Logger(),
		middleware.ErrorHandler(),
	)

	handlers.NewHealthHandler(deps.Pool).Register(r)

	api := r.Group("/api/v1")
	handlers.NewSectionHandler(deps.Sections).Register(api)
	handlers.NewProductHandler(deps.Products).Register(api)
	handlers.NewEmployeeHandler(deps.Employees).Register(api)
	handlers.NewReportsHandler(deps.Reports).Register(api)

	return r
}
