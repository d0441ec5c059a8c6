package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mercado/internal/domain/reports"
	"mercado/internal/infrastructure/http/v1/dto"
)

// ReportsHandler serves the aggregate report endpoints.
type ReportsHandler struct {
	service *reports.Service
}

// NewReportsHandler creates a reports handler.
func NewReportsHandler(service *reports.Service) *ReportsHandler {
	return &ReportsHandler{service: service}
}

// Register mounts the report routes.
func (h *ReportsHandler) Register(rg *gin.RouterGroup) {
	g := rg.Group("/reports")
	g.GET("/stock-value", h.stockValue)
	g.GET("/products", h.products)
	g.GET("/employees", h.employees)
	g.GET("/sections/:code/products", h.sectionProducts)
	g.GET("/sections/:code/employees", h.sectionEmployees)
	g.POST("/price-raise", h.priceRaise)
	g.POST("/salary-raise", h.salaryRaise)
}

// stockValue values the stock of one section (?section=XX) or the whole
// catalog when the parameter is absent.
func (h *ReportsHandler) stockValue(c *gin.Context) {
	v, err := h.service.StockValuation(c.Request.Context(), c.Query("section"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromStockValuation(v))
}

// products lists all products ordered by ?order_by= (default code).
func (h *ReportsHandler) products(c *gin.Context) {
	orderBy := c.DefaultQuery("order_by", "code")
	items, err := h.service.ProductsBy(c.Request.Context(), orderBy)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewListResponse(dto.FromProducts(items)))
}

// employees lists all employees ordered by ?order_by= (default code).
func (h *ReportsHandler) employees(c *gin.Context) {
	orderBy := c.DefaultQuery("order_by", "code")
	items, err := h.service.EmployeesBy(c.Request.Context(), orderBy)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewListResponse(dto.FromEmployees(items)))
}

func (h *ReportsHandler) sectionProducts(c *gin.Context) {
	items, err := h.service.SectionProducts(c.Request.Context(), c.Param("code"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewListResponse(dto.FromProducts(items)))
}

func (h *ReportsHandler) sectionEmployees(c *gin.Context) {
	items, err := h.service.SectionEmployees(c.Request.Context(), c.Param("code"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewListResponse(dto.FromEmployees(items)))
}

func (h *ReportsHandler) priceRaise(c *gin.Context) {
	var req dto.RaiseRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.service.RaiseSectionPrices(c.Request.Context(), req.SectionCode, req.Percent)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromRaiseResult(res))
}

func (h *ReportsHandler) salaryRaise(c *gin.Context) {
	var req dto.RaiseRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.service.RaiseSectionSalaries(c.Request.Context(), req.SectionCode, req.Percent)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromRaiseResult(res))
}
