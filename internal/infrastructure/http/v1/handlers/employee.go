package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mercado/internal/domain/catalogs/employee"
	"mercado/internal/infrastructure/http/v1/dto"
)

// EmployeeHandler serves the employee catalog endpoints.
type EmployeeHandler struct {
	service *employee.Service
}

// NewEmployeeHandler creates an employee handler.
func NewEmployeeHandler(service *employee.Service) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

// Register mounts the employee routes.
func (h *EmployeeHandler) Register(rg *gin.RouterGroup) {
	g := rg.Group("/employees")
	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/:code", h.get)
	g.PUT("/:code", h.update)
	g.DELETE("/:code", h.delete)
}

func (h *EmployeeHandler) create(c *gin.Context) {
	var req dto.CreateEmployeeRequest
	if !bindJSON(c, &req) {
		return
	}

	e := req.ToEmployee()
	if err := h.service.Create(c.Request.Context(), e); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromEmployee(e))
}

// list optionally filters by ?section=XX.
func (h *EmployeeHandler) list(c *gin.Context) {
	items, err := h.service.List(c.Request.Context(), c.Query("section"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewListResponse(dto.FromEmployees(items)))
}

func (h *EmployeeHandler) get(c *gin.Context) {
	e, err := h.service.GetByKey(c.Request.Context(), c.Param("code"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromEmployee(e))
}

func (h *EmployeeHandler) update(c *gin.Context) {
	var req dto.UpdateEmployeeRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.service.Update(c.Request.Context(), c.Param("code"), req.ToUpdateInput())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.EmployeeUpdateResponse{
		Employee: dto.FromEmployee(res.Employee),
		Warnings: res.Warnings,
	})
}

func (h *EmployeeHandler) delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("code")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DeleteResponse{Deleted: true})
}
