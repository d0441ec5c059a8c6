package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mercado/internal/domain/catalogs/product"
	"mercado/internal/infrastructure/http/v1/dto"
)

// ProductHandler serves the product catalog endpoints.
type ProductHandler struct {
	service *product.Service
}

// NewProductHandler creates a product handler.
func NewProductHandler(service *product.Service) *ProductHandler {
	return &ProductHandler{service: service}
}

// Register mounts the product routes.
func (h *ProductHandler) Register(rg *gin.RouterGroup) {
	g := rg.Group("/products")
	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/:code", h.get)
	g.PUT("/:code", h.update)
	g.DELETE("/:code", h.delete)
}

func (h *ProductHandler) create(c *gin.Context) {
	var req dto.CreateProductRequest
	if !bindJSON(c, &req) {
		return
	}

	p := req.ToProduct()
	if err := h.service.Create(c.Request.Context(), p); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromProduct(p))
}

// list optionally filters by ?section=XX.
func (h *ProductHandler) list(c *gin.Context) {
	items, err := h.service.List(c.Request.Context(), c.Query("section"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewListResponse(dto.FromProducts(items)))
}

func (h *ProductHandler) get(c *gin.Context) {
	p, err := h.service.GetByKey(c.Request.Context(), c.Param("code"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromProduct(p))
}

func (h *ProductHandler) update(c *gin.Context) {
	var req dto.UpdateProductRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.service.Update(c.Request.Context(), c.Param("code"), req.ToUpdateInput())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromProduct(p))
}

func (h *ProductHandler) delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("code")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DeleteResponse{Deleted: true})
}
