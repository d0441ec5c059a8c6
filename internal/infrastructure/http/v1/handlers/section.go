package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mercado/internal/domain/catalogs/section"
	"mercado/internal/infrastructure/http/v1/dto"
)

// SectionHandler serves the section catalog endpoints.
type SectionHandler struct {
	service *section.Service
}

// NewSectionHandler creates a section handler.
func NewSectionHandler(service *section.Service) *SectionHandler {
	return &SectionHandler{service: service}
}

// Register mounts the section routes.
func (h *SectionHandler) Register(rg *gin.RouterGroup) {
	g := rg.Group("/sections")
	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/:code", h.get)
	g.PUT("/:code", h.update)
	g.DELETE("/:code", h.delete)
}

func (h *SectionHandler) create(c *gin.Context) {
	var req dto.CreateSectionRequest
	if !bindJSON(c, &req) {
		return
	}

	sec := req.ToSection()
	if err := h.service.Create(c.Request.Context(), sec); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromSection(sec))
}

func (h *SectionHandler) list(c *gin.Context) {
	items, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewListResponse(dto.FromSections(items)))
}

func (h *SectionHandler) get(c *gin.Context) {
	sec, err := h.service.GetByKey(c.Request.Context(), c.Param("code"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromSection(sec))
}

func (h *SectionHandler) update(c *gin.Context) {
	var req dto.UpdateSectionRequest
	if !bindJSON(c, &req) {
		return
	}

	sec, err := h.service.Update(c.Request.Context(), c.Param("code"), req.Description)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromSection(sec))
}

func (h *SectionHandler) delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("code")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DeleteResponse{
		Deleted: true,
		Warning: section.CascadeWarning,
	})
}
