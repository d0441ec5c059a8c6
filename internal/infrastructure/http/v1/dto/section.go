package dto

import (
	"mercado/internal/domain/catalogs/section"
)

// CreateSectionRequest is the payload for creating a section. The
// description may be empty, as in the console path.
type CreateSectionRequest struct {
	Code        string `json:"code" binding:"required"`
	Description string `json:"description"`
}

// UpdateSectionRequest is the payload for updating a section. An empty
// description keeps the stored one.
type UpdateSectionRequest struct {
	Description string `json:"description"`
}

// SectionResponse is the API shape of a section.
type SectionResponse struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// ToSection converts the request into a domain entity.
func (r CreateSectionRequest) ToSection() *section.Section {
	return section.New(r.Code, r.Description)
}

// FromSection converts a domain entity into the API shape.
func FromSection(s *section.Section) SectionResponse {
	return SectionResponse{Code: s.Code, Description: s.Description}
}

// FromSections converts a slice of sections.
func FromSections(items []*section.Section) []SectionResponse {
	out := make([]SectionResponse, 0, len(items))
	for _, s := range items {
		out = append(out, FromSection(s))
	}
	return out
}
