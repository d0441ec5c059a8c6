// Package section provides the Section catalog: store departments
// identified by a fixed two-character code. Products and employees both
// reference a section; removing a section removes its products.
package section

import (
	"context"

	"mercado/internal/core/apperror"
)

// CodeLength is the fixed length of a section code.
const CodeLength = 2

// MaxDescriptionLength bounds the section description.
const MaxDescriptionLength = 50

// Section represents a store department.
type Section struct {
	// Code is the primary key, exactly two characters.
	Code string `db:"code" json:"code"`

	// Description is the display name (may be empty).
	Description string `db:"description" json:"description"`
}

// New creates a Section.
func New(code, description string) *Section {
	return &Section{
		Code:        code,
		Description: description,
	}
}

// Key implements domain.Keyed. Identity is the code alone.
func (s *Section) Key() string {
	return s.Code
}

// Validate implements domain.Entity.
func (s *Section) Validate(ctx context.Context) error {
	if len(s.Code) != CodeLength {
		return apperror.NewValidation("section code must be exactly 2 characters").
			WithDetail("field", "code").
			WithDetail("value", s.Code)
	}
	if len(s.Description) > MaxDescriptionLength {
		return apperror.NewValidation("section description too long").
			WithDetail("field", "description").
			WithDetail("max", MaxDescriptionLength)
	}
	return nil
}
