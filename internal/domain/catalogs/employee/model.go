// Package employee provides the Employee catalog: staff members, each
// assigned to one section.
package employee

import (
	"context"

	"mercado/internal/core/apperror"
	"mercado/internal/domain/catalogs/section"
)

// CodeLength is the fixed length of an employee code.
const CodeLength = 4

// MaxNameLength bounds the employee name.
const MaxNameLength = 30

// Employee represents a staff member.
type Employee struct {
	// Code is the primary key, exactly four characters.
	Code string `db:"code" json:"code"`

	// Name is the employee's name (may be empty).
	Name string `db:"name" json:"name"`

	// AnnualSalary is the yearly salary, non-negative.
	AnnualSalary int `db:"annual_salary" json:"annualSalary"`

	// SectionCode references the owning section.
	SectionCode string `db:"section_code" json:"sectionCode"`
}

// New creates an Employee.
func New(code, name string, annualSalary int, sectionCode string) *Employee {
	return &Employee{
		Code:         code,
		Name:         name,
		AnnualSalary: annualSalary,
		SectionCode:  sectionCode,
	}
}

// Key implements domain.Keyed. Identity is the code alone.
func (e *Employee) Key() string {
	return e.Code
}

// Validate implements domain.Entity.
func (e *Employee) Validate(ctx context.Context) error {
	if len(e.Code) != CodeLength {
		return apperror.NewValidation("employee code must be exactly 4 characters").
			WithDetail("field", "code").
			WithDetail("value", e.Code)
	}
	if len(e.Name) > MaxNameLength {
		return apperror.NewValidation("employee name too long").
			WithDetail("field", "name").
			WithDetail("max", MaxNameLength)
	}
	if e.AnnualSalary < 0 {
		return apperror.NewValidation("annual salary cannot be negative").
			WithDetail("field", "annualSalary")
	}
	if len(e.SectionCode) != section.CodeLength {
		return apperror.NewValidation("section code must be exactly 2 characters").
			WithDetail("field", "sectionCode").
			WithDetail("value", e.SectionCode)
	}
	return nil
}
