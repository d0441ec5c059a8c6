package dto

import (
	"mercado/internal/domain/catalogs/employee"
)

// CreateEmployeeRequest is the payload for creating an employee.
type CreateEmployeeRequest struct {
	Code         string `json:"code" binding:"required"`
	Name         string `json:"name"`
	AnnualSalary int    `json:"annualSalary"`
	SectionCode  string `json:"sectionCode" binding:"required"`
}

// UpdateEmployeeRequest is the payload for updating an employee. An
// empty name or section code keeps the stored value, and so does a zero
// salary.
type UpdateEmployeeRequest struct {
	Name         string `json:"name"`
	AnnualSalary int    `json:"annualSalary"`
	SectionCode  string `json:"sectionCode"`
}

// EmployeeResponse is the API shape of an employee.
type EmployeeResponse struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	AnnualSalary int    `json:"annualSalary"`
	SectionCode  string `json:"sectionCode"`
}

// EmployeeUpdateResponse carries the updated employee plus warnings
// about skipped fields.
type EmployeeUpdateResponse struct {
	Employee EmployeeResponse `json:"employee"`
	Warnings []string         `json:"warnings,omitempty"`
}

// ToEmployee converts the request into a domain entity.
func (r CreateEmployeeRequest) ToEmployee() *employee.Employee {
	return employee.New(r.Code, r.Name, r.AnnualSalary, r.SectionCode)
}

// ToUpdateInput converts the request into the service update input.
func (r UpdateEmployeeRequest) ToUpdateInput() employee.UpdateInput {
	return employee.UpdateInput{
		Name:         r.Name,
		AnnualSalary: r.AnnualSalary,
		SectionCode:  r.SectionCode,
	}
}

// FromEmployee converts a domain entity into the API shape.
func FromEmployee(e *employee.Employee) EmployeeResponse {
	return EmployeeResponse{
		Code:         e.Code,
		Name:         e.Name,
		AnnualSalary: e.AnnualSalary,
		SectionCode:  e.SectionCode,
	}
}

// FromEmployees converts a slice of employees.
func FromEmployees(items []*employee.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(items))
	for _, e := range items {
		out = append(out, FromEmployee(e))
	}
	return out
}
