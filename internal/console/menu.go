package console

import (
	"context"
	"errors"
	"io"

	"mercado/internal/core/apperror"
	"mercado/internal/domain/catalogs/employee"
	"mercado/internal/domain/catalogs/product"
	"mercado/internal/domain/catalogs/section"
	"mercado/internal/domain/reports"
)

// Menu drives the interactive back-office session.
type Menu struct {
	p         *Prompter
	sections  *section.Service
	products  *product.Service
	employees *employee.Service
	reports   *reports.Service
}

// NewMenu creates the menu over the given services.
func NewMenu(
	p *Prompter,
	sections *section.Service,
	products *product.Service,
	employees *employee.Service,
	rep *reports.Service,
) *Menu {
	return &Menu{
		p:         p,
		sections:  sections,
		products:  products,
		employees: employees,
		reports:   rep,
	}
}

const mainMenu = `
=== MERCADO ===
 1. Add section
 2. Update section
 3. Delete section
 4. List sections
 5. Add product
 6. Update product
 7. Delete product
 8. List products
 9. Add employee
10. Update employee
11. Delete employee
12. List employees
13. Stock valuation
14. Raise section prices
15. Raise section salaries
 0. Quit`

// Run loops over the main menu until the user quits or input ends.
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.p.printf("%s\n", mainMenu)
		choice, err := m.p.IntInRange("option", 0, 15)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		var opErr error
		switch choice {
		case 0:
			return nil
		case 1:
			opErr = m.addSection(ctx)
		case 2:
			opErr = m.updateSection(ctx)
		case 3:
			opErr = m.deleteSection(ctx)
		case 4:
			opErr = m.listSections(ctx)
		case 5:
			opErr = m.addProduct(ctx)
		case 6:
			opErr = m.updateProduct(ctx)
		case 7:
			opErr = m.deleteProduct(ctx)
		case 8:
			opErr = m.listProducts(ctx)
		case 9:
			opErr = m.addEmployee(ctx)
		case 10:
			opErr = m.updateEmployee(ctx)
		case 11:
			opErr = m.deleteEmployee(ctx)
		case 12:
			opErr = m.listEmployees(ctx)
		case 13:
			opErr = m.stockValuation(ctx)
		case 14:
			opErr = m.raisePrices(ctx)
		case 15:
			opErr = m.raiseSalaries(ctx)
		}

		if opErr != nil {
			if errors.Is(opErr, io.EOF) {
				return nil
			}
			m.report(opErr)
		}
	}
}

// report prints an operation failure. Application errors print their
// message; anything else is shown as a generic failure.
func (m *Menu) report(err error) {
	if appErr, ok := apperror.AsAppError(err); ok {
		m.p.printf("ERROR: %s\n", appErr.Message)
		return
	}
	m.p.printf("ERROR: operation failed\n")
}

func (m *Menu) addSection(ctx context.Context) error {
	code, err := m.p.ExactLen("section code (2 chars)", section.CodeLength)
	if err != nil {
		return err
	}
	desc, err := m.p.MaxLen("description", section.MaxDescriptionLength)
	if err != nil {
		return err
	}

	if err := m.sections.Create(ctx, section.New(code, desc)); err != nil {
		return err
	}
	m.p.printf("section %s created\n", code)
	return nil
}

func (m *Menu) updateSection(ctx context.Context) error {
	code, err := m.p.ExactLen("section code", section.CodeLength)
	if err != nil {
		return err
	}
	desc, err := m.p.MaxLen("new description (empty keeps current)", section.MaxDescriptionLength)
	if err != nil {
		return err
	}

	sec, err := m.sections.Update(ctx, code, desc)
	if err != nil {
		return err
	}
	m.p.printf("section %s updated: %s\n", sec.Code, sec.Description)
	return nil
}

func (m *Menu) deleteSection(ctx context.Context) error {
	code, err := m.p.ExactLen("section code", section.CodeLength)
	if err != nil {
		return err
	}

	m.p.printf("WARNING: %s\n", section.CascadeWarning)
	ok, err := m.p.Confirm("delete anyway?")
	if err != nil {
		return err
	}
	if !ok {
		m.p.printf("cancelled\n")
		return nil
	}

	if err := m.sections.Delete(ctx, code); err != nil {
		return err
	}
	m.p.printf("section %s deleted\n", code)
	return nil
}

func (m *Menu) listSections(ctx context.Context) error {
	items, err := m.sections.ListAll(ctx)
	if err != nil {
		return err
	}
	m.p.printf("%-4s %s\n", "CODE", "DESCRIPTION")
	for _, s := range items {
		m.p.printf("%-4s %s\n", s.Code, s.Description)
	}
	return nil
}

func (m *Menu) addProduct(ctx context.Context) error {
	code, err := m.p.ExactLen("product code (4 chars)", product.CodeLength)
	if err != nil {
		return err
	}
	desc, err := m.p.MaxLen("description", product.MaxDescriptionLength)
	if err != nil {
		return err
	}
	price, err := m.p.Money("price")
	if err != nil {
		return err
	}
	stock, err := m.p.NonNegativeInt("stock", 0)
	if err != nil {
		return err
	}
	secCode, err := m.p.ExactLen("section code", section.CodeLength)
	if err != nil {
		return err
	}

	if err := m.products.Create(ctx, product.New(code, desc, price, stock, secCode)); err != nil {
		return err
	}
	m.p.printf("product %s created\n", code)
	return nil
}

func (m *Menu) updateProduct(ctx context.Context) error {
	code, err := m.p.ExactLen("product code", product.CodeLength)
	if err != nil {
		return err
	}

	current, err := m.products.GetByKey(ctx, code)
	if err != nil {
		return err
	}
	m.p.printf("current: %s  price=%s  stock=%d  section=%s\n",
		current.Description, current.Price, current.Stock, current.SectionCode)

	desc, err := m.p.MaxLen("new description (empty keeps current)", product.MaxDescriptionLength)
	if err != nil {
		return err
	}
	price, err := m.p.Money("new price")
	if err != nil {
		return err
	}
	stock, err := m.p.NonNegativeInt("new stock", 0)
	if err != nil {
		return err
	}
	secCode, err := m.p.Line("new section code (empty keeps current)")
	if err != nil {
		return err
	}

	updated, err := m.products.Update(ctx, code, product.UpdateInput{
		Description: desc,
		Price:       price,
		Stock:       stock,
		SectionCode: secCode,
	})
	if err != nil {
		return err
	}
	m.p.printf("product %s updated\n", updated.Code)
	return nil
}

func (m *Menu) deleteProduct(ctx context.Context) error {
	code, err := m.p.ExactLen("product code", product.CodeLength)
	if err != nil {
		return err
	}
	if err := m.products.Delete(ctx, code); err != nil {
		return err
	}
	m.p.printf("product %s deleted\n", code)
	return nil
}

func (m *Menu) listProducts(ctx context.Context) error {
	secCode, err := m.p.Line("section filter (empty for all)")
	if err != nil {
		return err
	}

	items, err := m.products.List(ctx, secCode)
	if err != nil {
		return err
	}
	m.p.printf("%-6s %-40s %12s %7s %s\n", "CODE", "DESCRIPTION", "PRICE", "STOCK", "SECTION")
	for _, p := range items {
		m.p.printf("%-6s %-40s %12s %7d %s\n",
			p.Code, p.Description, p.Price.StringFixed(2), p.Stock, p.SectionCode)
	}
	return nil
}

func (m *Menu) addEmployee(ctx context.Context) error {
	code, err := m.p.ExactLen("employee code (4 chars)", employee.CodeLength)
	if err != nil {
		return err
	}
	name, err := m.p.MaxLen("name", employee.MaxNameLength)
	if err != nil {
		return err
	}
	salary, err := m.p.NonNegativeInt("annual salary", 0)
	if err != nil {
		return err
	}
	secCode, err := m.p.ExactLen("section code", section.CodeLength)
	if err != nil {
		return err
	}

	if err := m.employees.Create(ctx, employee.New(code, name, salary, secCode)); err != nil {
		return err
	}
	m.p.printf("employee %s created\n", code)
	return nil
}

func (m *Menu) updateEmployee(ctx context.Context) error {
	code, err := m.p.ExactLen("employee code", employee.CodeLength)
	if err != nil {
		return err
	}

	current, err := m.employees.GetByKey(ctx, code)
	if err != nil {
		return err
	}
	m.p.printf("current: %s  salary=%d  section=%s\n",
		current.Name, current.AnnualSalary, m.sectionLabel(ctx, current.SectionCode))

	name, err := m.p.MaxLen("new name (empty keeps current)", employee.MaxNameLength)
	if err != nil {
		return err
	}
	salary, err := m.p.NonNegativeInt("new annual salary (0 keeps current)", 0)
	if err != nil {
		return err
	}
	secCode, err := m.p.Line("new section code (empty keeps current)")
	if err != nil {
		return err
	}

	res, err := m.employees.Update(ctx, code, employee.UpdateInput{
		Name:         name,
		AnnualSalary: salary,
		SectionCode:  secCode,
	})
	if err != nil {
		return err
	}
	for _, w := range res.Warnings {
		m.p.printf("WARNING: %s\n", w)
	}
	m.p.printf("employee %s updated\n", res.Employee.Code)
	return nil
}

func (m *Menu) deleteEmployee(ctx context.Context) error {
	code, err := m.p.ExactLen("employee code", employee.CodeLength)
	if err != nil {
		return err
	}
	if err := m.employees.Delete(ctx, code); err != nil {
		return err
	}
	m.p.printf("employee %s deleted\n", code)
	return nil
}

func (m *Menu) listEmployees(ctx context.Context) error {
	secCode, err := m.p.Line("section filter (empty for all)")
	if err != nil {
		return err
	}

	items, err := m.employees.List(ctx, secCode)
	if err != nil {
		return err
	}
	m.p.printf("%-6s %-30s %12s %s\n", "CODE", "NAME", "SALARY", "SECTION")
	for _, e := range items {
		m.p.printf("%-6s %-30s %12d %s\n",
			e.Code, e.Name, e.AnnualSalary, m.sectionLabel(ctx, e.SectionCode))
	}
	return nil
}

func (m *Menu) stockValuation(ctx context.Context) error {
	secCode, err := m.p.Line("section code (empty for whole catalog)")
	if err != nil {
		return err
	}

	v, err := m.reports.StockValuation(ctx, secCode)
	if err != nil {
		return err
	}
	if !v.HasProducts {
		m.p.printf("no products to value\n")
		return nil
	}
	if v.SectionCode == "" {
		m.p.printf("total stock value: %s\n", v.Total.StringFixed(2))
	} else {
		m.p.printf("stock value of %s (%s): %s\n",
			v.SectionCode, v.SectionDescription, v.Total.StringFixed(2))
	}
	return nil
}

func (m *Menu) raisePrices(ctx context.Context) error {
	secCode, err := m.p.ExactLen("section code", section.CodeLength)
	if err != nil {
		return err
	}
	percent, err := m.p.Percent("raise percent")
	if err != nil {
		return err
	}

	res, err := m.reports.RaiseSectionPrices(ctx, secCode, percent)
	if err != nil {
		return err
	}
	m.p.printf("raised prices of %d products in %s by %s%%\n",
		res.Affected, res.SectionCode, res.Percent)
	return nil
}

func (m *Menu) raiseSalaries(ctx context.Context) error {
	secCode, err := m.p.ExactLen("section code", section.CodeLength)
	if err != nil {
		return err
	}
	percent, err := m.p.Percent("raise percent (must be positive)")
	if err != nil {
		return err
	}

	res, err := m.reports.RaiseSectionSalaries(ctx, secCode, percent)
	if err != nil {
		return err
	}
	m.p.printf("raised salaries of %d employees in %s by %s%%\n",
		res.Affected, res.SectionCode, res.Percent)
	return nil
}

// sectionLabel renders the section description of an employee, or N/A
// when the referenced section cannot be resolved.
func (m *Menu) sectionLabel(ctx context.Context, code string) string {
	sec, found, err := m.sections.Find(ctx, code)
	if err != nil || !found {
		return "N/A"
	}
	return sec.Description
}
