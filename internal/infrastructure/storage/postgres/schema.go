package postgres

import (
	"context"
	"fmt"
)

// schemaStatements bootstraps the catalog tables. The employee foreign
// key deliberately has no ON DELETE action: a section with employees
// cannot be removed, while its products are cascade-deleted.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS sections (
		code        CHAR(2) PRIMARY KEY,
		description VARCHAR(50) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		code         CHAR(4) PRIMARY KEY,
		description  VARCHAR(40) NOT NULL,
		price        NUMERIC(10,2) NOT NULL CHECK (price >= 0),
		stock        INTEGER NOT NULL CHECK (stock >= 0),
		section_code CHAR(2) NOT NULL REFERENCES sections(code) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS employees (
		code          CHAR(4) PRIMARY KEY,
		name          VARCHAR(30) NOT NULL,
		annual_salary INTEGER NOT NULL CHECK (annual_salary >= 0),
		section_code  CHAR(2) NOT NULL REFERENCES sections(code)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_products_section ON products(section_code)`,
	`CREATE INDEX IF NOT EXISTS idx_employees_section ON employees(section_code)`,
}

// EnsureSchema creates the catalog tables if they do not exist.
func EnsureSchema(ctx context.Context, pool *Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
