// Command seed bootstraps the schema and loads demo data.
package main

import (
	"context"
	"os"

	"github.com/shopspring/decimal"

	"mercado/internal/domain/catalogs/employee"
	"mercado/internal/domain/catalogs/product"
	"mercado/internal/domain/catalogs/section"
	"mercado/internal/infrastructure/storage/postgres"
	"mercado/internal/infrastructure/storage/postgres/catalog_repo"
	"mercado/pkg/logger"
)

func main() {
	ctx := context.Background()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		logger.Fatal(ctx, "required environment variable missing", "key", "DATABASE_URL")
	}

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(dsn))
	if err != nil {
		logger.Fatal(ctx, "database connection failed", "error", err)
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		logger.Fatal(ctx, "schema bootstrap failed", "error", err)
	}

	txm := postgres.NewTxManager(pool)
	sectionRepo := catalog_repo.NewSectionRepo(txm)
	productRepo := catalog_repo.NewProductRepo(txm)
	employeeRepo := catalog_repo.NewEmployeeRepo(txm)

	sections := []*section.Section{
		section.New("FR", "Fruits and vegetables"),
		section.New("DR", "Drinks"),
		section.New("BK", "Bakery"),
	}
	products := []*product.Product{
		product.New("P001", "Apples 1kg", decimal.NewFromFloat(2.50), 120, "FR"),
		product.New("P002", "Bananas 1kg", decimal.NewFromFloat(1.80), 90, "FR"),
		product.New("P003", "Orange juice 1L", decimal.NewFromFloat(3.20), 60, "DR"),
		product.New("P004", "Sparkling water 1L", decimal.NewFromFloat(0.95), 200, "DR"),
		product.New("P005", "Sourdough loaf", decimal.NewFromFloat(4.10), 25, "BK"),
	}
	employees := []*employee.Employee{
		employee.New("E001", "Ana Torres", 24000, "FR"),
		employee.New("E002", "Luis Prado", 22000, "DR"),
		employee.New("E003", "Marta Gil", 26000, "BK"),
	}

	err = txm.RunInTransaction(ctx, func(ctx context.Context) error {
		for _, s := range sections {
			if err := sectionRepo.Create(ctx, s); err != nil {
				return err
			}
		}
		for _, p := range products {
			if err := productRepo.Create(ctx, p); err != nil {
				return err
			}
		}
		for _, e := range employees {
			if err := employeeRepo.Create(ctx, e); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Fatal(ctx, "seed failed", "error", err)
	}

	logger.Info(ctx, "seed completed",
		"sections", len(sections),
		"products", len(products),
		"employees", len(employees),
	)
}
