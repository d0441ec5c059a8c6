// Command console runs the interactive back-office session.
package main

import (
	"context"
	"os"

	"mercado/internal/console"
	"mercado/internal/domain/catalogs/employee"
	"mercado/internal/domain/catalogs/product"
	"mercado/internal/domain/catalogs/section"
	"mercado/internal/domain/reports"
	"mercado/internal/infrastructure/storage/postgres"
	"mercado/internal/infrastructure/storage/postgres/catalog_repo"
	"mercado/internal/infrastructure/storage/postgres/report_repo"
	"mercado/pkg/logger"
)

func main() {
	ctx := context.Background()

	// Interactive session: keep log noise out of the prompt stream.
	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "error"),
		OutputPaths: []string{"stderr"},
	})
	if err != nil {
		logger.Default().Fatalw("logger init failed", "error", err)
	}
	ctx = logger.WithLogger(ctx, log)

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
	reportRepo := report_repo.NewRepo(txm)

	sectionSvc := section.NewService(sectionRepo, txm)
	productSvc := product.NewService(productRepo, sectionRepo, txm)
	employeeSvc := employee.NewService(employeeRepo, sectionRepo, txm)
	reportSvc := reports.NewService(reportRepo, sectionRepo, productRepo, employeeRepo, txm)

	menu := console.NewMenu(
		console.NewPrompter(os.Stdin, os.Stdout),
		sectionSvc, productSvc, employeeSvc, reportSvc,
	)

	if err := menu.Run(ctx); err != nil {
		logger.Fatal(ctx, "console session failed", "error", err)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
