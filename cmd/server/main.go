// Command server runs the back-office HTTP API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"mercado/internal/domain/catalogs/employee"
	"mercado/internal/domain/catalogs/product"
	"mercado/internal/domain/catalogs/section"
	"mercado/internal/domain/reports"
	v1 "mercado/internal/infrastructure/http/v1"
	"mercado/internal/infrastructure/storage/postgres"
	"mercado/internal/infrastructure/storage/postgres/catalog_repo"
	"mercado/internal/infrastructure/storage/postgres/report_repo"
	"mercado/pkg/logger"
)

func main() {
	ctx := context.Background()

	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "production") == "development",
	})
	if err != nil {
		logger.Default().Fatalw("logger init failed", "error", err)
	}
	ctx = logger.WithLogger(ctx, log)

	if getEnv("APP_ENV", "production") != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	dsn := mustEnv(ctx, "DATABASE_URL")

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

	router := v1.NewRouter(v1.Deps{
		Pool:      pool,
		Sections:  sectionSvc,
		Products:  productSvc,
		Employees: employeeSvc,
		Reports:   reportSvc,
	})

	addr := getEnv("HTTP_ADDR", ":8080")
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info(ctx, "server starting", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal(ctx, "server failed", "error", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info(ctx, "shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, "shutdown failed", "error", err)
	}
	logger.Info(ctx, "server stopped")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func mustEnv(ctx context.Context, key string) string {
	v := os.Getenv(key)
	if v == "" {
		logger.Fatal(ctx, "required environment variable missing", "key", key)
	}
	return v
}
