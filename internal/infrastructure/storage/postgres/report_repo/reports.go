// Package report_repo implements the aggregate report queries.
package report_repo

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"mercado/internal/domain/reports"
	"mercado/internal/infrastructure/storage/postgres"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// querierSource yields the querier for the current context, either the
// open transaction or the pool.
type querierSource interface {
	GetQuerier(ctx context.Context) postgres.Querier
}

// Repo runs the aggregate queries directly against the store. Bulk
// raises are single UPDATE statements so a raise over N rows is one
// round trip, not N.
type Repo struct {
	txm querierSource
}

var _ reports.Repository = (*Repo)(nil)

// NewRepo creates the reports repository.
func NewRepo(txm *postgres.TxManager) *Repo {
	return &Repo{txm: txm}
}

// StockValue computes SUM(price * stock) over products, restricted to
// one section when sectionCode is non-empty. With no matching rows the
// SQL aggregate is NULL, which scans into an invalid NullDecimal.
func (r *Repo) StockValue(ctx context.Context, sectionCode string) (decimal.NullDecimal, error) {
	query := psql.Select("SUM(price * stock)").From("products")
	if sectionCode != "" {
		query = query.Where(sq.Eq{"section_code": sectionCode})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("build stock value query: %w", err)
	}

	var total decimal.NullDecimal
	if err := r.txm.GetQuerier(ctx).QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("stock value: %w", err)
	}
	return total, nil
}

// RaisePrices raises every product price of a section by percent.
func (r *Repo) RaisePrices(ctx context.Context, sectionCode string, percent decimal.Decimal) (int64, error) {
	sql, args, err := psql.Update("products").
		Set("price", sq.Expr("price + price * ? / 100", percent)).
		Where(sq.Eq{"section_code": sectionCode}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build price raise: %w", err)
	}

	tag, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("raise prices: %w", err)
	}
	return tag.RowsAffected(), nil
}

// RaiseSalaries raises every annual salary of a section by percent.
// Salaries are integral, so the raised value is rounded to the nearest
// whole unit before being stored.
func (r *Repo) RaiseSalaries(ctx context.Context, sectionCode string, percent decimal.Decimal) (int64, error) {
	sql, args, err := psql.Update("employees").
		Set("annual_salary", sq.Expr(
			"ROUND(annual_salary + annual_salary * ? / 100)::integer", percent)).
		Where(sq.Eq{"section_code": sectionCode}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build salary raise: %w", err)
	}

	tag, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("raise salaries: %w", err)
	}
	return tag.RowsAffected(), nil
}
