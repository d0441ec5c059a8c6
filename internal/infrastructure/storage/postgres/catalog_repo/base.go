// Package catalog_repo implements the catalog repositories on
// PostgreSQL. A single generic base covers the per-entity CRUD; the
// per-entity files only bind table metadata.
package catalog_repo

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"mercado/internal/core/apperror"
	"mercado/internal/domain"
	"mercado/internal/infrastructure/storage/postgres"
)

// foreignKeyViolation is the PostgreSQL SQLSTATE for FK violations.
const foreignKeyViolation = "23503"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// BaseCatalogRepo implements domain.CatalogRepository for any catalog
// entity whose columns are declared with db tags.
type BaseCatalogRepo[T domain.Keyed] struct {
	txm       *postgres.TxManager
	tableName string
	keyColumn string
	newFn     func() T

	// selectCols doubles as the ORDER BY allow-list: a sort column that
	// is not a declared column of the entity is rejected before any SQL
	// is built.
	selectCols []string
}

// NewBaseCatalogRepo creates a repository bound to one table. newFn
// must return an empty entity to scan into; its db tags define the
// column set.
func NewBaseCatalogRepo[T domain.Keyed](
	txm *postgres.TxManager,
	tableName string,
	keyColumn string,
	newFn func() T,
) *BaseCatalogRepo[T] {
	return &BaseCatalogRepo[T]{
		txm:        txm,
		tableName:  tableName,
		keyColumn:  keyColumn,
		newFn:      newFn,
		selectCols: postgres.ExtractDBColumns(newFn()),
	}
}

// Create inserts a new entity. Store-level failures (duplicate key,
// missing foreign key) come back as a single opaque store error; the
// services diagnose the cause by re-querying.
func (r *BaseCatalogRepo[T]) Create(ctx context.Context, entity T) error {
	values, err := postgres.StructToMap(entity)
	if err != nil {
		return fmt.Errorf("map entity: %w", err)
	}

	query := psql.Insert(r.tableName)
	cols := make([]string, 0, len(values))
	args := make([]any, 0, len(values))
	for _, col := range r.selectCols {
		cols = append(cols, col)
		args = append(args, values[col])
	}
	query = query.Columns(cols...).Values(args...)

	sql, sqlArgs, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, sqlArgs...); err != nil {
		return apperror.NewStore(err)
	}
	return nil
}

// GetByKey fetches one entity by its key.
func (r *BaseCatalogRepo[T]) GetByKey(ctx context.Context, key string) (T, error) {
	var zero T

	sql, args, err := psql.Select(r.selectCols...).
		From(r.tableName).
		Where(sq.Eq{r.keyColumn: key}).
		ToSql()
	if err != nil {
		return zero, fmt.Errorf("build select: %w", err)
	}

	entity := r.newFn()
	if err := pgxscan.Get(ctx, r.txm.GetQuerier(ctx), entity, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return zero, apperror.NewNotFound(r.tableName, key)
		}
		return zero, apperror.NewStore(err)
	}
	return entity, nil
}

// Update rewrites every non-key column of the entity.
func (r *BaseCatalogRepo[T]) Update(ctx context.Context, entity T) error {
	values, err := postgres.StructToMap(entity)
	if err != nil {
		return fmt.Errorf("map entity: %w", err)
	}

	query := psql.Update(r.tableName)
	for _, col := range r.selectCols {
		if col == r.keyColumn {
			continue
		}
		query = query.Set(col, values[col])
	}
	query = query.Where(sq.Eq{r.keyColumn: entity.Key()})

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	tag, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return apperror.NewStore(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound(r.tableName, entity.Key())
	}
	return nil
}

// Delete removes one entity by key. A foreign key violation surfaces as
// a conflict so callers can tell "still referenced" from other faults.
func (r *BaseCatalogRepo[T]) Delete(ctx context.Context, key string) error {
	sql, args, err := psql.Delete(r.tableName).
		Where(sq.Eq{r.keyColumn: key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	tag, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return apperror.NewConflict(
				fmt.Sprintf("%s %s is still referenced", r.tableName, key))
		}
		return apperror.NewStore(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound(r.tableName, key)
	}
	return nil
}

// ListAll returns every entity ordered by key.
func (r *BaseCatalogRepo[T]) ListAll(ctx context.Context) ([]T, error) {
	return r.ListSorted(ctx, r.keyColumn)
}

// ListSorted returns every entity ordered by the given column. The
// column must be one of the entity's declared columns; anything else is
// a validation error, never interpolated into SQL.
func (r *BaseCatalogRepo[T]) ListSorted(ctx context.Context, orderBy string) ([]T, error) {
	col := strings.ToLower(strings.TrimSpace(orderBy))
	if !slices.Contains(r.selectCols, col) {
		return nil, apperror.NewValidation(
			fmt.Sprintf("cannot sort %s by %q", r.tableName, orderBy)).
			WithDetail("allowed", strings.Join(r.selectCols, ", "))
	}

	sql, args, err := psql.Select(r.selectCols...).
		From(r.tableName).
		OrderBy(col).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var items []T
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &items, sql, args...); err != nil {
		return nil, apperror.NewStore(err)
	}
	return items, nil
}

// Exists reports whether an entity with the given key exists.
func (r *BaseCatalogRepo[T]) Exists(ctx context.Context, key string) (bool, error) {
	sql, args, err := psql.Select("1").
		From(r.tableName).
		Where(sq.Eq{r.keyColumn: key}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build select: %w", err)
	}

	var one int
	err = r.txm.GetQuerier(ctx).QueryRow(ctx, sql, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, apperror.NewStore(err)
	}
	return true, nil
}
