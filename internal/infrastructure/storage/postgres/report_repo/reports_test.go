package report_repo

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mercado/internal/infrastructure/storage/postgres"
)

// mockQuerier records the statement it receives and plays back canned
// results.
type mockQuerier struct {
	lastSQL  string
	lastArgs []any

	execTag pgconn.CommandTag
	rowScan func(dest ...any) error
}

func (m *mockQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	m.lastSQL = sql
	m.lastArgs = args
	return m.execTag, nil
}

func (m *mockQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	m.lastSQL = sql
	m.lastArgs = args
	return nil, nil
}

func (m *mockQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	m.lastSQL = sql
	m.lastArgs = args
	return mockRow{scan: m.rowScan}
}

type mockRow struct {
	scan func(dest ...any) error
}

func (r mockRow) Scan(dest ...any) error {
	return r.scan(dest...)
}

type mockSource struct {
	q *mockQuerier
}

func (s mockSource) GetQuerier(ctx context.Context) postgres.Querier {
	return s.q
}

func newRepoFixture() (*Repo, *mockQuerier) {
	q := &mockQuerier{}
	return &Repo{txm: mockSource{q: q}}, q
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestRaisePricesSQL(t *testing.T) {
	ctx := context.Background()
	repo, q := newRepoFixture()
	q.execTag = pgconn.NewCommandTag("UPDATE 2")

	affected, err := repo.RaisePrices(ctx, "FR", dec("10"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)

	assert.Equal(t,
		"UPDATE products SET price = price + price * $1 / 100 WHERE section_code = $2",
		q.lastSQL)
	require.Len(t, q.lastArgs, 2)
	assert.True(t, q.lastArgs[0].(decimal.Decimal).Equal(dec("10")))
	assert.Equal(t, "FR", q.lastArgs[1])
}

func TestRaiseSalariesSQL(t *testing.T) {
	ctx := context.Background()
	repo, q := newRepoFixture()
	q.execTag = pgconn.NewCommandTag("UPDATE 3")

	affected, err := repo.RaiseSalaries(ctx, "DR", dec("5"))
	require.NoError(t, err)
	assert.Equal(t, int64(3), affected)

	assert.Equal(t,
		"UPDATE employees SET annual_salary = ROUND(annual_salary + annual_salary * $1 / 100)::integer WHERE section_code = $2",
		q.lastSQL)
	require.Len(t, q.lastArgs, 2)
	assert.True(t, q.lastArgs[0].(decimal.Decimal).Equal(dec("5")))
	assert.Equal(t, "DR", q.lastArgs[1])
}

// A 10% raise on {1000, 2000} must yield {1100, 2200}: the statement
// adds a tenth of the current value, it never multiplies the base by
// the raw percentage.
func TestRaiseFormula(t *testing.T) {
	percent := dec("10")
	for base, want := range map[string]string{"1000": "1100", "2000": "2200"} {
		raised := dec(base).Add(dec(base).Mul(percent).Div(dec("100")))
		assert.True(t, raised.Equal(dec(want)), "base %s", base)
	}
}

func TestStockValueSQL(t *testing.T) {
	ctx := context.Background()

	t.Run("whole catalog has no predicate", func(t *testing.T) {
		repo, q := newRepoFixture()
		q.rowScan = func(dest ...any) error {
			*(dest[0].(*decimal.NullDecimal)) = decimal.NewNullDecimal(dec("1234.50"))
			return nil
		}

		total, err := repo.StockValue(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, "SELECT SUM(price * stock) FROM products", q.lastSQL)
		assert.Empty(t, q.lastArgs)
		require.True(t, total.Valid)
		assert.True(t, total.Decimal.Equal(dec("1234.50")))
	})

	t.Run("section predicate is parameterized", func(t *testing.T) {
		repo, q := newRepoFixture()
		q.rowScan = func(dest ...any) error { return nil }

		_, err := repo.StockValue(ctx, "FR")
		require.NoError(t, err)
		assert.Equal(t,
			"SELECT SUM(price * stock) FROM products WHERE section_code = $1",
			q.lastSQL)
		assert.Equal(t, []any{"FR"}, q.lastArgs)
	})

	t.Run("NULL aggregate scans as invalid, not zero", func(t *testing.T) {
		repo, q := newRepoFixture()
		q.rowScan = func(dest ...any) error {
			// SUM over no rows leaves the NullDecimal untouched.
			return nil
		}

		total, err := repo.StockValue(ctx, "FR")
		require.NoError(t, err)
		assert.False(t, total.Valid)
	})
}
