package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPrompter(input string) (*Prompter, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewPrompter(strings.NewReader(input), out), out
}

func TestExactLen(t *testing.T) {
	t.Run("accepts exact length", func(t *testing.T) {
		p, _ := newTestPrompter("FR\n")
		s, err := p.ExactLen("code", 2)
		require.NoError(t, err)
		assert.Equal(t, "FR", s)
	})

	t.Run("reprompts until the length matches", func(t *testing.T) {
		p, out := newTestPrompter("F\nFRU\nFR\n")
		s, err := p.ExactLen("code", 2)
		require.NoError(t, err)
		assert.Equal(t, "FR", s)
		assert.Contains(t, out.String(), "exactly 2 characters")
	})

	t.Run("trims whitespace before checking", func(t *testing.T) {
		p, _ := newTestPrompter("  FR  \n")
		s, err := p.ExactLen("code", 2)
		require.NoError(t, err)
		assert.Equal(t, "FR", s)
	})
}

func TestMaxLen(t *testing.T) {
	t.Run("accepts empty input", func(t *testing.T) {
		p, _ := newTestPrompter("\n")
		s, err := p.MaxLen("description", 10)
		require.NoError(t, err)
		assert.Equal(t, "", s)
	})

	t.Run("reprompts on overflow", func(t *testing.T) {
		p, _ := newTestPrompter("this is way too long\nshort\n")
		s, err := p.MaxLen("description", 10)
		require.NoError(t, err)
		assert.Equal(t, "short", s)
	})
}

func TestIntInRange(t *testing.T) {
	t.Run("accepts a number in range", func(t *testing.T) {
		p, _ := newTestPrompter("7\n")
		v, err := p.IntInRange("option", 0, 15)
		require.NoError(t, err)
		assert.Equal(t, 7, v)
	})

	t.Run("reprompts on junk and out-of-range values", func(t *testing.T) {
		p, _ := newTestPrompter("abc\n99\n-1\n3\n")
		v, err := p.IntInRange("option", 0, 15)
		require.NoError(t, err)
		assert.Equal(t, 3, v)
	})
}

func TestNonNegativeInt(t *testing.T) {
	t.Run("empty input returns the default", func(t *testing.T) {
		p, _ := newTestPrompter("\n")
		v, err := p.NonNegativeInt("stock", 42)
		require.NoError(t, err)
		assert.Equal(t, 42, v)
	})

	t.Run("rejects negatives", func(t *testing.T) {
		p, _ := newTestPrompter("-5\n12\n")
		v, err := p.NonNegativeInt("stock", 0)
		require.NoError(t, err)
		assert.Equal(t, 12, v)
	})
}

func TestMoney(t *testing.T) {
	t.Run("accepts two decimals", func(t *testing.T) {
		p, _ := newTestPrompter("2.50\n")
		v, err := p.Money("price")
		require.NoError(t, err)
		assert.True(t, v.Equal(decimal.RequireFromString("2.50")))
	})

	t.Run("rejects three decimals and negatives", func(t *testing.T) {
		p, _ := newTestPrompter("2.505\n-1\n0.99\n")
		v, err := p.Money("price")
		require.NoError(t, err)
		assert.True(t, v.Equal(decimal.RequireFromString("0.99")))
	})
}

func TestPercent(t *testing.T) {
	t.Run("negative percentages pass through unchecked", func(t *testing.T) {
		p, _ := newTestPrompter("-10\n")
		v, err := p.Percent("raise")
		require.NoError(t, err)
		assert.True(t, v.Equal(decimal.RequireFromString("-10")))
	})
}

func TestConfirm(t *testing.T) {
	t.Run("yes variants", func(t *testing.T) {
		for _, in := range []string{"y\n", "Y\n", "yes\n", "YES\n"} {
			p, _ := newTestPrompter(in)
			ok, err := p.Confirm("delete?")
			require.NoError(t, err)
			assert.True(t, ok, "input %q", in)
		}
	})

	t.Run("anything else is no", func(t *testing.T) {
		for _, in := range []string{"n\n", "\n", "si\n"} {
			p, _ := newTestPrompter(in)
			ok, err := p.Confirm("delete?")
			require.NoError(t, err)
			assert.False(t, ok, "input %q", in)
		}
	})
}
