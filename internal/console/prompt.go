// Package console implements the interactive back-office front-end: a
// line-oriented menu over the catalog and report services.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Prompter reads and validates line-oriented user input.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a prompter over the given streams.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

func (p *Prompter) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// Line prompts and returns the trimmed input line. It returns io.EOF
// when the input stream ends.
func (p *Prompter) Line(label string) (string, error) {
	p.printf("%s: ", label)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ExactLen prompts until the input has exactly n characters. An empty
// line is rejected too; use Line for optional fields.
func (p *Prompter) ExactLen(label string, n int) (string, error) {
	for {
		s, err := p.Line(label)
		if err != nil {
			return "", err
		}
		if len(s) == n {
			return s, nil
		}
		p.printf("input must be exactly %d characters\n", n)
	}
}

// MaxLen prompts until the input fits in n characters. Empty input is
// accepted and returned as-is.
func (p *Prompter) MaxLen(label string, n int) (string, error) {
	for {
		s, err := p.Line(label)
		if err != nil {
			return "", err
		}
		if len(s) <= n {
			return s, nil
		}
		p.printf("input must be at most %d characters\n", n)
	}
}

// IntInRange prompts until the input parses as an integer within
// [min, max].
func (p *Prompter) IntInRange(label string, min, max int) (int, error) {
	for {
		s, err := p.Line(label)
		if err != nil {
			return 0, err
		}
		v, perr := strconv.Atoi(s)
		if perr != nil || v < min || v > max {
			p.printf("enter a number between %d and %d\n", min, max)
			continue
		}
		return v, nil
	}
}

// NonNegativeInt prompts until the input parses as an integer >= 0.
// An empty line returns defaultValue.
func (p *Prompter) NonNegativeInt(label string, defaultValue int) (int, error) {
	for {
		s, err := p.Line(label)
		if err != nil {
			return 0, err
		}
		if s == "" {
			return defaultValue, nil
		}
		v, perr := strconv.Atoi(s)
		if perr != nil || v < 0 {
			p.printf("enter a non-negative whole number\n")
			continue
		}
		return v, nil
	}
}

// Money prompts until the input parses as a non-negative amount with at
// most two decimals.
func (p *Prompter) Money(label string) (decimal.Decimal, error) {
	for {
		s, err := p.Line(label)
		if err != nil {
			return decimal.Zero, err
		}
		v, perr := decimal.NewFromString(s)
		if perr != nil || v.IsNegative() || v.Exponent() < -2 {
			p.printf("enter a non-negative amount with at most 2 decimals\n")
			continue
		}
		return v, nil
	}
}

// Percent prompts until the input parses as a decimal number. The
// value is returned unchecked; callers apply their own bounds.
func (p *Prompter) Percent(label string) (decimal.Decimal, error) {
	for {
		s, err := p.Line(label)
		if err != nil {
			return decimal.Zero, err
		}
		v, perr := decimal.NewFromString(s)
		if perr != nil {
			p.printf("enter a number\n")
			continue
		}
		return v, nil
	}
}

// Confirm prompts for a yes/no answer. Only "y" or "yes" (case
// insensitive) count as yes.
func (p *Prompter) Confirm(label string) (bool, error) {
	s, err := p.Line(label + " [y/N]")
	if err != nil {
		return false, err
	}
	s = strings.ToLower(s)
	return s == "y" || s == "yes", nil
}
