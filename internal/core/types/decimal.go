// Package types provides common value types and utilities.
package types

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"recyclehub/internal/core/apperror"
)

// Amount is a non-negative decimal quantity (weight or money).
// Uses decimal.Decimal to avoid floating-point errors and travels as a JSON number.
type Amount struct {
	decimal.Decimal
}

// NewAmount creates an Amount from a float.
// WARNING: Use ParseAmount or MustAmount for precise values.
func NewAmount(f float64) Amount {
	return Amount{decimal.NewFromFloat(f)}
}

// NewAmountFromDecimal wraps a decimal.
func NewAmountFromDecimal(d decimal.Decimal) Amount {
	return Amount{d}
}

// MustAmount creates an Amount from a canonical string, panics on error.
// Use only for constants and tests.
func MustAmount(s string) Amount {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return Amount{d}
}

// ZeroAmount returns zero Amount value.
func ZeroAmount() Amount {
	return Amount{decimal.Zero}
}

// Add returns a + b.
func (a Amount) Add(b Amount) Amount {
	return Amount{a.Decimal.Add(b.Decimal)}
}

// Sub returns a - b.
func (a Amount) Sub(b Amount) Amount {
	return Amount{a.Decimal.Sub(b.Decimal)}
}

// Equal reports whether a and b hold the same value regardless of scale.
func (a Amount) Equal(b Amount) bool {
	return a.Decimal.Equal(b.Decimal)
}

// MarshalJSON encodes Amount as a JSON number (not string).
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

// UnmarshalJSON accepts either a JSON number or a canonical numeric string.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		a.Decimal = decimal.Zero
		return nil
	}
	return a.Decimal.UnmarshalJSON(data)
}

// FormatBRL renders a money amount the way the dashboard displays it: "R$ 1.234,56".
func FormatBRL(a Amount) string {
	s := a.Decimal.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, frac, _ := strings.Cut(s, ".")
	var grouped strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(r)
	}

	sign := ""
	if neg {
		sign = "-"
	}
	return fmt.Sprintf("%sR$ %s,%s", sign, grouped.String(), frac)
}

// --- Text normalization ---

var (
	currencyRE  = regexp.MustCompile(`(?i)^(R\$|US\$|\$|BRL)`)
	canonicalRE = regexp.MustCompile(`^\d+(\.\d+)?$`)
	groupedRE   = regexp.MustCompile(`^[1-9]\d{0,2}$`)
)

// ParseAmount normalizes user-entered text into a non-negative Amount.
//
// Accepted forms: "1.234,56", "R$ 1.234,56", "1234.56", "1,5", "1,234,567.8".
// When both separators appear, the last one is the decimal separator. A lone
// separator repeated more than once is a thousands separator. A single dot
// followed by exactly three digits after a short non-zero group ("1.234") is a
// thousands separator, matching the pt-BR input masks; otherwise a single
// separator is decimal. Empty input, signs and any non-numeric residue are rejected.
func ParseAmount(field, text string) (Amount, error) {
	s := strings.TrimSpace(text)
	s = currencyRE.ReplaceAllString(s, "")
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\u00a0', '\t':
			return -1
		}
		return r
	}, s)

	if s == "" {
		return Amount{}, invalidAmount(field, text, "is required")
	}

	canonical, ok := canonicalize(s)
	if !ok || !canonicalRE.MatchString(canonical) {
		return Amount{}, invalidAmount(field, text, "must be a non-negative number")
	}

	d, err := decimal.NewFromString(canonical)
	if err != nil {
		return Amount{}, invalidAmount(field, text, "must be a non-negative number").WithCause(err)
	}
	return Amount{d}, nil
}

func canonicalize(s string) (string, bool) {
	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")
	commas := strings.Count(s, ",")
	dots := strings.Count(s, ".")

	switch {
	case commas > 0 && dots > 0:
		if lastComma > lastDot {
			// 1.234,56
			if commas > 1 {
				return "", false
			}
			return strings.Replace(strings.ReplaceAll(s, ".", ""), ",", ".", 1), true
		}
		// 1,234.56
		if dots > 1 {
			return "", false
		}
		return strings.ReplaceAll(s, ",", ""), true

	case commas > 1:
		return strings.ReplaceAll(s, ",", ""), true

	case commas == 1:
		return strings.Replace(s, ",", ".", 1), true

	case dots > 1:
		return strings.ReplaceAll(s, ".", ""), true

	case dots == 1:
		head, tail, _ := strings.Cut(s, ".")
		if len(tail) == 3 && groupedRE.MatchString(head) {
			return head + tail, true
		}
		return s, true
	}
	return s, true
}

func invalidAmount(field, text, reason string) *apperror.AppError {
	return apperror.NewValidation(fmt.Sprintf("%s %s", field, reason)).
		WithDetail("field", field).
		WithDetail("value", text)
}
