// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package numfmt parses and formats decimal numbers with explicit separator
// and fraction-digit options, so callers stay independent of the host locale.
package numfmt

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrMalformed is returned when text is not a decimal number under the
// formatter's separators.
var ErrMalformed = errors.New("malformed decimal number")

// Formatter parses and renders decimal numbers. Decimal is the only
// implementation; the interface lets tests and callers substitute their own.
type Formatter interface {
	// DecimalSeparator returns the rune separating integer and fraction digits.
	DecimalSeparator() rune

	// Parse converts text to a float64. Grouping separators are ignored.
	Parse(text string) (float64, error)

	// FormatInput regroups typed text without changing its digits, so a
	// partially typed number ("12," or "0,50") keeps its shape.
	FormatInput(text string) (string, error)

	// FormatResult renders a computed value for display.
	FormatResult(v float64) string
}

// Options configures a Decimal formatter.
type Options struct {
	// DecimalSeparator separates integer and fraction digits (default '.').
	DecimalSeparator rune

	// GroupingSeparator is inserted every three integer digits. Zero, or a
	// rune equal to DecimalSeparator, disables grouping.
	GroupingSeparator rune

	// MinFractionDigits pads results with trailing zeros up to this count.
	MinFractionDigits int

	// MaxFractionDigits rounds results to at most this many fraction digits.
	MaxFractionDigits int
}

// Decimal is a Formatter for plain positional decimal numbers.
type Decimal struct {
	opts Options
}

// New returns a Decimal formatter. Out-of-range fraction digit options are
// clamped so that 0 <= min <= max.
func New(opts Options) *Decimal {
	if opts.DecimalSeparator == 0 {
		opts.DecimalSeparator = '.'
	}
	if opts.GroupingSeparator == opts.DecimalSeparator {
		opts.GroupingSeparator = 0
	}
	if opts.MaxFractionDigits < 0 {
		opts.MaxFractionDigits = 0
	}
	if opts.MinFractionDigits < 0 {
		opts.MinFractionDigits = 0
	}
	if opts.MinFractionDigits > opts.MaxFractionDigits {
		opts.MinFractionDigits = opts.MaxFractionDigits
	}
	return &Decimal{opts: opts}
}

// Options returns the effective options after normalization.
func (d *Decimal) Options() Options {
	return d.opts
}

// DecimalSeparator implements Formatter.
func (d *Decimal) DecimalSeparator() rune {
	return d.opts.DecimalSeparator
}

// split breaks text into integer and fraction digit runs. hasSep reports
// whether a decimal separator was present, even with no digits after it.
func (d *Decimal) split(text string) (intDigits, fracDigits string, hasSep bool, err error) {
	var ib, fb strings.Builder
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9':
			if hasSep {
				fb.WriteRune(r)
			} else {
				ib.WriteRune(r)
			}
		case r == d.opts.DecimalSeparator:
			if hasSep {
				return "", "", false, fmt.Errorf("%w: %q has more than one decimal separator", ErrMalformed, text)
			}
			hasSep = true
		case d.opts.GroupingSeparator != 0 && r == d.opts.GroupingSeparator && !hasSep:
			// grouping is only meaningful in the integer part
		default:
			return "", "", false, fmt.Errorf("%w: unexpected %q in %q", ErrMalformed, r, text)
		}
	}
	if ib.Len() == 0 && fb.Len() == 0 {
		return "", "", false, fmt.Errorf("%w: %q has no digits", ErrMalformed, text)
	}
	return ib.String(), fb.String(), hasSep, nil
}

// Parse implements Formatter.
func (d *Decimal) Parse(text string) (float64, error) {
	intDigits, fracDigits, _, err := d.split(text)
	if err != nil {
		return 0, err
	}
	if intDigits == "" {
		intDigits = "0"
	}
	s := intDigits
	if fracDigits != "" {
		s += "." + fracDigits
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return v, nil
}

// FormatInput implements Formatter. Leading zeros of the integer part are
// dropped and a missing integer part becomes "0".
func (d *Decimal) FormatInput(text string) (string, error) {
	intDigits, fracDigits, hasSep, err := d.split(text)
	if err != nil {
		return "", err
	}
	intDigits = strings.TrimLeft(intDigits, "0")
	if intDigits == "" {
		intDigits = "0"
	}
	out := d.group(intDigits)
	if hasSep {
		out += string(d.opts.DecimalSeparator) + fracDigits
	}
	return out, nil
}

// FormatResult implements Formatter. Non-finite values render as "0".
func (d *Decimal) FormatResult(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	s := strconv.FormatFloat(math.Abs(v), 'f', d.opts.MaxFractionDigits, 64)
	intDigits, fracDigits, _ := strings.Cut(s, ".")
	keep := len(fracDigits)
	for keep > d.opts.MinFractionDigits && fracDigits[keep-1] == '0' {
		keep--
	}
	fracDigits = fracDigits[:keep]

	var b strings.Builder
	if v < 0 && strings.Trim(intDigits+fracDigits, "0") != "" {
		b.WriteByte('-')
	}
	b.WriteString(d.group(intDigits))
	if fracDigits != "" {
		b.WriteRune(d.opts.DecimalSeparator)
		b.WriteString(fracDigits)
	}
	return b.String()
}

// group inserts the grouping separator every three digits from the right.
func (d *Decimal) group(digits string) string {
	if d.opts.GroupingSeparator == 0 || len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteRune(d.opts.GroupingSeparator)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
