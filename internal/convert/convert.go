// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert implements the length conversion pipeline: sanitize the
// typed text, parse it, convert between units through meters, and format the
// result. Everything here is a pure function of its arguments; the caller
// owns the ConversionState.
package convert

import (
	"errors"

	"github.com/pdiddy/lengthconv/internal/numfmt"
	"github.com/pdiddy/lengthconv/pkg/types"
)

// ErrInvalidNumericInput is reported when an edit does not parse as a
// decimal number. The edit is rejected and the field keeps its last
// accepted value.
var ErrInvalidNumericInput = errors.New("invalid numeric input")

// Parser is the subset of numfmt.Formatter that conversion needs.
type Parser interface {
	Parse(text string) (float64, error)
}

var _ Parser = (*numfmt.Decimal)(nil)

// ToMeters converts v expressed in u to meters.
func ToMeters(v float64, u types.LengthUnit) float64 {
	return v * u.FactorToMeter()
}

// FromMeters converts v meters to u.
func FromMeters(v float64, u types.LengthUnit) float64 {
	return v / u.FactorToMeter()
}

// ConvertValue converts v from source to target through meters. Converting
// a unit to itself returns v unchanged.
func ConvertValue(v float64, source, target types.LengthUnit) float64 {
	if source == target {
		return v
	}
	return FromMeters(ToMeters(v, source), target)
}

// Convert parses rawInput and converts it from source to target. It returns
// 0 when isValid is false or rawInput does not parse, which includes the
// empty field.
func Convert(rawInput string, source, target types.LengthUnit, isValid bool, p Parser) float64 {
	if !isValid {
		return 0
	}
	v, err := p.Parse(rawInput)
	if err != nil {
		return 0
	}
	return ConvertValue(v, source, target)
}
