// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownUnit is returned when a unit name matches no LengthUnit.
var ErrUnknownUnit = errors.New("unknown length unit")

// LengthUnit is one rung of the metric length ladder. The zero value is not a
// valid unit.
type LengthUnit string

const (
	Kilometer  LengthUnit = "km"
	Hectometer LengthUnit = "hm"
	Decameter  LengthUnit = "dam"
	Meter      LengthUnit = "m"
	Decimeter  LengthUnit = "dm"
	Centimeter LengthUnit = "cm"
	Millimeter LengthUnit = "mm"
)

// unitOrder is the picker order, largest unit first.
var unitOrder = []LengthUnit{
	Kilometer, Hectometer, Decameter, Meter, Decimeter, Centimeter, Millimeter,
}

var factorsToMeter = map[LengthUnit]float64{
	Kilometer:  1000,
	Hectometer: 100,
	Decameter:  10,
	Meter:      1,
	Decimeter:  0.1,
	Centimeter: 0.01,
	Millimeter: 0.001,
}

var unitLabels = map[LengthUnit]string{
	Kilometer:  "Km",
	Hectometer: "Hm",
	Decameter:  "Dam",
	Meter:      "M",
	Decimeter:  "Dm",
	Centimeter: "Cm",
	Millimeter: "Mm",
}

// AllUnits returns every LengthUnit in picker order. The returned slice is a
// copy and may be modified by the caller.
func AllUnits() []LengthUnit {
	out := make([]LengthUnit, len(unitOrder))
	copy(out, unitOrder)
	return out
}

// FactorToMeter returns the multiplier that converts a quantity in u to
// meters. Unknown units yield 1 so the function stays total; use Valid to
// reject them up front.
func (u LengthUnit) FactorToMeter() float64 {
	if f, ok := factorsToMeter[u]; ok {
		return f
	}
	return 1
}

// Label returns the display label shown by the unit pickers (e.g. "Km").
func (u LengthUnit) Label() string {
	if l, ok := unitLabels[u]; ok {
		return l
	}
	return string(u)
}

// Valid reports whether u is one of the fixed metric units.
func (u LengthUnit) Valid() bool {
	_, ok := factorsToMeter[u]
	return ok
}

func (u LengthUnit) String() string {
	return string(u)
}

// ParseLengthUnit resolves a tag ("km") or label ("Km") case-insensitively.
func ParseLengthUnit(s string) (LengthUnit, error) {
	u := LengthUnit(strings.ToLower(strings.TrimSpace(s)))
	if !u.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownUnit, s)
	}
	return u, nil
}

// MarshalText encodes the unit as its lower-case tag.
func (u LengthUnit) MarshalText() ([]byte, error) {
	if !u.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownUnit, string(u))
	}
	return []byte(u), nil
}

// UnmarshalText accepts anything ParseLengthUnit accepts.
func (u *LengthUnit) UnmarshalText(text []byte) error {
	parsed, err := ParseLengthUnit(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
