// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

const (
	// DefaultSourceUnit is the source picker selection of a fresh screen.
	DefaultSourceUnit = Meter

	// DefaultTargetUnit is the target picker selection of a fresh screen.
	DefaultTargetUnit = Centimeter
)

// ConversionState holds everything the conversion screen displays. The UI
// layer owns its lifecycle; the convert package only computes new values
// from old ones.
type ConversionState struct {
	// SourceUnit is the unit RawInput is expressed in.
	SourceUnit LengthUnit `json:"source_unit" yaml:"source_unit"`

	// TargetUnit is the unit Result is expressed in.
	TargetUnit LengthUnit `json:"target_unit" yaml:"target_unit"`

	// RawInput is the last accepted content of the text field, already
	// grouped and truncated.
	RawInput string `json:"raw_input" yaml:"raw_input"`

	// IsInputValid reports whether RawInput is empty or parses as a number.
	IsInputValid bool `json:"is_input_valid" yaml:"is_input_valid"`

	// Rejected is set when the most recent edit was rejected and the field
	// reverted. It drives the red underline and clears on the next event.
	Rejected bool `json:"rejected" yaml:"rejected"`

	// Result is RawInput converted from SourceUnit to TargetUnit.
	Result float64 `json:"result" yaml:"result"`
}

// NewConversionState returns the state of a freshly opened screen.
func NewConversionState() ConversionState {
	return ConversionState{
		SourceUnit:   DefaultSourceUnit,
		TargetUnit:   DefaultTargetUnit,
		IsInputValid: true,
	}
}
