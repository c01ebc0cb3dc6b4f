// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"

	"github.com/pdiddy/lengthconv/internal/numfmt"
	"github.com/pdiddy/lengthconv/pkg/types"
)

// Event is a user action on the conversion screen.
type Event interface {
	isEvent()
}

// Edit replaces the text field content with Text.
type Edit struct{ Text string }

// SelectSource changes the source unit picker.
type SelectSource struct{ Unit types.LengthUnit }

// SelectTarget changes the target unit picker.
type SelectTarget struct{ Unit types.LengthUnit }

// Reset restores the screen to its initial state.
type Reset struct{}

func (Edit) isEvent()         {}
func (SelectSource) isEvent() {}
func (SelectTarget) isEvent() {}
func (Reset) isEvent()        {}

// Engine applies events to a ConversionState.
type Engine struct {
	input         numfmt.Formatter
	display       numfmt.Formatter
	maxLength     int
	defaultSource types.LengthUnit
	defaultTarget types.LengthUnit
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithMaxLength sets the number of characters the text field keeps
// (default DefaultMaxLength). Zero or less disables truncation.
func WithMaxLength(n int) EngineOption {
	return func(e *Engine) {
		e.maxLength = n
	}
}

// WithDefaultUnits sets the units of a fresh or reset screen
// (default m and cm). Invalid units are ignored.
func WithDefaultUnits(source, target types.LengthUnit) EngineOption {
	return func(e *Engine) {
		if source.Valid() {
			e.defaultSource = source
		}
		if target.Valid() {
			e.defaultTarget = target
		}
	}
}

// NewEngine returns an Engine that sanitizes edits with input and renders
// results with display.
func NewEngine(input, display numfmt.Formatter, opts ...EngineOption) *Engine {
	e := &Engine{
		input:         input,
		display:       display,
		maxLength:     DefaultMaxLength,
		defaultSource: types.DefaultSourceUnit,
		defaultTarget: types.DefaultTargetUnit,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Initial returns the state of a freshly opened screen.
func (e *Engine) Initial() types.ConversionState {
	s := types.NewConversionState()
	s.SourceUnit = e.defaultSource
	s.TargetUnit = e.defaultTarget
	return s
}

// Apply returns the state after ev. The returned state is always consistent;
// the error is informational: ErrInvalidNumericInput for a rejected edit,
// types.ErrUnknownUnit for an unknown picker value. In both cases the state
// keeps its previous values.
func (e *Engine) Apply(s types.ConversionState, ev Event) (types.ConversionState, error) {
	s.Rejected = false

	switch ev := ev.(type) {
	case Edit:
		res := Sanitize(ev.Text, s.RawInput, e.input, e.maxLength)
		switch res.Outcome {
		case Rejected:
			s.Rejected = true
			return s, res.Err
		case Cleared:
			s.RawInput = ""
			s.IsInputValid = true
			s.Result = 0
			return s, nil
		}
		s.RawInput = res.Text
		s.IsInputValid = true
	case SelectSource:
		if !ev.Unit.Valid() {
			return s, fmt.Errorf("%w: %q", types.ErrUnknownUnit, string(ev.Unit))
		}
		s.SourceUnit = ev.Unit
	case SelectTarget:
		if !ev.Unit.Valid() {
			return s, fmt.Errorf("%w: %q", types.ErrUnknownUnit, string(ev.Unit))
		}
		s.TargetUnit = ev.Unit
	case Reset:
		return e.Initial(), nil
	default:
		return s, fmt.Errorf("unsupported event %T", ev)
	}

	return e.Recompute(s), nil
}

// Recompute refreshes IsInputValid and Result from the other fields. It is
// used after events and on states that came from outside, such as a decoded
// snapshot.
func (e *Engine) Recompute(s types.ConversionState) types.ConversionState {
	if s.RawInput == "" {
		s.IsInputValid = true
		s.Result = 0
		return s
	}
	_, err := e.input.Parse(s.RawInput)
	s.IsInputValid = err == nil
	s.Result = Convert(s.RawInput, s.SourceUnit, s.TargetUnit, s.IsInputValid, e.input)
	return s
}

// FormatResult renders s.Result for display.
func (e *Engine) FormatResult(s types.ConversionState) string {
	return e.display.FormatResult(s.Result)
}
