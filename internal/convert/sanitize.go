// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/lengthconv/internal/numfmt"
)

// DefaultMaxLength is the number of characters the text field keeps.
const DefaultMaxLength = 9

// Outcome classifies a sanitized edit.
type Outcome int

const (
	// Accepted means the edit parsed and Text holds the regrouped value.
	Accepted Outcome = iota
	// Cleared means nothing numeric was left and the field is now empty.
	Cleared
	// Rejected means the edit did not parse and Text is the previous value.
	Rejected
)

func (o Outcome) String() string {
	switch o {
	case Accepted:
		return "accepted"
	case Cleared:
		return "cleared"
	case Rejected:
		return "rejected"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// SanitizeResult is the decision for one edit of the text field.
type SanitizeResult struct {
	// Text is the next content of the field.
	Text    string
	Outcome Outcome
	// Truncated is set when an accepted value was cut to the maximum length.
	Truncated bool
	// Err wraps ErrInvalidNumericInput when Outcome is Rejected.
	Err error
}

// Filter keeps only ASCII digits and the decimal separator.
func Filter(text string, decimal rune) string {
	return strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == decimal {
			return r
		}
		return -1
	}, text)
}

// Sanitize decides the next field content after the user changed it from
// prevText to newText. The new text is filtered to digits and the decimal
// separator; an empty result clears the field, a number is regrouped and
// accepted, anything else is rejected and prevText is kept. Accepted text is
// cut to maxLen characters (maxLen <= 0 disables the limit) and regrouped
// after the cut, so sanitizing an accepted value again returns it unchanged.
func Sanitize(newText, prevText string, f numfmt.Formatter, maxLen int) SanitizeResult {
	filtered := Filter(newText, f.DecimalSeparator())
	if filtered == "" {
		return SanitizeResult{Outcome: Cleared}
	}

	formatted, err := f.FormatInput(filtered)
	if err != nil {
		return SanitizeResult{
			Text:    prevText,
			Outcome: Rejected,
			Err:     fmt.Errorf("%w: %v", ErrInvalidNumericInput, err),
		}
	}

	res := SanitizeResult{Text: formatted, Outcome: Accepted}
	for maxLen > 0 && utf8.RuneCountInString(res.Text) > maxLen {
		res.Truncated = true
		cut := Filter(prefix(res.Text, maxLen), f.DecimalSeparator())
		next, err := f.FormatInput(cut)
		if err != nil {
			res.Text = prefix(res.Text, maxLen)
			break
		}
		res.Text = next
	}
	return res
}

// prefix returns the first n runes of s.
func prefix(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
