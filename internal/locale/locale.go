// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package locale resolves the host locale and derives the number formatters
// the conversion screen uses from it.
package locale

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/pdiddy/lengthconv/internal/numfmt"
	"github.com/pdiddy/lengthconv/pkg/types"
)

// envKeys are consulted in POSIX precedence order.
var envKeys = []string{"LC_ALL", "LC_NUMERIC", "LANG"}

// sample has enough integer digits that every locale with grouping shows it.
const sample = 1234567.5

// Detect returns the host locale from the environment. POSIX names such as
// "de_DE.UTF-8" are accepted; "C", "POSIX", unset, or unparseable values
// resolve to English.
func Detect(getenv func(string) string) language.Tag {
	for _, key := range envKeys {
		v := getenv(key)
		if v == "" {
			continue
		}
		tag, err := Parse(v)
		if err != nil {
			return language.English
		}
		return tag
	}
	return language.English
}

// Parse accepts a BCP 47 tag or a POSIX locale name.
func Parse(name string) (language.Tag, error) {
	name = strings.TrimSpace(name)
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	switch name {
	case "", "C", "POSIX":
		return language.English, nil
	}
	tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil {
		return language.Und, fmt.Errorf("parsing locale %q: %w", name, err)
	}
	return tag, nil
}

// Symbols returns the decimal and grouping separators of tag, read back from
// the CLDR decimal pattern. group is 0 when the locale does not group.
func Symbols(tag language.Tag) (decimal, group rune) {
	s := message.NewPrinter(tag).Sprintf("%v", number.Decimal(sample))
	var seps []rune
	for _, r := range s {
		if !unicode.IsDigit(r) {
			seps = append(seps, r)
		}
	}
	switch len(seps) {
	case 0:
		return '.', 0
	case 1:
		return seps[0], 0
	default:
		return seps[len(seps)-1], seps[0]
	}
}

// Formatters holds the two formatters of the conversion screen: Input
// groups digits while typing, Display renders results.
type Formatters struct {
	Tag     language.Tag
	Input   *numfmt.Decimal
	Display *numfmt.Decimal
}

// NewFormatters builds the screen formatters from cfg. An empty cfg.Locale
// falls back to the host locale read through getenv.
func NewFormatters(cfg types.FormatConfig, getenv func(string) string) (Formatters, error) {
	tag := Detect(getenv)
	if cfg.Locale != "" {
		t, err := Parse(cfg.Locale)
		if err != nil {
			return Formatters{}, err
		}
		tag = t
	}

	decimal, group := Symbols(tag)
	if cfg.DecimalSeparator != "" {
		r, err := singleRune("decimal_separator", cfg.DecimalSeparator)
		if err != nil {
			return Formatters{}, err
		}
		decimal = r
	}

	var inputGroup rune
	if cfg.GroupingSeparator != "" {
		r, err := singleRune("grouping_separator", cfg.GroupingSeparator)
		if err != nil {
			return Formatters{}, err
		}
		inputGroup = r
	}
	if unicode.IsDigit(decimal) || unicode.IsDigit(inputGroup) {
		return Formatters{}, fmt.Errorf("separators must not be digits")
	}
	if group == decimal {
		group = 0
	}

	return Formatters{
		Tag: tag,
		Input: numfmt.New(numfmt.Options{
			DecimalSeparator:  decimal,
			GroupingSeparator: inputGroup,
		}),
		Display: numfmt.New(numfmt.Options{
			DecimalSeparator:  decimal,
			GroupingSeparator: group,
			MinFractionDigits: cfg.MinFractionDigits,
			MaxFractionDigits: cfg.MaxFractionDigits,
		}),
	}, nil
}

func singleRune(key, s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%s must be a single character, got %q", key, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
