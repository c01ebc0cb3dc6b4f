package types

import "time"

// FormatConfig holds the number formatting options shared by the sanitizer
// and the result display.
type FormatConfig struct {
	// Locale is a BCP 47 tag ("de-DE") or POSIX locale ("de_DE.UTF-8").
	// Empty means detect the host locale from the environment.
	Locale string `json:"locale,omitempty" yaml:"locale,omitempty"`

	// DecimalSeparator overrides the locale decimal separator when set.
	DecimalSeparator string `json:"decimal_separator,omitempty" yaml:"decimal_separator,omitempty"`

	// GroupingSeparator groups integer digits while typing (default ".").
	GroupingSeparator string `json:"grouping_separator" yaml:"grouping_separator"`

	// MinFractionDigits is the minimum number of fraction digits in a
	// displayed result (default 0).
	MinFractionDigits int `json:"min_fraction_digits" yaml:"min_fraction_digits"`

	// MaxFractionDigits is the maximum number of fraction digits in a
	// displayed result (default 6).
	MaxFractionDigits int `json:"max_fraction_digits" yaml:"max_fraction_digits"`
}

// InputConfig holds settings for the text field.
type InputConfig struct {
	// MaxLength is the number of characters kept after an accepted edit
	// (default 9).
	MaxLength int `json:"max_length" yaml:"max_length"`
}

// UnitsConfig selects the pickers' initial units, also restored by reset.
type UnitsConfig struct {
	DefaultSource LengthUnit `json:"default_source" yaml:"default_source"`
	DefaultTarget LengthUnit `json:"default_target" yaml:"default_target"`
}

// PresentationConfig holds settings for the splash screen.
type PresentationConfig struct {
	// SplashDelay is how long the splash banner stays up (default 2s).
	SplashDelay time.Duration `json:"splash_delay" yaml:"splash_delay"`
}

// AppConfig groups all configuration sections.
type AppConfig struct {
	Format       FormatConfig       `json:"format" yaml:"format"`
	Input        InputConfig        `json:"input" yaml:"input"`
	Units        UnitsConfig        `json:"units" yaml:"units"`
	Presentation PresentationConfig `json:"presentation" yaml:"presentation"`
}

// DefaultAppConfig returns the configuration used when no file, flag, or
// environment variable overrides a value.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Format: FormatConfig{
			GroupingSeparator: ".",
			MinFractionDigits: 0,
			MaxFractionDigits: 6,
		},
		Input: InputConfig{MaxLength: 9},
		Units: UnitsConfig{
			DefaultSource: DefaultSourceUnit,
			DefaultTarget: DefaultTargetUnit,
		},
		Presentation: PresentationConfig{SplashDelay: 2 * time.Second},
	}
}
