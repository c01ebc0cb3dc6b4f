// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/pdiddy/lengthconv/internal/convert"
	"github.com/pdiddy/lengthconv/internal/locale"
	"github.com/pdiddy/lengthconv/pkg/types"
)

// envKeyReplacer maps "format.locale" to LENGTHCONV_FORMAT_LOCALE.
var envKeyReplacer = strings.NewReplacer(".", "_")

// appConfig reads the effective configuration from viper.
func appConfig() (types.AppConfig, error) {
	cfg := types.AppConfig{
		Format: types.FormatConfig{
			Locale:            viper.GetString("format.locale"),
			DecimalSeparator:  viper.GetString("format.decimal_separator"),
			GroupingSeparator: viper.GetString("format.grouping_separator"),
			MinFractionDigits: viper.GetInt("format.min_fraction_digits"),
			MaxFractionDigits: viper.GetInt("format.max_fraction_digits"),
		},
		Input: types.InputConfig{
			MaxLength: viper.GetInt("input.max_length"),
		},
		Presentation: types.PresentationConfig{
			SplashDelay: viper.GetDuration("presentation.splash_delay"),
		},
	}

	var err error
	if cfg.Units.DefaultSource, err = types.ParseLengthUnit(viper.GetString("units.default_source")); err != nil {
		return types.AppConfig{}, fmt.Errorf("units.default_source: %w", err)
	}
	if cfg.Units.DefaultTarget, err = types.ParseLengthUnit(viper.GetString("units.default_target")); err != nil {
		return types.AppConfig{}, fmt.Errorf("units.default_target: %w", err)
	}
	return cfg, nil
}

// newEngine builds the conversion engine for cfg against the host locale.
func newEngine(cfg types.AppConfig) (*convert.Engine, error) {
	f, err := locale.NewFormatters(cfg.Format, os.Getenv)
	if err != nil {
		return nil, fmt.Errorf("configuring number format: %w", err)
	}
	return convert.NewEngine(f.Input, f.Display,
		convert.WithMaxLength(cfg.Input.MaxLength),
		convert.WithDefaultUnits(cfg.Units.DefaultSource, cfg.Units.DefaultTarget),
	), nil
}
