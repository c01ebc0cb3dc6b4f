// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the lengthconv CLI.
package main

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/lengthconv/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the lengthconv CLI.
var rootCmd = &cobra.Command{
	Use:   "lengthconv",
	Short: "Convert lengths between metric units",
	Long: `lengthconv converts a length between km, hm, dam, m, dm, cm, and mm.

Use "convert" for a one-shot conversion, "units" to list the unit table, and
"session" for the interactive conversion screen. Numbers are read and shown
with the host locale's decimal separator unless --locale or the config file
says otherwise.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./lengthconv.yaml or ~/.config/lengthconv/lengthconv.yaml)")
	rootCmd.PersistentFlags().String("locale", "", "locale for number parsing and display, e.g. de-DE (default: host locale)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	viper.BindPFlag("format.locale", rootCmd.PersistentFlags().Lookup("locale"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	setDefaults(types.DefaultAppConfig())
}

func setDefaults(cfg types.AppConfig) {
	viper.SetDefault("format.grouping_separator", cfg.Format.GroupingSeparator)
	viper.SetDefault("format.min_fraction_digits", cfg.Format.MinFractionDigits)
	viper.SetDefault("format.max_fraction_digits", cfg.Format.MaxFractionDigits)
	viper.SetDefault("input.max_length", cfg.Input.MaxLength)
	viper.SetDefault("units.default_source", string(cfg.Units.DefaultSource))
	viper.SetDefault("units.default_target", string(cfg.Units.DefaultTarget))
	viper.SetDefault("presentation.splash_delay", cfg.Presentation.SplashDelay)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("lengthconv")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "lengthconv"))
		}
	}

	viper.SetEnvPrefix("LENGTHCONV")
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()

	configErr := viper.ReadInConfig()
	initLogger()
	if configErr == nil {
		log.Debug().Str("file", viper.ConfigFileUsed()).Msg("using config file")
	}
}

// initLogger writes console-formatted logs to stderr; --verbose enables debug.
func initLogger() {
	level := zerolog.InfoLevel
	if viper.GetBool("verbose") {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).With().Timestamp().Logger()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
