// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/lengthconv/internal/convert"
	"github.com/pdiddy/lengthconv/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert <value>",
	Short: "Convert a single length value",
	Long: `Convert runs value through the same filtering and validation as the
interactive screen, then converts it from --from to --to. Characters other
than digits and the decimal separator are dropped; input longer than the
field allows is truncated.

A value starting with "-" would be read as a flag; put it after "--"
(lengthconv convert -- -5). The sign is dropped like any other character.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

// conversionOutput is the machine-readable result of convert.
type conversionOutput struct {
	Input     string           `json:"input" yaml:"input"`
	Accepted  string           `json:"accepted" yaml:"accepted"`
	Source    types.LengthUnit `json:"source" yaml:"source"`
	Target    types.LengthUnit `json:"target" yaml:"target"`
	Result    float64          `json:"result" yaml:"result"`
	Formatted string           `json:"formatted" yaml:"formatted"`
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := appConfig()
	if err != nil {
		return err
	}
	engine, err := newEngine(cfg)
	if err != nil {
		return err
	}

	state := engine.Initial()
	for _, flag := range []string{"from", "to"} {
		name, _ := cmd.Flags().GetString(flag)
		if name == "" {
			continue
		}
		u, err := types.ParseLengthUnit(name)
		if err != nil {
			return fmt.Errorf("--%s: %w", flag, err)
		}
		var ev convert.Event = convert.SelectSource{Unit: u}
		if flag == "to" {
			ev = convert.SelectTarget{Unit: u}
		}
		if state, err = engine.Apply(state, ev); err != nil {
			return err
		}
	}

	state, err = engine.Apply(state, convert.Edit{Text: args[0]})
	if err != nil {
		return err
	}
	if state.RawInput == "" {
		return fmt.Errorf("%w: %q has no digits", convert.ErrInvalidNumericInput, args[0])
	}
	log.Debug().Str("input", args[0]).Str("accepted", state.RawInput).Msg("sanitized")

	out := conversionOutput{
		Input:     args[0],
		Accepted:  state.RawInput,
		Source:    state.SourceUnit,
		Target:    state.TargetUnit,
		Result:    state.Result,
		Formatted: engine.FormatResult(state),
	}
	format, _ := cmd.Flags().GetString("output")
	return writeConversion(cmd.OutOrStdout(), out, format)
}

func writeConversion(w io.Writer, out conversionOutput, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "yaml":
		data, err := yaml.Marshal(&out)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case "text", "":
		_, err := fmt.Fprintf(w, "%s %s = %s %s\n",
			out.Accepted, out.Source.Label(), out.Formatted, out.Target.Label())
		return err
	default:
		return fmt.Errorf("unsupported output format %q: use text, json, or yaml", format)
	}
}

func init() {
	convertCmd.Flags().String("from", "", "source unit (default from config, m)")
	convertCmd.Flags().String("to", "", "target unit (default from config, cm)")
	convertCmd.Flags().StringP("output", "o", "text", "output format: text, json, or yaml")

	rootCmd.AddCommand(convertCmd)
}
