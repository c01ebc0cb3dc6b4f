// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/lengthconv/internal/convert"
	"github.com/pdiddy/lengthconv/pkg/types"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags restores every flag of the shared command tree to its default
// so values set by one Execute do not leak into the next.
func resetFlags() {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	for _, c := range append([]*cobra.Command{rootCmd}, rootCmd.Commands()...) {
		c.Flags().VisitAll(reset)
		c.PersistentFlags().VisitAll(reset)
	}
}

func TestConvertCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "defaults m to cm", args: []string{"convert", "100", "--locale", "en"}, want: "100 M = 10,000 Cm\n"},
		{name: "km to mm", args: []string{"convert", "1", "--locale", "en", "--from", "km", "--to", "mm"}, want: "1 Km = 1,000,000 Mm\n"},
		{name: "german separators", args: []string{"convert", "1234,5", "--locale", "de-DE", "--from", "m", "--to", "km"}, want: "1.234,5 M = 1,2345 Km\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvertCommandRejectsMalformedValue(t *testing.T) {
	_, err := execute(t, "convert", "12.5.3", "--locale", "en", "--from", "m", "--to", "cm")
	require.Error(t, err)
	assert.ErrorIs(t, err, convert.ErrInvalidNumericInput)

	_, err = execute(t, "convert", "abc", "--locale", "en", "--from", "m", "--to", "cm")
	assert.ErrorIs(t, err, convert.ErrInvalidNumericInput)

	_, err = execute(t, "convert", "1", "--locale", "en", "--from", "yard", "--to", "cm")
	assert.ErrorIs(t, err, types.ErrUnknownUnit)
}

func TestConvertCommandFlagsDoNotLeak(t *testing.T) {
	got, err := execute(t, "convert", "2", "--locale", "de-DE", "--from", "km", "--to", "mm")
	require.NoError(t, err)
	assert.Equal(t, "2 Km = 2.000.000 Mm\n", got)

	got, err = execute(t, "convert", "2.5", "--locale", "en")
	require.NoError(t, err)
	assert.Equal(t, "2.5 M = 250 Cm\n", got)
}

func TestConvertCommandNegativeAfterDoubleDash(t *testing.T) {
	got, err := execute(t, "convert", "--locale", "en", "--", "-5")
	require.NoError(t, err)
	assert.Equal(t, "5 M = 500 Cm\n", got)

	_, err = execute(t, "convert", "-5")
	assert.Error(t, err, "a leading dash is parsed as a flag")
}

func TestWriteConversionJSON(t *testing.T) {
	var buf bytes.Buffer
	out := conversionOutput{
		Input: "100", Accepted: "100",
		Source: types.Meter, Target: types.Centimeter,
		Result: 10000, Formatted: "10,000",
	}
	require.NoError(t, writeConversion(&buf, out, "json"))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "m", decoded["source"])
	assert.Equal(t, 10000.0, decoded["result"])

	assert.Error(t, writeConversion(&buf, out, "xml"))
}

func TestWriteUnits(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeUnits(&buf, false))
	assert.Contains(t, buf.String(), "Dam    dam   10\n")
	assert.Contains(t, buf.String(), "Mm     mm    0.001\n")
}
