// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package numfmt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func comma() *Decimal {
	return New(Options{DecimalSeparator: ',', GroupingSeparator: '.', MaxFractionDigits: 6})
}

func TestNewNormalizesOptions(t *testing.T) {
	d := New(Options{GroupingSeparator: '.', MinFractionDigits: 9, MaxFractionDigits: 2})
	opts := d.Options()
	assert.Equal(t, '.', opts.DecimalSeparator)
	assert.Equal(t, rune(0), opts.GroupingSeparator, "grouping equal to decimal separator is disabled")
	assert.Equal(t, 2, opts.MinFractionDigits)
	assert.Equal(t, 2, opts.MaxFractionDigits)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		fmt     *Decimal
		input   string
		want    float64
		wantErr bool
	}{
		{name: "integer", fmt: New(Options{}), input: "100", want: 100},
		{name: "fraction", fmt: New(Options{}), input: "12.5", want: 12.5},
		{name: "trailing separator", fmt: New(Options{}), input: "12.", want: 12},
		{name: "leading separator", fmt: New(Options{}), input: ".5", want: 0.5},
		{name: "comma decimal", fmt: comma(), input: "3,25", want: 3.25},
		{name: "grouped integer", fmt: comma(), input: "1.234.567", want: 1234567},
		{name: "grouped with fraction", fmt: comma(), input: "1.234,5", want: 1234.5},
		{name: "lone separator", fmt: New(Options{}), input: ".", wantErr: true},
		{name: "empty", fmt: New(Options{}), input: "", wantErr: true},
		{name: "two separators", fmt: New(Options{}), input: "12.5.3", wantErr: true},
		{name: "foreign rune", fmt: New(Options{}), input: "1e5", wantErr: true},
		{name: "grouping in fraction", fmt: comma(), input: "1,2.3", wantErr: true},
		{name: "sign rejected", fmt: New(Options{}), input: "-4", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fmt.Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrMalformed)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestFormatInput(t *testing.T) {
	tests := []struct {
		name  string
		fmt   *Decimal
		input string
		want  string
	}{
		{name: "short integer untouched", fmt: comma(), input: "123", want: "123"},
		{name: "groups thousands", fmt: comma(), input: "1234", want: "1.234"},
		{name: "groups millions", fmt: comma(), input: "1234567", want: "1.234.567"},
		{name: "regroups stale grouping", fmt: comma(), input: "123.4567", want: "1.234.567"},
		{name: "keeps trailing separator", fmt: comma(), input: "1234,", want: "1.234,"},
		{name: "keeps trailing zeros", fmt: comma(), input: "0,50", want: "0,50"},
		{name: "drops leading zeros", fmt: comma(), input: "007", want: "7"},
		{name: "fills missing integer part", fmt: comma(), input: ",5", want: "0,5"},
		{name: "no grouping with dot decimal", fmt: New(Options{GroupingSeparator: '.'}), input: "123456.78", want: "123456.78"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fmt.FormatInput(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("rejects malformed", func(t *testing.T) {
		_, err := comma().FormatInput("1,2,3")
		assert.ErrorIs(t, err, ErrMalformed)
	})
}

func TestFormatResult(t *testing.T) {
	en := New(Options{DecimalSeparator: '.', GroupingSeparator: ',', MaxFractionDigits: 6})
	de := New(Options{DecimalSeparator: ',', GroupingSeparator: '.', MaxFractionDigits: 6})

	tests := []struct {
		name string
		fmt  *Decimal
		v    float64
		want string
	}{
		{name: "zero", fmt: en, v: 0, want: "0"},
		{name: "integer grouped", fmt: en, v: 1000000, want: "1,000,000"},
		{name: "trailing zeros suppressed", fmt: en, v: 12.5, want: "12.5"},
		{name: "rounded to six digits", fmt: en, v: 1.23456789, want: "1.234568"},
		{name: "tiny value rounds to zero", fmt: en, v: 0.0000001, want: "0"},
		{name: "locale separators", fmt: de, v: 1234.5, want: "1.234,5"},
		{name: "negative", fmt: en, v: -2.5, want: "-2.5"},
		{name: "negative rounding to zero drops sign", fmt: en, v: -0.0000001, want: "0"},
		{name: "NaN", fmt: en, v: math.NaN(), want: "0"},
		{name: "infinity", fmt: en, v: math.Inf(1), want: "0"},
		{name: "min fraction digits", fmt: New(Options{MinFractionDigits: 2, MaxFractionDigits: 6}), v: 3, want: "3.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fmt.FormatResult(tt.v))
		})
	}
}
