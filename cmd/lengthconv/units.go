// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/lengthconv/pkg/types"
)

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List the supported length units",
	Long: `Units prints the metric ladder in picker order with each unit's
factor to meters.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		return writeUnits(cmd.OutOrStdout(), jsonOutput)
	},
}

type unitRow struct {
	Label         string           `json:"label"`
	Unit          types.LengthUnit `json:"unit"`
	FactorToMeter float64          `json:"factor_to_meter"`
}

func writeUnits(w io.Writer, jsonOutput bool) error {
	units := types.AllUnits()
	rows := make([]unitRow, len(units))
	for i, u := range units {
		rows[i] = unitRow{Label: u.Label(), Unit: u, FactorToMeter: u.FactorToMeter()}
	}

	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	fmt.Fprintf(w, "%-5s  %-4s  %s\n", "Label", "Unit", "Meters")
	fmt.Fprintln(w, strings.Repeat("-", 22))
	for _, r := range rows {
		fmt.Fprintf(w, "%-5s  %-4s  %s\n", r.Label, r.Unit, strconv.FormatFloat(r.FactorToMeter, 'f', -1, 64))
	}
	return nil
}

func init() {
	unitsCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(unitsCmd)
}
