/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/phenoage/metrics"
	"github.com/humaidq/phenoage/phenoage"
)

// biomarkerFlagNames maps wire names to command line flag names.
var biomarkerFlagNames = map[string]string{
	"age":                 "age",
	"albumin":             "albumin",
	"creatinine":          "creatinine",
	"glucose":             "glucose",
	"crp":                 "crp",
	"lymphocytePercent":   "lymphocyte-percent",
	"meanCellVolume":      "mean-cell-volume",
	"redCellDistWidth":    "red-cell-dist-width",
	"alkalinePhosphatase": "alkaline-phosphatase",
	"whiteBloodCellCount": "white-blood-cell-count",
}

type computeOutput struct {
	Success bool             `json:"success" yaml:"success"`
	Error   string           `json:"error,omitempty" yaml:"error,omitempty"`
	Result  *phenoage.Report `json:"result,omitempty" yaml:"result,omitempty"`
}

// CmdCompute computes a phenotypic age from flags or a lab panel file.
var CmdCompute = newComputeCommand()

func newComputeCommand() *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:    "file",
			Aliases: []string{"f"},
			Usage:   "YAML lab panel to read biomarkers from (- for stdin); flags override its values",
		},
		formatFlag(),
	}

	for _, field := range phenoage.Fields() {
		flags = append(flags, &cli.FloatFlag{
			Name:  biomarkerFlagNames[field.Name],
			Usage: fmt.Sprintf("%s in %s (%g-%g)", field.Name, field.Unit, field.Min, field.Max),
		})
	}

	return &cli.Command{
		Name:   "compute",
		Usage:  "Calculate phenotypic age from biomarker values",
		Flags:  flags,
		Action: compute,
	}
}

func compute(ctx context.Context, cmd *cli.Command) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	in, err := candidateFromCommand(cmd)
	if err != nil {
		return err
	}

	w := cmd.Root().Writer

	result, err := phenoage.Compute(in)
	if err != nil {
		appLogger.Debug("calculation rejected", "outcome", metrics.Outcome(err), "error", err)

		if format != formatText {
			if encErr := encode(w, format, computeOutput{Success: false, Error: err.Error()}); encErr != nil {
				return encErr
			}
		}

		return fmt.Errorf("%w: %w", errComputeFailed, err)
	}

	report := phenoage.NewReport(*in.Age, result)
	if format == formatText {
		return writeReportText(w, report)
	}

	return encode(w, format, computeOutput{Success: true, Result: &report})
}

func candidateFromCommand(cmd *cli.Command) (phenoage.Input, error) {
	var in phenoage.Input

	if path := cmd.String("file"); path != "" {
		panel, err := readPanel(cmd, path)
		if err != nil {
			return phenoage.Input{}, err
		}

		in, err = panel.CandidateInput()
		if err != nil {
			return phenoage.Input{}, fmt.Errorf("%w: %w", errComputeFailed, err)
		}
	}

	for _, field := range phenoage.Fields() {
		name := biomarkerFlagNames[field.Name]
		if !cmd.IsSet(name) {
			continue
		}

		if err := in.Set(field.Name, cmd.Float(name)); err != nil {
			return phenoage.Input{}, err
		}
	}

	return in, nil
}

func readPanel(cmd *cli.Command, path string) (phenoage.LabPanel, error) {
	var r io.Reader

	if path == "-" {
		r = cmd.Root().Reader
	} else {
		f, err := os.Open(path)
		if err != nil {
			return phenoage.LabPanel{}, fmt.Errorf("failed to open lab panel: %w", err)
		}
		defer f.Close()

		r = f
	}

	return phenoage.ParseLabPanel(r)
}

func writeReportText(w io.Writer, r phenoage.Report) error {
	lines := []string{
		fmt.Sprintf("PhenoAge:           %.1f years", r.PhenoAge),
		fmt.Sprintf("Chronological age:  %.1f years", r.ChronologicalAge),
		fmt.Sprintf("Age difference:     %+.1f years", r.AgeDifference),
		fmt.Sprintf("Mortality score:    %.3f", r.MortalityScore),
		fmt.Sprintf("Interpretation:     %s", r.Interpretation),
		"",
		r.Summary,
	}
	if r.Warning != "" {
		lines = append(lines, "Warning: "+r.Warning)
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	return nil
}
