/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/phenoage/phenoage"
)

type rangesOutput struct {
	Success bool                           `json:"success" yaml:"success"`
	Ranges  map[string]phenoage.RangeEntry `json:"ranges" yaml:"ranges"`
	Notes   []string                       `json:"notes" yaml:"notes"`
}

// CmdRanges prints the biomarker reference ranges.
var CmdRanges = newRangesCommand()

func newRangesCommand() *cli.Command {
	return &cli.Command{
		Name:   "ranges",
		Usage:  "Show reference and optimal ranges for the biomarkers",
		Flags:  []cli.Flag{formatFlag()},
		Action: ranges,
	}
}

func ranges(ctx context.Context, cmd *cli.Command) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	w := cmd.Root().Writer

	if format == formatText {
		return writeRangesText(w)
	}

	return encode(w, format, rangesOutput{
		Success: true,
		Ranges:  phenoage.ReferenceTable(),
		Notes:   phenoage.GetReferenceNotes(),
	})
}

func writeRangesText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%-22s %-14s %-12s %s\n", "BIOMARKER", "UNIT", "REFERENCE", "OPTIMAL"); err != nil {
		return fmt.Errorf("failed to write ranges: %w", err)
	}

	for _, r := range phenoage.GetReferenceRanges() {
		if _, err := fmt.Fprintf(w, "%-22s %-14s %-12s %s\n", r.Biomarker, r.Unit, r.Reference(), r.Optimal()); err != nil {
			return fmt.Errorf("failed to write ranges: %w", err)
		}
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return fmt.Errorf("failed to write ranges: %w", err)
	}

	for _, note := range phenoage.GetReferenceNotes() {
		if _, err := fmt.Fprintf(w, "* %s\n", note); err != nil {
			return fmt.Errorf("failed to write ranges: %w", err)
		}
	}

	return nil
}
