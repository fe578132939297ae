/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package mcpserver

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/humaidq/phenoage/metrics"
	"github.com/humaidq/phenoage/phenoage"
)

// Tool names.
const (
	CalculateToolName = "calculate_phenoage"
	RangesToolName    = "get_biomarker_ranges"
)

// CalculateInput represents the MCP tool input for a phenotypic age
// calculation. Fields are optional in the schema so that a missing value is
// reported by the calculator with its accepted range.
type CalculateInput struct {
	Age                 *float64 `json:"age,omitempty" jsonschema:"chronological age in years (0-120)"`
	Albumin             *float64 `json:"albumin,omitempty" jsonschema:"serum albumin in g/dL (1-6)"`
	Creatinine          *float64 `json:"creatinine,omitempty" jsonschema:"serum creatinine in mg/dL (0.1-15)"`
	Glucose             *float64 `json:"glucose,omitempty" jsonschema:"fasting glucose in mg/dL (30-500)"`
	CRP                 *float64 `json:"crp,omitempty" jsonschema:"C-reactive protein in mg/L (0.01-100)"`
	LymphocytePercent   *float64 `json:"lymphocytePercent,omitempty" jsonschema:"lymphocytes as percent of white cells (0-100)"`
	MeanCellVolume      *float64 `json:"meanCellVolume,omitempty" jsonschema:"mean cell volume in fL (50-150)"`
	RedCellDistWidth    *float64 `json:"redCellDistWidth,omitempty" jsonschema:"red cell distribution width in percent (5-30)"`
	AlkalinePhosphatase *float64 `json:"alkalinePhosphatase,omitempty" jsonschema:"alkaline phosphatase in U/L (10-500)"`
	WhiteBloodCellCount *float64 `json:"whiteBloodCellCount,omitempty" jsonschema:"white blood cell count in 1000 cells/uL (1-50)"`
}

func (in CalculateInput) candidate() phenoage.Input {
	return phenoage.Input{
		Age:                 in.Age,
		Albumin:             in.Albumin,
		Creatinine:          in.Creatinine,
		Glucose:             in.Glucose,
		CRP:                 in.CRP,
		LymphocytePercent:   in.LymphocytePercent,
		MeanCellVolume:      in.MeanCellVolume,
		RedCellDistWidth:    in.RedCellDistWidth,
		AlkalinePhosphatase: in.AlkalinePhosphatase,
		WhiteBloodCellCount: in.WhiteBloodCellCount,
	}
}

// CalculateOutput represents the MCP tool output for a calculation.
type CalculateOutput struct {
	Success bool             `json:"success" jsonschema:"whether the calculation succeeded"`
	Error   string           `json:"error,omitempty" jsonschema:"reason the calculation failed"`
	Result  *phenoage.Report `json:"result,omitempty" jsonschema:"calculation result"`
}

// RangesInput represents the (empty) MCP tool input for range lookup.
type RangesInput struct{}

// RangesOutput represents the MCP tool output for range lookup.
type RangesOutput struct {
	Success bool                           `json:"success" jsonschema:"always true"`
	Ranges  map[string]phenoage.RangeEntry `json:"ranges" jsonschema:"reference ranges keyed by biomarker"`
	Notes   []string                       `json:"notes" jsonschema:"notes on units and interpretation"`
}

// CalculateTool defines the MCP tool schema for a calculation.
func CalculateTool() *mcp.Tool {
	return &mcp.Tool{
		Name: CalculateToolName,
		Description: "Calculates phenotypic (biological) age from nine blood biomarkers and chronological age. " +
			"Values must use the documented units; no conversion is performed.",
	}
}

// RangesTool defines the MCP tool schema for range lookup.
func RangesTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        RangesToolName,
		Description: "Returns reference and optimal ranges, with units, for the biomarkers used by calculate_phenoage.",
	}
}

// CalculateHandler validates the arguments and computes a phenotypic age.
// Validation and computation failures are returned as tool errors, never as
// protocol errors.
func CalculateHandler(recorder *metrics.Recorder) mcp.ToolHandlerFor[CalculateInput, CalculateOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CalculateInput) (*mcp.CallToolResult, CalculateOutput, error) {
		invocation := mcpLogger.With("tool", CalculateToolName, "invocation_id", uuid.NewString())
		invocation.Debug("tool invoked")

		in := input.candidate()

		result, err := phenoage.Compute(in)
		recorder.ObserveComputation(metrics.TransportMCP, result, err)

		if err != nil {
			invocation.Warn("calculation rejected", "outcome", metrics.Outcome(err), "error", err)
			return toolFailure(CalculateOutput{Success: false, Error: err.Error()})
		}

		report := phenoage.NewReport(*in.Age, result)
		invocation.Info("calculation complete",
			"pheno_age", result.PhenoAge,
			"age_difference", result.AgeDifference,
			"was_clamped", result.WasClamped,
		)

		return nil, CalculateOutput{Success: true, Result: &report}, nil
	}
}

// RangesHandler returns the biomarker reference table.
func RangesHandler(recorder *metrics.Recorder) mcp.ToolHandlerFor[RangesInput, RangesOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ RangesInput) (*mcp.CallToolResult, RangesOutput, error) {
		mcpLogger.Debug("tool invoked", "tool", RangesToolName, "invocation_id", uuid.NewString())
		recorder.ObserveRangeLookup(metrics.TransportMCP)

		return nil, RangesOutput{
			Success: true,
			Ranges:  phenoage.ReferenceTable(),
			Notes:   phenoage.GetReferenceNotes(),
		}, nil
	}
}

// toolFailure marks the result as a tool error and carries the output as its
// text content.
func toolFailure[O any](out O) (*mcp.CallToolResult, O, error) {
	payload, err := json.Marshal(out)
	if err != nil {
		return nil, out, err
	}

	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: string(payload)}},
	}, out, nil
}
