/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/flamego/flamego"

	"github.com/humaidq/phenoage/metrics"
	"github.com/humaidq/phenoage/phenoage"
)

const maxRequestBodyBytes = 64 << 10

type calculateResponse struct {
	Success bool             `json:"success"`
	Error   string           `json:"error,omitempty"`
	Result  *phenoage.Report `json:"result,omitempty"`
}

type rangesResponse struct {
	Success bool                           `json:"success"`
	Ranges  map[string]phenoage.RangeEntry `json:"ranges"`
	Notes   []string                       `json:"notes"`
}

// Calculate computes a phenotypic age from a JSON body of the ten biomarker
// fields.
func Calculate(c flamego.Context, recorder *metrics.Recorder) {
	var in phenoage.Input

	dec := json.NewDecoder(io.LimitReader(c.Request().Body().ReadCloser(), maxRequestBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(&in); err != nil {
		requestLogger.Debug("malformed request body", "error", err)
		recorder.ObserveComputation(metrics.TransportHTTP, phenoage.Result{}, err)
		writeFailure(c, http.StatusBadRequest, errInvalidRequestBody)

		return
	}

	result, err := phenoage.Compute(in)
	recorder.ObserveComputation(metrics.TransportHTTP, result, err)

	switch {
	case errors.Is(err, phenoage.ErrValidation):
		writeFailure(c, http.StatusBadRequest, err)
		return
	case err != nil:
		writeFailure(c, http.StatusUnprocessableEntity, err)
		return
	}

	report := phenoage.NewReport(*in.Age, result)
	writeJSON(c, http.StatusOK, calculateResponse{Success: true, Result: &report})
}

// Ranges returns the biomarker reference table.
func Ranges(c flamego.Context, recorder *metrics.Recorder) {
	recorder.ObserveRangeLookup(metrics.TransportHTTP)

	writeJSON(c, http.StatusOK, rangesResponse{
		Success: true,
		Ranges:  phenoage.ReferenceTable(),
		Notes:   phenoage.GetReferenceNotes(),
	})
}

func writeFailure(c flamego.Context, status int, err error) {
	writeJSON(c, status, calculateResponse{Success: false, Error: err.Error()})
}

func writeJSON(c flamego.Context, status int, v interface{}) {
	c.ResponseWriter().Header().Set("Content-Type", "application/json")
	c.ResponseWriter().WriteHeader(status)

	if err := json.NewEncoder(c.ResponseWriter()).Encode(v); err != nil {
		requestLogger.Error("failed to encode response", "error", err)
	}
}
