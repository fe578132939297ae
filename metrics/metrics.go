/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package metrics

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/humaidq/phenoage/phenoage"
)

// Transport label values.
const (
	TransportMCP  = "mcp"
	TransportHTTP = "http"
)

// Outcome label values.
const (
	OutcomeSuccess          = "success"
	OutcomeValidationError  = "validation_error"
	OutcomeComputationError = "computation_error"
	OutcomeError            = "error"
)

// Recorder collects calculator metrics on its own registry. A nil *Recorder
// records nothing.
type Recorder struct {
	registry      *prometheus.Registry
	computations  *prometheus.CounterVec
	clamped       *prometheus.CounterVec
	rangeLookups  *prometheus.CounterVec
	ageDifference prometheus.Histogram
}

// New creates a Recorder with all collectors registered.
func New() *Recorder {
	r := &Recorder{registry: prometheus.NewRegistry()}

	r.computations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "phenoage_computations_total",
		Help: "Phenotypic age computations by transport and outcome.",
	}, []string{"transport", "outcome"})
	r.clamped = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "phenoage_clamped_total",
		Help: "Computations whose mortality score was clamped.",
	}, []string{"transport"})
	r.rangeLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "phenoage_range_lookups_total",
		Help: "Reference range lookups by transport.",
	}, []string{"transport"})
	r.ageDifference = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "phenoage_age_difference_years",
		Help:    "Phenotypic minus chronological age of successful computations.",
		Buckets: []float64{-10, -5, 2, 5, 10, 20, 40},
	})

	r.registry.MustRegister(r.computations, r.clamped, r.rangeLookups, r.ageDifference)

	return r
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}

	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// ObserveComputation records the outcome of one compute call.
func (r *Recorder) ObserveComputation(transport string, result phenoage.Result, err error) {
	if r == nil {
		return
	}

	outcome := Outcome(err)
	r.computations.WithLabelValues(transport, outcome).Inc()

	if outcome != OutcomeSuccess {
		return
	}

	r.ageDifference.Observe(result.AgeDifference)
	if result.WasClamped {
		r.clamped.WithLabelValues(transport).Inc()
	}
}

// ObserveRangeLookup records one reference range lookup.
func (r *Recorder) ObserveRangeLookup(transport string) {
	if r == nil {
		return
	}

	r.rangeLookups.WithLabelValues(transport).Inc()
}

// Outcome maps a compute error to its outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, phenoage.ErrValidation):
		return OutcomeValidationError
	case errors.Is(err, phenoage.ErrComputation):
		return OutcomeComputationError
	default:
		return OutcomeError
	}
}
