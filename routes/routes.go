/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"net/http"

	"github.com/flamego/flamego"

	"github.com/humaidq/phenoage/metrics"
)

// Options configures the HTTP surface.
type Options struct {
	// Metrics may be nil, in which case /metrics answers 404.
	Metrics *metrics.Recorder
	// MCP is mounted at /mcp when set.
	MCP http.Handler

	RateLimitRPS   float64
	RateLimitBurst int
	// TrustProxy identifies clients by X-Forwarded-For instead of the
	// connection's peer address.
	TrustProxy bool
}

// New builds the HTTP application.
func New(opts Options) *flamego.Flame {
	f := flamego.New()
	f.Map(opts.Metrics)

	f.Use(ResolveClient(opts.TrustProxy))
	f.Use(RequestLogger)
	f.Use(NoCacheHeaders())

	f.Get("/healthz", Healthz)
	f.Get("/metrics", wrapHandler(opts.Metrics.Handler()))

	limit := RateLimit(opts.RateLimitRPS, opts.RateLimitBurst)

	f.Group("/api", func() {
		f.Post("/phenoage", Calculate)
		f.Get("/ranges", Ranges)
	}, limit)

	if opts.MCP != nil {
		f.Any("/mcp", limit, wrapHandler(opts.MCP))
	}

	return f
}
