/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Transports a server can listen on.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Config holds server settings. Values come from the environment first and
// may be overridden by command line flags.
type Config struct {
	Transport      string  `env:"PHENOAGE_TRANSPORT"        envDefault:"stdio"`
	HTTPAddr       string  `env:"PHENOAGE_HTTP_ADDR"        envDefault:"localhost:8081"`
	LogLevel       string  `env:"PHENOAGE_LOG_LEVEL"        envDefault:"info"`
	RateLimitRPS   float64 `env:"PHENOAGE_RATE_LIMIT_RPS"   envDefault:"10"`
	RateLimitBurst int     `env:"PHENOAGE_RATE_LIMIT_BURST" envDefault:"20"`
	// TrustProxy takes the client address from X-Forwarded-For. Enable it
	// only behind a reverse proxy that overwrites the header.
	TrustProxy bool `env:"PHENOAGE_TRUST_PROXY" envDefault:"false"`
}

// Load reads the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg.Transport = strings.ToLower(strings.TrimSpace(cfg.Transport))

	return cfg, nil
}

// Validate reports settings the server cannot run with.
func (c Config) Validate() error {
	switch c.Transport {
	case TransportStdio:
	case TransportHTTP:
		if strings.TrimSpace(c.HTTPAddr) == "" {
			return ErrHTTPAddrRequired
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidTransport, c.Transport)
	}

	if c.RateLimitRPS <= 0 {
		return fmt.Errorf("%w: rps %v", ErrInvalidRateLimit, c.RateLimitRPS)
	}

	if c.RateLimitBurst <= 0 {
		return fmt.Errorf("%w: burst %d", ErrInvalidRateLimit, c.RateLimitBurst)
	}

	return nil
}
