// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := Config{
		Transport:      TransportStdio,
		HTTPAddr:       "localhost:8081",
		LogLevel:       "info",
		RateLimitRPS:   10,
		RateLimitBurst: 20,
	}
	if cfg != want {
		t.Fatalf("expected %+v, got %+v", want, cfg)
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PHENOAGE_TRANSPORT", " HTTP ")
	t.Setenv("PHENOAGE_HTTP_ADDR", ":9000")
	t.Setenv("PHENOAGE_LOG_LEVEL", "debug")
	t.Setenv("PHENOAGE_RATE_LIMIT_RPS", "2.5")
	t.Setenv("PHENOAGE_RATE_LIMIT_BURST", "5")
	t.Setenv("PHENOAGE_TRUST_PROXY", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Transport != TransportHTTP || cfg.HTTPAddr != ":9000" || cfg.LogLevel != "debug" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.RateLimitRPS != 2.5 || cfg.RateLimitBurst != 5 {
		t.Fatalf("unexpected rate limit: %+v", cfg)
	}

	if !cfg.TrustProxy {
		t.Fatalf("expected proxy headers to be trusted: %+v", cfg)
	}
}

func TestLoadError(t *testing.T) {
	t.Setenv("PHENOAGE_RATE_LIMIT_BURST", "lots")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	base := Config{
		Transport:      TransportHTTP,
		HTTPAddr:       "localhost:8081",
		RateLimitRPS:   1,
		RateLimitBurst: 1,
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "unknown transport", mutate: func(c *Config) { c.Transport = "grpc" }, want: ErrInvalidTransport},
		{name: "missing addr", mutate: func(c *Config) { c.HTTPAddr = " " }, want: ErrHTTPAddrRequired},
		{name: "stdio ignores addr", mutate: func(c *Config) { c.Transport = TransportStdio; c.HTTPAddr = "" }},
		{name: "zero rps", mutate: func(c *Config) { c.RateLimitRPS = 0 }, want: ErrInvalidRateLimit},
		{name: "negative burst", mutate: func(c *Config) { c.RateLimitBurst = -1 }, want: ErrInvalidRateLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := base
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
