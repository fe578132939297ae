/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/urfave/cli/v3"
	"golang.org/x/net/netutil"

	"github.com/humaidq/phenoage/config"
	"github.com/humaidq/phenoage/logging"
	"github.com/humaidq/phenoage/mcpserver"
	"github.com/humaidq/phenoage/metrics"
	"github.com/humaidq/phenoage/routes"
)

const (
	shutdownTimeout    = 10 * time.Second
	maxHTTPConnections = 256
)

// Version is reported to MCP clients and by --version.
var Version = "dev"

// CmdServe starts the MCP server.
var CmdServe = newServeCommand()

func newServeCommand() *cli.Command {
	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"run"},
		Usage:   "Start the MCP server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "transport",
				Usage: "transport to serve on [stdio, http] (env PHENOAGE_TRANSPORT)",
			},
			&cli.StringFlag{
				Name:  "addr",
				Usage: "listen address for the http transport (env PHENOAGE_HTTP_ADDR)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "minimum log level [debug, info, warn, error] (env PHENOAGE_LOG_LEVEL)",
			},
			&cli.FloatFlag{
				Name:  "rate-limit-rps",
				Usage: "requests per second allowed per client over http (env PHENOAGE_RATE_LIMIT_RPS)",
			},
			&cli.IntFlag{
				Name:  "rate-limit-burst",
				Usage: "request burst allowed per client over http (env PHENOAGE_RATE_LIMIT_BURST)",
			},
			&cli.BoolFlag{
				Name:  "trust-proxy",
				Usage: "identify clients by X-Forwarded-For; only behind a trusted reverse proxy (env PHENOAGE_TRUST_PROXY)",
			},
		},
		Action: serve,
	}
}

func serve(ctx context.Context, cmd *cli.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	if err := logging.SetLevel(cfg.LogLevel); err != nil {
		return err
	}

	recorder := metrics.New()
	server := mcpserver.New(Version, recorder)

	if cfg.Transport == config.TransportStdio {
		appLogger.Info("starting MCP server", "transport", cfg.Transport, "version", Version)
		return server.Serve(ctx)
	}

	ln, err := net.Listen("tcp", cfg.HTTPAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.HTTPAddr, err)
	}

	ln = netutil.LimitListener(ln, maxHTTPConnections)

	appLogger.Info("starting MCP server", "transport", cfg.Transport, "addr", ln.Addr().String(), "version", Version)

	handler := routes.New(routes.Options{
		Metrics:        recorder,
		MCP:            server.HTTPHandler(),
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		TrustProxy:     cfg.TrustProxy,
	})

	return serveHTTP(ctx, ln, handler)
}

// resolveConfig loads the environment configuration and applies any flags
// given on the command line.
func resolveConfig(cmd *cli.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}

	if cmd.IsSet("transport") {
		cfg.Transport = strings.ToLower(strings.TrimSpace(cmd.String("transport")))
	}

	if cmd.IsSet("addr") {
		cfg.HTTPAddr = cmd.String("addr")
	}

	if cmd.IsSet("log-level") {
		cfg.LogLevel = cmd.String("log-level")
	}

	if cmd.IsSet("rate-limit-rps") {
		cfg.RateLimitRPS = cmd.Float("rate-limit-rps")
	}

	if cmd.IsSet("rate-limit-burst") {
		cfg.RateLimitBurst = cmd.Int("rate-limit-burst")
	}

	if cmd.IsSet("trust-proxy") {
		cfg.TrustProxy = cmd.Bool("trust-proxy")
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// serveHTTP serves until the listener fails or the context ends, then shuts
// the server down gracefully.
func serveHTTP(ctx context.Context, ln net.Listener, handler http.Handler) error {
	// No write timeout: MCP responses may stream.
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		ErrorLog:          httpStdLogger,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return fmt.Errorf("failed to serve http: %w", err)
	case <-ctx.Done():
	}

	appLogger.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down http server: %w", err)
	}

	return nil
}
