/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/phenoage/cmd"
	"github.com/humaidq/phenoage/logging"
)

func main() {
	logging.Init()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &cli.Command{
		Name:    "phenoage",
		Usage:   "PhenoAge - biological age from blood biomarkers",
		Version: cmd.Version,
		Commands: []*cli.Command{
			cmd.CmdServe,
			cmd.CmdCompute,
			cmd.CmdRanges,
		},
	}

	if err := app.Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}
