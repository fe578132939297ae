// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"
)

// runCommand runs c under a root command that captures its output.
func runCommand(t *testing.T, c *cli.Command, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	root := &cli.Command{
		Name:     "phenoage",
		Writer:   &out,
		Reader:   strings.NewReader(stdin),
		Commands: []*cli.Command{c},
	}

	err := root.Run(context.Background(), append([]string{"phenoage", c.Name}, args...))

	return out.String(), err
}
