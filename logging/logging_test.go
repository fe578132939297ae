// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"testing"

	"github.com/charmbracelet/log"
)

func TestLoggerInitializers(t *testing.T) {
	t.Parallel()

	Init()
	if l := Logger(SourceApp); l == nil {
		t.Fatal("Logger returned nil")
	}
	if l := StdLogger(SourceHTTP); l == nil {
		t.Fatal("StdLogger returned nil")
	}
}

//nolint:paralleltest // mutates the process-wide level
func TestSetLevel(t *testing.T) {
	early := Logger(SourceMCP)

	t.Cleanup(func() {
		_ = SetLevel("info")
	})

	if err := SetLevel("debug"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if Level() != log.DebugLevel {
		t.Fatalf("expected debug level, got %v", Level())
	}

	if early.GetLevel() != log.DebugLevel {
		t.Fatalf("expected existing logger to follow level change, got %v", early.GetLevel())
	}

	if late := Logger(SourceHTTPRequest); late.GetLevel() != log.DebugLevel {
		t.Fatalf("expected new logger at debug level, got %v", late.GetLevel())
	}

	if err := SetLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
