/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package logging

import (
	"fmt"
	stdlog "log"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Log source tags used in structured logger contexts.
const (
	SourceApp         = "app"
	SourceMCP         = "mcp"
	SourceHTTP        = "http"
	SourceHTTPRequest = "http_request"
)

var (
	initOnce   sync.Once
	baseLogger *log.Logger

	mu      sync.Mutex
	level   = log.InfoLevel
	derived []*log.Logger
)

// Init configures the base logger and stdlib log output. Logs go to stderr,
// stdout is reserved for protocol and command output.
func Init() {
	initOnce.Do(func() {
		baseLogger = log.NewWithOptions(os.Stderr, log.Options{
			TimeFunction:    log.NowUTC,
			TimeFormat:      time.RFC3339Nano,
			Level:           level,
			ReportTimestamp: true,
			Formatter:       log.LogfmtFormatter,
		})

		stdLogger := track(baseLogger.With("source", SourceApp)).StandardLog(log.StandardLogOptions{ForceLevel: log.InfoLevel})

		stdlog.SetFlags(0)
		stdlog.SetOutput(stdLogger.Writer())
	})
}

// Logger returns a logfmt logger tagged with the provided source.
func Logger(source string) *log.Logger {
	Init()
	return track(baseLogger.With("source", source))
}

// StdLogger returns a stdlib logger that writes logfmt output with a source.
func StdLogger(source string) *stdlog.Logger {
	return Logger(source).StandardLog(log.StandardLogOptions{ForceLevel: log.InfoLevel})
}

// SetLevel changes the minimum level of the base logger and every logger
// handed out so far. Accepted names are debug, info, warn, error and fatal.
func SetLevel(name string) error {
	parsed, err := log.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", name, err)
	}

	Init()

	mu.Lock()
	defer mu.Unlock()

	level = parsed
	baseLogger.SetLevel(parsed)
	for _, l := range derived {
		l.SetLevel(parsed)
	}

	return nil
}

// Level returns the current minimum level.
func Level() log.Level {
	mu.Lock()
	defer mu.Unlock()

	return level
}

// track records a child logger so later level changes reach it.
func track(l *log.Logger) *log.Logger {
	mu.Lock()
	defer mu.Unlock()

	l.SetLevel(level)
	derived = append(derived, l)

	return l
}
