/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/flamego/flamego"

	"github.com/humaidq/phenoage/logging"
)

var requestLogger = logging.Logger(logging.SourceHTTPRequest)

// ClientAddr is the address a request is attributed to for logging and rate
// limiting.
type ClientAddr string

// ResolveClient maps the ClientAddr of each request. The peer address of the
// connection is used unless trustProxy is set, in which case the first
// X-Forwarded-For entry wins.
func ResolveClient(trustProxy bool) flamego.Handler {
	return func(c flamego.Context) {
		c.Map(ClientAddr(clientIP(c.Request().Request, trustProxy)))
	}
}

// RequestLogger logs request metadata and timing for each HTTP request.
func RequestLogger(c flamego.Context, client ClientAddr) {
	start := time.Now()

	c.Next()

	status := c.ResponseWriter().Status()
	if status == 0 {
		status = http.StatusOK
	}

	fields := []interface{}{
		"event", "request",
		"status", status,
		"duration_ms", time.Since(start).Milliseconds(),
	}
	fields = append(fields, baseRequestFields(c, client)...)

	requestLogger.Info("request", fields...)
}

func logRateLimited(c flamego.Context, client ClientAddr) {
	fields := []interface{}{
		"event", "rate_limited",
		"status", http.StatusTooManyRequests,
	}
	fields = append(fields, baseRequestFields(c, client)...)

	requestLogger.Warn("rate limited", fields...)
}

func baseRequestFields(c flamego.Context, client ClientAddr) []interface{} {
	return []interface{}{
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
		"ip", string(client),
		"user_agent", c.Request().UserAgent(),
	}
}

func clientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		forwardedFor := r.Header.Get("X-Forwarded-For")
		if idx := strings.Index(forwardedFor, ","); idx != -1 {
			forwardedFor = forwardedFor[:idx]
		}

		if ip := strings.TrimSpace(forwardedFor); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
