/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"net/http"

	"github.com/flamego/flamego"
)

// NoCacheHeaders disables caching for all responses and blocks indexing.
// Responses carry health data.
func NoCacheHeaders() flamego.Handler {
	return func(c flamego.Context) {
		header := c.ResponseWriter().Header()
		header.Set("X-Robots-Tag", "noindex, nofollow, noarchive, nosnippet")
		header.Set("Cache-Control", "no-store, max-age=0")
		header.Set("Pragma", "no-cache")
		header.Set("Expires", "0")

		c.Next()
	}
}

// wrapHandler mounts a plain http.Handler on a flamego route.
func wrapHandler(h http.Handler) flamego.Handler {
	return func(c flamego.Context) {
		h.ServeHTTP(c.ResponseWriter(), c.Request().Request)
	}
}
