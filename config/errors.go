/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package config

import "errors"

var (
	ErrInvalidTransport = errors.New("transport must be one of: stdio, http")
	ErrHTTPAddrRequired = errors.New("http address is required for the http transport")
	ErrInvalidRateLimit = errors.New("rate limit must be positive")
)
