/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package mcpserver

import "errors"

var ErrNotConfigured = errors.New("MCP server is not configured")
