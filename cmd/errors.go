/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import "errors"

var (
	errInvalidFormat = errors.New("format must be one of: text, json, yaml")
	errComputeFailed = errors.New("phenoage calculation failed")
)
