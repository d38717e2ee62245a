// Automated Real Estate Platform - Social Media Automation and Analytics
// Copyright 2026 smaskoun
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/smaskoun/Automated-platform-Real-Estate

// Package models defines the shared data structures exchanged between the
// store, the learning engine, the SEO scorer and the HTTP API.
package models

import "time"

// APIResponse is the standard envelope for every API response.
//
// Success:
//
//	{
//	  "status": "success",
//	  "data": {...},
//	  "metadata": {"timestamp": "2026-08-30T12:00:00Z"}
//	}
//
// Error:
//
//	{
//	  "status": "error",
//	  "error": {"code": "VALIDATION_ERROR", "message": "content is required"},
//	  "metadata": {"timestamp": "2026-08-30T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
}

// APIError represents a structured error response.
//
// Common codes:
//   - VALIDATION_ERROR: invalid input parameters
//   - INSUFFICIENT_DATA: not enough performance history for analysis
//   - NOT_FOUND: resource does not exist
//   - DATABASE_ERROR: query execution failure
//   - UPSTREAM_ERROR: third-party collaborator failure
//   - AUTHENTICATION_ERROR: invalid or missing credentials
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
