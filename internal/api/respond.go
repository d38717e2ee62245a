// Automated Real Estate Platform - Social Media Automation and Analytics
// Copyright 2026 smaskoun
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/smaskoun/Automated-platform-Real-Estate

package api

import (
	"errors"
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"github.com/smaskoun/Automated-platform-Real-Estate/internal/learning"
	"github.com/smaskoun/Automated-platform-Real-Estate/internal/logging"
	"github.com/smaskoun/Automated-platform-Real-Estate/internal/models"
	"github.com/smaskoun/Automated-platform-Real-Estate/internal/store"
	"github.com/smaskoun/Automated-platform-Real-Estate/internal/validation"
)

// maxBodyBytes bounds request bodies to keep decode memory predictable.
const maxBodyBytes = 1 << 20

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	respond(w, status, &models.APIResponse{
		Status:   "success",
		Data:     data,
		Metadata: models.Metadata{Timestamp: time.Now().UTC()},
	})
}

func respondError(w http.ResponseWriter, status int, code, message string, details map[string]interface{}) {
	respond(w, status, &models.APIResponse{
		Status:   "error",
		Metadata: models.Metadata{Timestamp: time.Now().UTC()},
		Error: &models.APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

func respond(w http.ResponseWriter, status int, response *models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")

	body, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("failed to marshal response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logging.Error().Err(err).Msg("failed to write response")
	}
}

// decodeBody decodes a JSON request body into dst, responding with a
// VALIDATION_ERROR on failure. Returns false when the caller should stop.
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid JSON body", nil)
		return false
	}
	return true
}

// validateBody runs struct validation, responding on failure. Returns false
// when the caller should stop.
func validateBody(w http.ResponseWriter, v interface{}) bool {
	if err := validation.ValidateStruct(v); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), err.Details())
		return false
	}
	return true
}

// respondLearningError maps learning engine failures onto the error codes
// the API exposes. An insufficient history is an expected state and carries
// guidance for the caller.
func respondLearningError(w http.ResponseWriter, err error) {
	var insufficient *learning.InsufficientDataError
	if errors.As(err, &insufficient) {
		respondError(w, http.StatusUnprocessableEntity, "INSUFFICIENT_DATA", insufficient.Error(), map[string]interface{}{
			"data_points":   insufficient.DataPoints,
			"required":      insufficient.Required,
			"guidance":      insufficient.Guidance(),
			"insights_used": false,
		})
		return
	}
	respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "failed to analyze performance data", nil)
}

// respondStoreError maps store failures onto NOT_FOUND or DATABASE_ERROR.
func respondStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrContentNotFound),
		errors.Is(err, store.ErrBrandVoiceNotFound),
		errors.Is(err, store.ErrAccountNotFound),
		errors.Is(err, store.ErrPostNotFound):
		respondError(w, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
	default:
		logging.Error().Err(err).Msg("store operation failed")
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "storage operation failed", nil)
	}
}
