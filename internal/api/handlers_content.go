// Automated Real Estate Platform - Social Media Automation and Analytics
// Copyright 2026 smaskoun
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/smaskoun/Automated-platform-Real-Estate

package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/smaskoun/Automated-platform-Real-Estate/internal/models"
	"github.com/smaskoun/Automated-platform-Real-Estate/internal/store"
)

func (rt *Router) createContent(w http.ResponseWriter, r *http.Request) {
	var item models.ContentItem
	if !decodeBody(w, r, &item) {
		return
	}
	if item.String("text") == "" && item.String("caption") == "" && item.String("content") == "" {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "text or caption is required", nil)
		return
	}

	id, err := rt.deps.Store.SaveContent(r.Context(), item)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	saved, err := rt.deps.Store.GetContent(r.Context(), id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, saved)
}

func (rt *Router) listContent(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(w, r, "limit", 0)
	if !ok {
		return
	}
	items, err := rt.deps.Store.GetAllContent(r.Context(), limit)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"items": items,
		"count": len(items),
	})
}

func (rt *Router) getContent(w http.ResponseWriter, r *http.Request) {
	item, err := rt.deps.Store.GetContent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

func (rt *Router) updateContent(w http.ResponseWriter, r *http.Request) {
	var updates models.ContentItem
	if !decodeBody(w, r, &updates) {
		return
	}
	if len(updates) == 0 {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "no fields to update", nil)
		return
	}

	id := chi.URLParam(r, "id")
	if err := rt.deps.Store.UpdateContent(r.Context(), id, updates); err != nil {
		respondStoreError(w, err)
		return
	}
	item, err := rt.deps.Store.GetContent(r.Context(), id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

func (rt *Router) deleteContent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := rt.deps.Store.DeleteContent(r.Context(), id); err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"deleted": id})
}

func (rt *Router) searchContent(w http.ResponseWriter, r *http.Request) {
	filters := store.SearchFilters{Platform: r.URL.Query().Get("platform")}

	var ok bool
	if filters.DateFrom, ok = queryDate(w, r, "date_from"); !ok {
		return
	}
	if filters.DateTo, ok = queryDate(w, r, "date_to"); !ok {
		return
	}

	items, err := rt.deps.Store.SearchContent(r.Context(), r.URL.Query().Get("q"), filters)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"items": items,
		"count": len(items),
	})
}

func (rt *Router) contentStats(w http.ResponseWriter, r *http.Request) {
	report, err := rt.deps.Store.ContentStats(r.Context())
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}

func (rt *Router) importContent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Items []models.ContentItem `json:"items"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if len(req.Items) == 0 {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "items is required", nil)
		return
	}

	result := rt.deps.Store.ImportContent(r.Context(), req.Items)
	respondJSON(w, http.StatusOK, result)
}

func (rt *Router) exportContent(w http.ResponseWriter, r *http.Request) {
	format := strings.ToLower(r.URL.Query().Get("format"))
	if format == "" {
		format = "json"
	}

	out, err := rt.deps.Store.ExportContent(r.Context(), format)
	if err != nil {
		if strings.Contains(err.Error(), "unsupported") {
			respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
			return
		}
		respondStoreError(w, err)
		return
	}

	// Export endpoints return the raw document, not the JSON envelope.
	switch format {
	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="content_export.csv"`)
	default:
		w.Header().Set("Content-Type", "application/json")
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(out)); err != nil {
		rt.deps.Logger.Error().Err(err).Msg("failed to write export body")
	}
}

// queryInt parses an optional integer query parameter. On a malformed value
// it writes a validation error and returns ok=false.
func queryInt(w http.ResponseWriter, r *http.Request, name string, def int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", name+" must be a non-negative integer", nil)
		return 0, false
	}
	return n, true
}

// queryDate parses an optional RFC 3339 or YYYY-MM-DD query parameter.
func queryDate(w http.ResponseWriter, r *http.Request, name string) (time.Time, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Time{}, true
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", name+" must be an RFC 3339 timestamp or YYYY-MM-DD date", nil)
	return time.Time{}, false
}
