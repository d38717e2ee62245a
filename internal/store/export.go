// Automated Real Estate Platform - Social Media Automation and Analytics
// Copyright 2026 smaskoun
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/smaskoun/Automated-platform-Real-Estate

package store

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"sort"

	json "github.com/goccy/go-json"

	"github.com/smaskoun/Automated-platform-Real-Estate/internal/models"
)

// ImportResult reports the outcome of a bulk content import. Errors holds
// one message per failed item, indexed from 1 in input order.
type ImportResult struct {
	Imported int      `json:"imported"`
	Failed   int      `json:"failed"`
	Errors   []string `json:"errors"`
}

// ImportContent saves each item in order, continuing past per-item
// failures. Every item goes through the same enrichment as a single upload.
func (s *Store) ImportContent(ctx context.Context, items []models.ContentItem) ImportResult {
	result := ImportResult{Errors: []string{}}
	for i, item := range items {
		if _, err := s.SaveContent(ctx, item); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("item %d: %v", i+1, err))
			continue
		}
		result.Imported++
	}
	return result
}

// ExportContent serializes the most recent items as "json" or "csv".
// CSV columns are the sorted union of all keys seen across items; list and
// map values are JSON-encoded inside their cell.
func (s *Store) ExportContent(ctx context.Context, format string) (string, error) {
	items, err := s.GetAllContent(ctx, statsScanLimit)
	if err != nil {
		return "", err
	}

	switch format {
	case "json":
		out, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode export: %w", err)
		}
		return string(out), nil
	case "csv":
		return exportCSV(items)
	default:
		return "", fmt.Errorf("unsupported export format %q: expected json or csv", format)
	}
}

func exportCSV(items []models.ContentItem) (string, error) {
	if len(items) == 0 {
		return "", nil
	}

	keySet := make(map[string]struct{})
	for _, item := range items {
		for k := range item {
			keySet[k] = struct{}{}
		}
	}
	fields := make([]string, 0, len(keySet))
	for k := range keySet {
		fields = append(fields, k)
	}
	sort.Strings(fields)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(fields); err != nil {
		return "", fmt.Errorf("failed to write csv header: %w", err)
	}

	record := make([]string, len(fields))
	for _, item := range items {
		for i, field := range fields {
			record[i] = cellValue(item[field])
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.String(), nil
}

func cellValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []interface{}, map[string]interface{}:
		encoded, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(encoded)
	default:
		return fmt.Sprintf("%v", val)
	}
}
