// Automated Real Estate Platform - Social Media Automation and Analytics
// Copyright 2026 smaskoun
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/smaskoun/Automated-platform-Real-Estate

package store

import (
	"context"
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/smaskoun/Automated-platform-Real-Estate/internal/models"
)

func TestImportContent(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	result := s.ImportContent(ctx, []models.ContentItem{
		{"text": "First imported post #one"},
		{"text": "Second imported post #two"},
		nil, // invalid item
	})

	if result.Imported != 2 {
		t.Errorf("Imported = %d, want 2", result.Imported)
	}
	if result.Failed != 1 {
		t.Errorf("Failed = %d, want 1", result.Failed)
	}
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "item 3") {
		t.Errorf("Errors = %v, want one error for item 3", result.Errors)
	}

	items, err := s.GetAllContent(ctx, 0)
	if err != nil {
		t.Fatalf("GetAllContent: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("stored = %d, want 2", len(items))
	}
	// Imports run the normal enrichment pipeline.
	for _, item := range items {
		if tags, ok := item["hashtags"].([]interface{}); !ok || len(tags) != 1 {
			t.Errorf("item %s hashtags = %v", item.String("id"), item["hashtags"])
		}
	}
}

func TestExportContentJSON(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	saveDatedContent(t, s, "e1", "instagram", "Export me #tag", testNow)

	out, err := s.ExportContent(ctx, "json")
	if err != nil {
		t.Fatalf("ExportContent: %v", err)
	}

	var decoded []models.ContentItem
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if len(decoded) != 1 || decoded[0].String("id") != "e1" {
		t.Errorf("decoded = %v", decoded)
	}
}

func TestExportContentCSV(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	saveDatedContent(t, s, "c1", "instagram", "Row one #tag", testNow)
	saveDatedContent(t, s, "c2", "facebook", "Row two", testNow)

	out, err := s.ExportContent(ctx, "csv")
	if err != nil {
		t.Fatalf("ExportContent: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("csv lines = %d, want header + 2 rows", len(lines))
	}
	header := lines[0]
	if !strings.Contains(header, "id") || !strings.Contains(header, "platform") {
		t.Errorf("header = %q, missing expected columns", header)
	}
	// List fields are JSON-encoded inside their cell.
	if !strings.Contains(out, `#tag`) {
		t.Errorf("csv missing hashtag cell: %q", out)
	}
}

func TestExportContentEmptyAndUnknownFormat(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	out, err := s.ExportContent(ctx, "csv")
	if err != nil {
		t.Fatalf("empty csv export: %v", err)
	}
	if out != "" {
		t.Errorf("empty csv = %q, want empty string", out)
	}

	if _, err := s.ExportContent(ctx, "xml"); err == nil {
		t.Error("unknown format did not error")
	}
}
