// Automated Real Estate Platform - Social Media Automation and Analytics
// Copyright 2026 smaskoun
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/smaskoun/Automated-platform-Real-Estate

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/smaskoun/Automated-platform-Real-Estate/internal/models"
)

// timestampLayout is the canonical format for timestamps stored inside
// content payloads.
const timestampLayout = time.RFC3339

// ErrContentNotFound is returned when no content row matches the given ID.
var ErrContentNotFound = errors.New("content not found")

// SaveContent enriches and persists an uploaded content item, returning its
// identifier. Missing id, uploaded_at and status fields are filled in.
func (s *Store) SaveContent(ctx context.Context, item models.ContentItem) (string, error) {
	if item == nil {
		return "", fmt.Errorf("content item is nil")
	}

	enriched := s.ProcessUpload(item)

	id := enriched.String("id")
	if id == "" {
		id = s.newID()
		enriched["id"] = id
	}

	uploadedAt := parseStoredTime(enriched.String("uploaded_at"), s.now())
	enriched["uploaded_at"] = uploadedAt.Format(timestampLayout)

	if enriched.String("status") == "" {
		enriched["status"] = "active"
	}
	platform := enriched.String("platform")
	if platform == "" {
		platform = "manual"
		enriched["platform"] = platform
	}

	payload, err := json.Marshal(enriched)
	if err != nil {
		return "", fmt.Errorf("failed to encode content payload: %w", err)
	}

	_, err = s.exec(ctx, "upsert", "manual_content", `
		INSERT INTO manual_content (id, platform, content_type, status, uploaded_at, payload)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			platform = excluded.platform,
			content_type = excluded.content_type,
			status = excluded.status,
			uploaded_at = excluded.uploaded_at,
			payload = excluded.payload`,
		id, platform, enriched.String("content_type"), enriched.String("status"),
		uploadedAt, string(payload),
	)
	if err != nil {
		return "", fmt.Errorf("failed to save content %s: %w", id, err)
	}
	return id, nil
}

// GetContent returns the stored payload for id, or ErrContentNotFound.
func (s *Store) GetContent(ctx context.Context, id string) (models.ContentItem, error) {
	var payload string
	err := s.queryRow(ctx, "select", "manual_content",
		`SELECT payload FROM manual_content WHERE id = ?`, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrContentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load content %s: %w", id, err)
	}
	return decodePayload(payload)
}

// GetAllContent returns up to limit items ordered newest-first by upload
// time. A non-positive limit falls back to the default page size. This is
// the learning engine's ingestion source.
func (s *Store) GetAllContent(ctx context.Context, limit int) ([]models.ContentItem, error) {
	if limit <= 0 {
		limit = defaultContentLimit
	}

	rows, err := s.query(ctx, "select", "manual_content",
		`SELECT payload FROM manual_content ORDER BY uploaded_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list content: %w", err)
	}
	defer rows.Close()

	return collectPayloads(rows)
}

// UpdateContent merges updates into the stored payload and stamps
// updated_at. Derived metadata is recomputed when the text changes.
func (s *Store) UpdateContent(ctx context.Context, id string, updates models.ContentItem) error {
	current, err := s.GetContent(ctx, id)
	if err != nil {
		return err
	}

	textChanged := false
	for k, v := range updates {
		if k == "id" {
			continue
		}
		if k == "text" || k == "caption" || k == "content" {
			textChanged = true
		}
		current[k] = v
	}
	if textChanged {
		current = s.ProcessUpload(current)
	}

	updatedAt := s.now()
	current["updated_at"] = updatedAt.Format(timestampLayout)

	payload, err := json.Marshal(current)
	if err != nil {
		return fmt.Errorf("failed to encode content payload: %w", err)
	}

	res, err := s.exec(ctx, "update", "manual_content", `
		UPDATE manual_content SET
			platform = ?, content_type = ?, status = ?, updated_at = ?, payload = ?
		WHERE id = ?`,
		current.String("platform"), current.String("content_type"),
		current.String("status"), updatedAt, string(payload), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update content %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrContentNotFound
	}
	return nil
}

// DeleteContent removes the content row for id.
func (s *Store) DeleteContent(ctx context.Context, id string) error {
	res, err := s.exec(ctx, "delete", "manual_content", `DELETE FROM manual_content WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete content %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrContentNotFound
	}
	return nil
}

// SearchFilters narrows a content search. Zero values mean no filtering.
type SearchFilters struct {
	Platform string
	DateFrom time.Time
	DateTo   time.Time
}

// SearchContent returns items whose text, caption, platform or hashtags
// contain query (case-insensitive), after applying filters. An empty query
// matches everything.
func (s *Store) SearchContent(ctx context.Context, query string, filters SearchFilters) ([]models.ContentItem, error) {
	sqlQuery := `SELECT payload FROM manual_content WHERE 1=1`
	args := []any{}
	if filters.Platform != "" {
		sqlQuery += ` AND platform = ?`
		args = append(args, filters.Platform)
	}
	if !filters.DateFrom.IsZero() {
		sqlQuery += ` AND uploaded_at >= ?`
		args = append(args, filters.DateFrom)
	}
	if !filters.DateTo.IsZero() {
		sqlQuery += ` AND uploaded_at <= ?`
		args = append(args, filters.DateTo)
	}
	sqlQuery += ` ORDER BY uploaded_at DESC`

	rows, err := s.query(ctx, "select", "manual_content", sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search content: %w", err)
	}
	defer rows.Close()

	items, err := collectPayloads(rows)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return items, nil
	}

	matched := make([]models.ContentItem, 0, len(items))
	for _, item := range items {
		if strings.Contains(searchHaystack(item), needle) {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

// searchHaystack flattens the searchable fields of an item into one
// lowercase string.
func searchHaystack(item models.ContentItem) string {
	parts := []string{
		item.String("text"),
		item.String("caption"),
		item.String("content"),
		item.String("platform"),
	}
	if tags, ok := item["hashtags"].([]interface{}); ok {
		for _, t := range tags {
			if s, ok := t.(string); ok {
				parts = append(parts, s)
			}
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// HashtagCount pairs a hashtag with its usage count.
type HashtagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// RecentActivity summarizes posting volume over the trailing 30 days.
type RecentActivity struct {
	PostsLast30Days int     `json:"posts_last_30_days"`
	AvgPostsPerDay  float64 `json:"avg_posts_per_day"`
}

// EngagementSummary aggregates engagement counters across all content.
type EngagementSummary struct {
	TotalLikes         int     `json:"total_likes"`
	TotalComments      int     `json:"total_comments"`
	TotalShares        int     `json:"total_shares"`
	AvgLikesPerPost    float64 `json:"avg_likes_per_post"`
	AvgCommentsPerPost float64 `json:"avg_comments_per_post"`
}

// ContentStatsReport is the aggregate view of the stored content.
type ContentStatsReport struct {
	TotalPosts        int               `json:"total_posts"`
	Platforms         map[string]int    `json:"platforms"`
	ContentTypes      map[string]int    `json:"content_types"`
	RecentActivity    RecentActivity    `json:"recent_activity"`
	HashtagUsage      []HashtagCount    `json:"hashtag_usage"`
	EngagementSummary EngagementSummary `json:"engagement_summary"`
}

// statsScanLimit bounds how many items feed the aggregate statistics.
const statsScanLimit = 1000

// ContentStats computes platform and content-type distributions, recent
// activity, the top ten hashtags and an engagement summary over the most
// recent items.
func (s *Store) ContentStats(ctx context.Context) (*ContentStatsReport, error) {
	items, err := s.GetAllContent(ctx, statsScanLimit)
	if err != nil {
		return nil, err
	}

	report := &ContentStatsReport{
		TotalPosts:   len(items),
		Platforms:    make(map[string]int),
		ContentTypes: make(map[string]int),
		HashtagUsage: []HashtagCount{},
	}

	hashtagCounts := make(map[string]int)
	cutoff := s.now().AddDate(0, 0, -30)
	recent := 0

	var totalLikes, totalComments, totalShares int
	for _, item := range items {
		platform := item.String("platform")
		if platform == "" {
			platform = "unknown"
		}
		report.Platforms[platform]++

		contentType := item.String("content_type")
		if contentType == "" {
			contentType = "text"
		}
		report.ContentTypes[contentType]++

		if parseStoredTime(item.String("uploaded_at"), time.Time{}).After(cutoff) {
			recent++
		}

		if tags, ok := item["hashtags"].([]interface{}); ok {
			for _, t := range tags {
				if tag, ok := t.(string); ok {
					hashtagCounts[tag]++
				}
			}
		}

		totalLikes += safeMetric(item, "likes")
		totalComments += safeMetric(item, "comments")
		totalShares += safeMetric(item, "shares")
	}

	report.RecentActivity = RecentActivity{
		PostsLast30Days: recent,
		AvgPostsPerDay:  float64(recent) / 30,
	}
	report.HashtagUsage = topHashtags(hashtagCounts, 10)

	report.EngagementSummary = EngagementSummary{
		TotalLikes:    totalLikes,
		TotalComments: totalComments,
		TotalShares:   totalShares,
	}
	if len(items) > 0 {
		report.EngagementSummary.AvgLikesPerPost = float64(totalLikes) / float64(len(items))
		report.EngagementSummary.AvgCommentsPerPost = float64(totalComments) / float64(len(items))
	}

	return report, nil
}

func topHashtags(counts map[string]int, n int) []HashtagCount {
	out := make([]HashtagCount, 0, len(counts))
	for tag, count := range counts {
		out = append(out, HashtagCount{Tag: tag, Count: count})
	}
	// Count descending, then alphabetical for a stable report.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Tag < out[j].Tag
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// safeMetric reads an engagement counter from either the engagement or
// metrics block, tolerating missing fields and mixed numeric types.
func safeMetric(item models.ContentItem, metric string) int {
	for _, key := range []string{"engagement", "metrics"} {
		block, ok := item[key].(map[string]interface{})
		if !ok {
			continue
		}
		switch v := block[metric].(type) {
		case int:
			return v
		case int64:
			return int(v)
		case float64:
			return int(v)
		case json.Number:
			if f, err := v.Float64(); err == nil {
				return int(f)
			}
		}
	}
	return 0
}

func decodePayload(payload string) (models.ContentItem, error) {
	var item models.ContentItem
	if err := json.Unmarshal([]byte(payload), &item); err != nil {
		return nil, fmt.Errorf("failed to decode content payload: %w", err)
	}
	return item, nil
}

func collectPayloads(rows *sql.Rows) ([]models.ContentItem, error) {
	items := make([]models.ContentItem, 0)
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan content row: %w", err)
		}
		item, err := decodePayload(payload)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating content rows: %w", err)
	}
	return items, nil
}

// parseStoredTime parses a payload timestamp, tolerating the common upload
// formats. Unparseable or empty values yield fallback.
func parseStoredTime(value string, fallback time.Time) time.Time {
	if value == "" {
		return fallback
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC()
		}
	}
	return fallback
}
