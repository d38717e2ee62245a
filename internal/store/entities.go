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

	json "github.com/goccy/go-json"

	"github.com/smaskoun/Automated-platform-Real-Estate/internal/models"
)

var (
	// ErrBrandVoiceNotFound is returned when no brand voice matches the ID.
	ErrBrandVoiceNotFound = errors.New("brand voice not found")
	// ErrAccountNotFound is returned when no social account matches the ID.
	ErrAccountNotFound = errors.New("social account not found")
	// ErrPostNotFound is returned when no social media post matches the ID.
	ErrPostNotFound = errors.New("social media post not found")
)

// CreateBrandVoice persists a new brand voice, filling in ID and timestamps.
func (s *Store) CreateBrandVoice(ctx context.Context, voice *models.BrandVoice) error {
	if voice.ID == "" {
		voice.ID = s.newID()
	}
	if voice.CreatedAt.IsZero() {
		voice.CreatedAt = s.now()
	}
	voice.UpdatedAt = voice.CreatedAt

	keywords, err := encodeStrings(voice.Keywords)
	if err != nil {
		return err
	}
	examples, err := encodeStrings(voice.Examples)
	if err != nil {
		return err
	}

	_, err = s.exec(ctx, "insert", "brand_voices", `
		INSERT INTO brand_voices (id, name, description, tone, keywords, examples, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		voice.ID, voice.Name, voice.Description, voice.Tone,
		keywords, examples, voice.CreatedAt, voice.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create brand voice: %w", err)
	}
	return nil
}

// GetBrandVoice returns the brand voice with the given ID.
func (s *Store) GetBrandVoice(ctx context.Context, id string) (*models.BrandVoice, error) {
	row := s.queryRow(ctx, "select", "brand_voices", `
		SELECT id, name, description, tone, keywords, examples, created_at, updated_at
		FROM brand_voices WHERE id = ?`, id)

	var v models.BrandVoice
	var keywords, examples string
	err := row.Scan(&v.ID, &v.Name, &v.Description, &v.Tone, &keywords, &examples, &v.CreatedAt, &v.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBrandVoiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load brand voice %s: %w", id, err)
	}
	if v.Keywords, err = decodeStrings(keywords); err != nil {
		return nil, err
	}
	if v.Examples, err = decodeStrings(examples); err != nil {
		return nil, err
	}
	return &v, nil
}

// ListBrandVoices returns all brand voices, newest first.
func (s *Store) ListBrandVoices(ctx context.Context) ([]models.BrandVoice, error) {
	rows, err := s.query(ctx, "select", "brand_voices", `
		SELECT id, name, description, tone, keywords, examples, created_at, updated_at
		FROM brand_voices ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list brand voices: %w", err)
	}
	defer rows.Close()

	voices := make([]models.BrandVoice, 0)
	for rows.Next() {
		var v models.BrandVoice
		var keywords, examples string
		if err := rows.Scan(&v.ID, &v.Name, &v.Description, &v.Tone, &keywords, &examples, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan brand voice: %w", err)
		}
		if v.Keywords, err = decodeStrings(keywords); err != nil {
			return nil, err
		}
		if v.Examples, err = decodeStrings(examples); err != nil {
			return nil, err
		}
		voices = append(voices, v)
	}
	return voices, rows.Err()
}

// UpdateBrandVoice replaces the mutable fields of an existing brand voice.
func (s *Store) UpdateBrandVoice(ctx context.Context, voice *models.BrandVoice) error {
	voice.UpdatedAt = s.now()

	keywords, err := encodeStrings(voice.Keywords)
	if err != nil {
		return err
	}
	examples, err := encodeStrings(voice.Examples)
	if err != nil {
		return err
	}

	res, err := s.exec(ctx, "update", "brand_voices", `
		UPDATE brand_voices SET name = ?, description = ?, tone = ?, keywords = ?, examples = ?, updated_at = ?
		WHERE id = ?`,
		voice.Name, voice.Description, voice.Tone, keywords, examples, voice.UpdatedAt, voice.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update brand voice %s: %w", voice.ID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrBrandVoiceNotFound
	}
	return nil
}

// DeleteBrandVoice removes the brand voice with the given ID.
func (s *Store) DeleteBrandVoice(ctx context.Context, id string) error {
	res, err := s.exec(ctx, "delete", "brand_voices", `DELETE FROM brand_voices WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete brand voice %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrBrandVoiceNotFound
	}
	return nil
}

// CreateSocialAccount persists a new social account.
func (s *Store) CreateSocialAccount(ctx context.Context, account *models.SocialAccount) error {
	if account.ID == "" {
		account.ID = s.newID()
	}
	if account.CreatedAt.IsZero() {
		account.CreatedAt = s.now()
	}
	account.UpdatedAt = account.CreatedAt

	_, err := s.exec(ctx, "insert", "social_accounts", `
		INSERT INTO social_accounts (id, platform, handle, active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		account.ID, account.Platform, account.Handle, account.Active,
		account.CreatedAt, account.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create social account: %w", err)
	}
	return nil
}

// GetSocialAccount returns the social account with the given ID.
func (s *Store) GetSocialAccount(ctx context.Context, id string) (*models.SocialAccount, error) {
	row := s.queryRow(ctx, "select", "social_accounts", `
		SELECT id, platform, handle, active, created_at, updated_at
		FROM social_accounts WHERE id = ?`, id)

	var a models.SocialAccount
	err := row.Scan(&a.ID, &a.Platform, &a.Handle, &a.Active, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load social account %s: %w", id, err)
	}
	return &a, nil
}

// ListSocialAccounts returns all accounts, optionally only active ones.
func (s *Store) ListSocialAccounts(ctx context.Context, activeOnly bool) ([]models.SocialAccount, error) {
	query := `SELECT id, platform, handle, active, created_at, updated_at FROM social_accounts`
	if activeOnly {
		query += ` WHERE active = true`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.query(ctx, "select", "social_accounts", query)
	if err != nil {
		return nil, fmt.Errorf("failed to list social accounts: %w", err)
	}
	defer rows.Close()

	accounts := make([]models.SocialAccount, 0)
	for rows.Next() {
		var a models.SocialAccount
		if err := rows.Scan(&a.ID, &a.Platform, &a.Handle, &a.Active, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan social account: %w", err)
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

// UpdateSocialAccount replaces the mutable fields of an existing account.
func (s *Store) UpdateSocialAccount(ctx context.Context, account *models.SocialAccount) error {
	account.UpdatedAt = s.now()

	res, err := s.exec(ctx, "update", "social_accounts", `
		UPDATE social_accounts SET platform = ?, handle = ?, active = ?, updated_at = ?
		WHERE id = ?`,
		account.Platform, account.Handle, account.Active, account.UpdatedAt, account.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update social account %s: %w", account.ID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// DeleteSocialAccount removes the account with the given ID.
func (s *Store) DeleteSocialAccount(ctx context.Context, id string) error {
	res, err := s.exec(ctx, "delete", "social_accounts", `DELETE FROM social_accounts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete social account %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// CreateSocialMediaPost persists a new drafted or scheduled post.
func (s *Store) CreateSocialMediaPost(ctx context.Context, post *models.SocialMediaPost) error {
	if post.ID == "" {
		post.ID = s.newID()
	}
	if post.CreatedAt.IsZero() {
		post.CreatedAt = s.now()
	}
	post.UpdatedAt = post.CreatedAt
	if post.Status == "" {
		post.Status = "draft"
	}

	hashtags, err := encodeStrings(post.Hashtags)
	if err != nil {
		return err
	}

	_, err = s.exec(ctx, "insert", "social_media_posts", `
		INSERT INTO social_media_posts (id, account_id, platform, content, hashtags, image_url, status, scheduled_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		post.ID, post.AccountID, post.Platform, post.Content, hashtags,
		post.ImageURL, post.Status, post.ScheduledAt, post.CreatedAt, post.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create social media post: %w", err)
	}
	return nil
}

// GetSocialMediaPost returns the post with the given ID.
func (s *Store) GetSocialMediaPost(ctx context.Context, id string) (*models.SocialMediaPost, error) {
	row := s.queryRow(ctx, "select", "social_media_posts", `
		SELECT id, account_id, platform, content, hashtags, image_url, status, scheduled_at, created_at, updated_at
		FROM social_media_posts WHERE id = ?`, id)

	post, err := scanPost(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load social media post %s: %w", id, err)
	}
	return post, nil
}

// ListSocialMediaPosts returns posts newest-first, optionally filtered by
// status ("draft", "scheduled", "published").
func (s *Store) ListSocialMediaPosts(ctx context.Context, status string, limit int) ([]models.SocialMediaPost, error) {
	if limit <= 0 {
		limit = defaultContentLimit
	}

	query := `SELECT id, account_id, platform, content, hashtags, image_url, status, scheduled_at, created_at, updated_at
		FROM social_media_posts`
	args := []any{}
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.query(ctx, "select", "social_media_posts", query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list social media posts: %w", err)
	}
	defer rows.Close()

	posts := make([]models.SocialMediaPost, 0)
	for rows.Next() {
		post, err := scanPost(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan social media post: %w", err)
		}
		posts = append(posts, *post)
	}
	return posts, rows.Err()
}

// UpdateSocialMediaPost replaces the mutable fields of an existing post.
func (s *Store) UpdateSocialMediaPost(ctx context.Context, post *models.SocialMediaPost) error {
	post.UpdatedAt = s.now()

	hashtags, err := encodeStrings(post.Hashtags)
	if err != nil {
		return err
	}

	res, err := s.exec(ctx, "update", "social_media_posts", `
		UPDATE social_media_posts SET account_id = ?, platform = ?, content = ?, hashtags = ?, image_url = ?, status = ?, scheduled_at = ?, updated_at = ?
		WHERE id = ?`,
		post.AccountID, post.Platform, post.Content, hashtags, post.ImageURL,
		post.Status, post.ScheduledAt, post.UpdatedAt, post.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update social media post %s: %w", post.ID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrPostNotFound
	}
	return nil
}

// DeleteSocialMediaPost removes the post with the given ID.
func (s *Store) DeleteSocialMediaPost(ctx context.Context, id string) error {
	res, err := s.exec(ctx, "delete", "social_media_posts", `DELETE FROM social_media_posts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete social media post %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrPostNotFound
	}
	return nil
}

func scanPost(scan func(dest ...any) error) (*models.SocialMediaPost, error) {
	var p models.SocialMediaPost
	var hashtags string
	var accountID, imageURL sql.NullString
	var scheduledAt sql.NullTime

	err := scan(&p.ID, &accountID, &p.Platform, &p.Content, &hashtags,
		&imageURL, &p.Status, &scheduledAt, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}

	p.AccountID = accountID.String
	p.ImageURL = imageURL.String
	if scheduledAt.Valid {
		t := scheduledAt.Time
		p.ScheduledAt = &t
	}
	if p.Hashtags, err = decodeStrings(hashtags); err != nil {
		return nil, err
	}
	return &p, nil
}

func encodeStrings(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	out, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("failed to encode string list: %w", err)
	}
	return string(out), nil
}

func decodeStrings(encoded string) ([]string, error) {
	if encoded == "" {
		return []string{}, nil
	}
	var out []string
	if err := json.Unmarshal([]byte(encoded), &out); err != nil {
		return nil, fmt.Errorf("failed to decode string list: %w", err)
	}
	return out, nil
}
