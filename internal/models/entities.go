// Automated Real Estate Platform - Social Media Automation and Analytics
// Copyright 2026 smaskoun
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/smaskoun/Automated-platform-Real-Estate

package models

import "time"

// BrandVoice captures the tone and vocabulary an agent wants generated
// content to follow.
type BrandVoice struct {
	ID          string    `json:"id"`
	Name        string    `json:"name" validate:"required,max=120"`
	Description string    `json:"description"`
	Tone        string    `json:"tone" validate:"omitempty,max=60"`
	Keywords    []string  `json:"keywords"`
	Examples    []string  `json:"examples"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SocialAccount is a connected (or manually tracked) social media account.
type SocialAccount struct {
	ID        string    `json:"id"`
	Platform  string    `json:"platform" validate:"required,oneof=instagram facebook manual"`
	Handle    string    `json:"handle" validate:"required,max=120"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SocialMediaPost is a drafted, scheduled or published post.
type SocialMediaPost struct {
	ID          string     `json:"id"`
	AccountID   string     `json:"account_id"`
	Platform    string     `json:"platform" validate:"required,max=40"`
	Content     string     `json:"content" validate:"required"`
	Hashtags    []string   `json:"hashtags"`
	ImageURL    string     `json:"image_url,omitempty"`
	Status      string     `json:"status" validate:"omitempty,oneof=draft scheduled published"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
