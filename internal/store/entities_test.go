// Automated Real Estate Platform - Social Media Automation and Analytics
// Copyright 2026 smaskoun
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/smaskoun/Automated-platform-Real-Estate

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/smaskoun/Automated-platform-Real-Estate/internal/models"
)

func TestBrandVoiceCRUD(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	voice := &models.BrandVoice{
		Name:        "Friendly Expert",
		Description: "Warm and knowledgeable",
		Tone:        "conversational",
		Keywords:    []string{"windsor", "family home"},
		Examples:    []string{"Welcome home!"},
	}
	if err := s.CreateBrandVoice(ctx, voice); err != nil {
		t.Fatalf("CreateBrandVoice: %v", err)
	}
	if voice.ID == "" {
		t.Fatal("ID not assigned")
	}
	if !voice.CreatedAt.Equal(testNow) {
		t.Errorf("CreatedAt = %v, want %v", voice.CreatedAt, testNow)
	}

	got, err := s.GetBrandVoice(ctx, voice.ID)
	if err != nil {
		t.Fatalf("GetBrandVoice: %v", err)
	}
	if got.Name != voice.Name || got.Tone != voice.Tone {
		t.Errorf("got %+v", got)
	}
	if len(got.Keywords) != 2 || got.Keywords[0] != "windsor" {
		t.Errorf("Keywords = %v", got.Keywords)
	}

	got.Tone = "professional"
	got.Keywords = append(got.Keywords, "essex county")
	if err := s.UpdateBrandVoice(ctx, got); err != nil {
		t.Fatalf("UpdateBrandVoice: %v", err)
	}

	updated, err := s.GetBrandVoice(ctx, voice.ID)
	if err != nil {
		t.Fatalf("GetBrandVoice after update: %v", err)
	}
	if updated.Tone != "professional" || len(updated.Keywords) != 3 {
		t.Errorf("update not persisted: %+v", updated)
	}

	voices, err := s.ListBrandVoices(ctx)
	if err != nil {
		t.Fatalf("ListBrandVoices: %v", err)
	}
	if len(voices) != 1 {
		t.Errorf("len(voices) = %d, want 1", len(voices))
	}

	if err := s.DeleteBrandVoice(ctx, voice.ID); err != nil {
		t.Fatalf("DeleteBrandVoice: %v", err)
	}
	if _, err := s.GetBrandVoice(ctx, voice.ID); !errors.Is(err, ErrBrandVoiceNotFound) {
		t.Errorf("after delete: err = %v, want ErrBrandVoiceNotFound", err)
	}
	if err := s.UpdateBrandVoice(ctx, voice); !errors.Is(err, ErrBrandVoiceNotFound) {
		t.Errorf("update missing: err = %v, want ErrBrandVoiceNotFound", err)
	}
}

func TestSocialAccountCRUD(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	active := &models.SocialAccount{Platform: "instagram", Handle: "@windsor_homes", Active: true}
	dormant := &models.SocialAccount{Platform: "facebook", Handle: "WindsorHomesPage", Active: false}
	if err := s.CreateSocialAccount(ctx, active); err != nil {
		t.Fatalf("CreateSocialAccount: %v", err)
	}
	if err := s.CreateSocialAccount(ctx, dormant); err != nil {
		t.Fatalf("CreateSocialAccount: %v", err)
	}

	got, err := s.GetSocialAccount(ctx, active.ID)
	if err != nil {
		t.Fatalf("GetSocialAccount: %v", err)
	}
	if got.Handle != "@windsor_homes" || !got.Active {
		t.Errorf("got %+v", got)
	}

	all, err := s.ListSocialAccounts(ctx, false)
	if err != nil {
		t.Fatalf("ListSocialAccounts: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("all accounts = %d, want 2", len(all))
	}

	activeOnly, err := s.ListSocialAccounts(ctx, true)
	if err != nil {
		t.Fatalf("ListSocialAccounts(active): %v", err)
	}
	if len(activeOnly) != 1 || activeOnly[0].ID != active.ID {
		t.Errorf("active accounts = %v", activeOnly)
	}

	dormant.Active = true
	if err := s.UpdateSocialAccount(ctx, dormant); err != nil {
		t.Fatalf("UpdateSocialAccount: %v", err)
	}
	activeOnly, err = s.ListSocialAccounts(ctx, true)
	if err != nil {
		t.Fatalf("ListSocialAccounts(active): %v", err)
	}
	if len(activeOnly) != 2 {
		t.Errorf("active accounts after update = %d, want 2", len(activeOnly))
	}

	if err := s.DeleteSocialAccount(ctx, dormant.ID); err != nil {
		t.Fatalf("DeleteSocialAccount: %v", err)
	}
	if _, err := s.GetSocialAccount(ctx, dormant.ID); !errors.Is(err, ErrAccountNotFound) {
		t.Errorf("after delete: err = %v, want ErrAccountNotFound", err)
	}
}

func TestSocialMediaPostCRUD(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	scheduled := testNow.Add(48 * time.Hour)
	post := &models.SocialMediaPost{
		Platform:    "instagram",
		Content:     "Open house Saturday! #Windsor",
		Hashtags:    []string{"#windsor", "#openhouse"},
		ScheduledAt: &scheduled,
	}
	if err := s.CreateSocialMediaPost(ctx, post); err != nil {
		t.Fatalf("CreateSocialMediaPost: %v", err)
	}
	if post.Status != "draft" {
		t.Errorf("default status = %q, want draft", post.Status)
	}

	got, err := s.GetSocialMediaPost(ctx, post.ID)
	if err != nil {
		t.Fatalf("GetSocialMediaPost: %v", err)
	}
	if got.Content != post.Content || len(got.Hashtags) != 2 {
		t.Errorf("got %+v", got)
	}
	if got.ScheduledAt == nil || !got.ScheduledAt.Equal(scheduled) {
		t.Errorf("ScheduledAt = %v, want %v", got.ScheduledAt, scheduled)
	}

	got.Status = "published"
	if err := s.UpdateSocialMediaPost(ctx, got); err != nil {
		t.Fatalf("UpdateSocialMediaPost: %v", err)
	}

	published, err := s.ListSocialMediaPosts(ctx, "published", 0)
	if err != nil {
		t.Fatalf("ListSocialMediaPosts: %v", err)
	}
	if len(published) != 1 || published[0].ID != post.ID {
		t.Errorf("published = %v", published)
	}

	drafts, err := s.ListSocialMediaPosts(ctx, "draft", 0)
	if err != nil {
		t.Fatalf("ListSocialMediaPosts(draft): %v", err)
	}
	if len(drafts) != 0 {
		t.Errorf("drafts = %d, want 0", len(drafts))
	}

	if err := s.DeleteSocialMediaPost(ctx, post.ID); err != nil {
		t.Fatalf("DeleteSocialMediaPost: %v", err)
	}
	if _, err := s.GetSocialMediaPost(ctx, post.ID); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("after delete: err = %v, want ErrPostNotFound", err)
	}
}
