// Automated Real Estate Platform - Social Media Automation and Analytics
// Copyright 2026 smaskoun
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/smaskoun/Automated-platform-Real-Estate

package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/smaskoun/Automated-platform-Real-Estate/internal/models"
)

func (rt *Router) createBrandVoice(w http.ResponseWriter, r *http.Request) {
	var voice models.BrandVoice
	if !decodeBody(w, r, &voice) || !validateBody(w, &voice) {
		return
	}
	voice.ID = ""
	if err := rt.deps.Store.CreateBrandVoice(r.Context(), &voice); err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, voice)
}

func (rt *Router) listBrandVoices(w http.ResponseWriter, r *http.Request) {
	voices, err := rt.deps.Store.ListBrandVoices(r.Context())
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"items": voices,
		"count": len(voices),
	})
}

func (rt *Router) getBrandVoice(w http.ResponseWriter, r *http.Request) {
	voice, err := rt.deps.Store.GetBrandVoice(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, voice)
}

func (rt *Router) updateBrandVoice(w http.ResponseWriter, r *http.Request) {
	var voice models.BrandVoice
	if !decodeBody(w, r, &voice) || !validateBody(w, &voice) {
		return
	}
	voice.ID = chi.URLParam(r, "id")
	if err := rt.deps.Store.UpdateBrandVoice(r.Context(), &voice); err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, voice)
}

func (rt *Router) deleteBrandVoice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := rt.deps.Store.DeleteBrandVoice(r.Context(), id); err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"deleted": id})
}

func (rt *Router) createSocialAccount(w http.ResponseWriter, r *http.Request) {
	var account models.SocialAccount
	if !decodeBody(w, r, &account) || !validateBody(w, &account) {
		return
	}
	account.ID = ""
	if err := rt.deps.Store.CreateSocialAccount(r.Context(), &account); err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, account)
}

func (rt *Router) listSocialAccounts(w http.ResponseWriter, r *http.Request) {
	activeOnly := strings.EqualFold(r.URL.Query().Get("active"), "true")
	accounts, err := rt.deps.Store.ListSocialAccounts(r.Context(), activeOnly)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"items": accounts,
		"count": len(accounts),
	})
}

func (rt *Router) getSocialAccount(w http.ResponseWriter, r *http.Request) {
	account, err := rt.deps.Store.GetSocialAccount(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, account)
}

func (rt *Router) updateSocialAccount(w http.ResponseWriter, r *http.Request) {
	var account models.SocialAccount
	if !decodeBody(w, r, &account) || !validateBody(w, &account) {
		return
	}
	account.ID = chi.URLParam(r, "id")
	if err := rt.deps.Store.UpdateSocialAccount(r.Context(), &account); err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, account)
}

func (rt *Router) deleteSocialAccount(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := rt.deps.Store.DeleteSocialAccount(r.Context(), id); err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"deleted": id})
}

func (rt *Router) createPost(w http.ResponseWriter, r *http.Request) {
	var post models.SocialMediaPost
	if !decodeBody(w, r, &post) || !validateBody(w, &post) {
		return
	}
	post.ID = ""
	if err := rt.deps.Store.CreateSocialMediaPost(r.Context(), &post); err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, post)
}

func (rt *Router) listPosts(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(w, r, "limit", 0)
	if !ok {
		return
	}
	posts, err := rt.deps.Store.ListSocialMediaPosts(r.Context(), r.URL.Query().Get("status"), limit)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"items": posts,
		"count": len(posts),
	})
}

func (rt *Router) getPost(w http.ResponseWriter, r *http.Request) {
	post, err := rt.deps.Store.GetSocialMediaPost(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, post)
}

func (rt *Router) updatePost(w http.ResponseWriter, r *http.Request) {
	var post models.SocialMediaPost
	if !decodeBody(w, r, &post) || !validateBody(w, &post) {
		return
	}
	post.ID = chi.URLParam(r, "id")
	if err := rt.deps.Store.UpdateSocialMediaPost(r.Context(), &post); err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, post)
}

func (rt *Router) deletePost(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := rt.deps.Store.DeleteSocialMediaPost(r.Context(), id); err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"deleted": id})
}
