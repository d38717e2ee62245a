// Automated Real Estate Platform - Social Media Automation and Analytics
// Copyright 2026 smaskoun
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/smaskoun/Automated-platform-Real-Estate

package api

import (
	"net/http"
)

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresIn int64  `json:"expires_in"`
}

func (rt *Router) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeBody(w, r, &req) || !validateBody(w, &req) {
		return
	}

	if rt.deps.Credentials == nil || !rt.deps.Credentials.Verify(req.Username, req.Password) {
		respondError(w, http.StatusUnauthorized, "AUTHENTICATION_ERROR", "invalid credentials", nil)
		return
	}

	token, err := rt.deps.JWT.GenerateToken(req.Username, "admin")
	if err != nil {
		rt.deps.Logger.Error().Err(err).Msg("token generation failed")
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "could not issue token", nil)
		return
	}

	respondJSON(w, http.StatusOK, loginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int64(rt.deps.JWT.SessionTimeout().Seconds()),
	})
}
