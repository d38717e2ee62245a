// Automated Real Estate Platform - Social Media Automation and Analytics
// Copyright 2026 smaskoun
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/smaskoun/Automated-platform-Real-Estate

package auth

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost balances hashing strength against login latency.
const bcryptCost = 12

// CredentialChecker verifies the single admin account's credentials.
// The password is hashed at startup so the plaintext never lives beyond
// construction.
type CredentialChecker struct {
	username     string
	passwordHash []byte
}

// NewCredentialChecker hashes the configured admin password.
func NewCredentialChecker(username, password string) (*CredentialChecker, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("admin username and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	return &CredentialChecker{
		username:     username,
		passwordHash: hash,
	}, nil
}

// Verify reports whether the supplied credentials match. Both the username
// comparison and the bcrypt check run on every call so timing does not leak
// which part failed.
func (c *CredentialChecker) Verify(username, password string) bool {
	usernameMatch := subtle.ConstantTimeCompare([]byte(c.username), []byte(username)) == 1
	passwordMatch := bcrypt.CompareHashAndPassword(c.passwordHash, []byte(password)) == nil
	return usernameMatch && passwordMatch
}
