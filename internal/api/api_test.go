// Automated Real Estate Platform - Social Media Automation and Analytics
// Copyright 2026 smaskoun
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/smaskoun/Automated-platform-Real-Estate

package api

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	json "github.com/goccy/go-json"

	"github.com/smaskoun/Automated-platform-Real-Estate/internal/auth"
	"github.com/smaskoun/Automated-platform-Real-Estate/internal/config"
	"github.com/smaskoun/Automated-platform-Real-Estate/internal/learning"
	"github.com/smaskoun/Automated-platform-Real-Estate/internal/logging"
	"github.com/smaskoun/Automated-platform-Real-Estate/internal/models"
	"github.com/smaskoun/Automated-platform-Real-Estate/internal/seo"
	"github.com/smaskoun/Automated-platform-Real-Estate/internal/store"
)

type testServer struct {
	handler http.Handler
	deps    Dependencies
	token   string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	logger := logging.NewTestLogger(io.Discard)

	cfg := &config.Config{}
	cfg.Security = config.SecurityConfig{
		JWTSecret:         "test-secret",
		SessionTimeout:    time.Hour,
		RateLimitDisabled: true,
		CORSOrigins:       []string{"*"},
	}
	cfg.Learning = config.LearningConfig{
		MinDataPoints:   3,
		RetentionDays:   365,
		HistoryCap:      100,
		IngestLimit:     50,
		DefaultPlatform: "manual",
	}

	st, err := store.New(config.DatabaseConfig{Path: ":memory:", MaxMemory: "256MB", Threads: 1}, logger)
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	jwtManager, err := auth.NewJWTManager(cfg.Security)
	if err != nil {
		t.Fatalf("NewJWTManager: %v", err)
	}
	token, err := jwtManager.GenerateToken("admin", "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	deps := Dependencies{
		Config: cfg,
		Store:  st,
		Engine: learning.NewEngine(cfg.Learning, st, logger),
		SEO:    seo.NewService(cfg.SEO, seo.DefaultKeywordConfig(), seo.NoopGrammarChecker{}, logger),
		JWT:    jwtManager,
		Logger: logger,
	}

	return &testServer{
		handler: NewRouter(deps).Routes(),
		deps:    deps,
		token:   token,
	}
}

type envelope struct {
	Status string           `json:"status"`
	Data   json.RawMessage  `json:"data"`
	Error  *models.APIError `json:"error"`
}

// do issues a request through the router. A nil body sends no payload; any
// other value is JSON-encoded. An empty token omits the Authorization header.
func (ts *testServer) do(t *testing.T, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)

	var env envelope
	// Export endpoints return raw JSON documents (arrays) with the same
	// content type; only object bodies carry the envelope.
	if ct := rec.Header().Get("Content-Type"); ct == "application/json" &&
		bytes.HasPrefix(bytes.TrimSpace(rec.Body.Bytes()), []byte("{")) {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode envelope from %s %s: %v (body %q)", method, path, err, rec.Body.String())
		}
	}
	return rec, env
}

func (ts *testServer) get(t *testing.T, path string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	return ts.do(t, http.MethodGet, path, ts.token, nil)
}

func (ts *testServer) post(t *testing.T, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	return ts.do(t, http.MethodPost, path, ts.token, body)
}

func decodeData(t *testing.T, env envelope, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, dst); err != nil {
		t.Fatalf("decode data: %v (data %q)", err, string(env.Data))
	}
}

func TestHealthEndpoints(t *testing.T) {
	ts := newTestServer(t)

	rec, env := ts.do(t, http.MethodGet, "/health", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /health = %d, want 200", rec.Code)
	}
	if env.Status != "success" {
		t.Errorf("status = %q, want success", env.Status)
	}

	rec, _ = ts.do(t, http.MethodGet, "/health/ready", "", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("GET /health/ready = %d, want 200", rec.Code)
	}
}

func TestMetricsEndpointOpen(t *testing.T) {
	ts := newTestServer(t)
	rec, _ := ts.do(t, http.MethodGet, "/metrics", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /metrics = %d, want 200", rec.Code)
	}
}

func TestAuthRequired(t *testing.T) {
	ts := newTestServer(t)

	rec, _ := ts.do(t, http.MethodGet, "/api/v1/content", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated request = %d, want 401", rec.Code)
	}

	rec, _ = ts.do(t, http.MethodGet, "/api/v1/content", "not-a-token", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("garbage token = %d, want 401", rec.Code)
	}

	rec, _ = ts.get(t, "/api/v1/content")
	if rec.Code != http.StatusOK {
		t.Errorf("valid token = %d, want 200", rec.Code)
	}
}

func TestLogin(t *testing.T) {
	ts := newTestServer(t)

	checker, err := auth.NewCredentialChecker("admin", "s3cret")
	if err != nil {
		t.Fatalf("NewCredentialChecker: %v", err)
	}
	ts.deps.Credentials = checker
	ts.handler = NewRouter(ts.deps).Routes()

	rec, env := ts.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": "admin", "password": "wrong",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad password = %d, want 401", rec.Code)
	}
	if env.Error == nil || env.Error.Code != "AUTHENTICATION_ERROR" {
		t.Errorf("error = %+v, want AUTHENTICATION_ERROR", env.Error)
	}

	rec, env = ts.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": "admin", "password": "s3cret",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}

	var resp loginResponse
	decodeData(t, env, &resp)
	if resp.Token == "" || resp.TokenType != "Bearer" {
		t.Fatalf("login response = %+v", resp)
	}
	if resp.ExpiresIn != 3600 {
		t.Errorf("expires_in = %d, want 3600", resp.ExpiresIn)
	}

	rec, _ = ts.do(t, http.MethodGet, "/api/v1/content", resp.Token, nil)
	if rec.Code != http.StatusOK {
		t.Errorf("issued token rejected, status %d", rec.Code)
	}

	rec, env = ts.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"username": "admin"})
	if rec.Code != http.StatusBadRequest || env.Error == nil || env.Error.Code != "VALIDATION_ERROR" {
		t.Errorf("missing password = %d %+v, want 400 VALIDATION_ERROR", rec.Code, env.Error)
	}
}
