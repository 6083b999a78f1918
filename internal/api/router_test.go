// Personify - Customer Persona Segmentation and Semantic Retrieval
// Copyright 2026 Dain Kwon (dkwon917)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dkwon917/personify

package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	_ "github.com/dkwon917/personify/docs"

	"github.com/dkwon917/personify/internal/models"
)

func newTestRouter(t *testing.T, secret string) http.Handler {
	t.Helper()
	cfg := testConfig()
	cfg.Security.JWTSecret = secret
	handler := NewHandler(loadTestAnalyzer(t), &stubRetriever{}, &stubStore{}, cfg)
	return NewRouter(handler, cfg)
}

func signToken(t *testing.T, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "test",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func TestRouterRoutes(t *testing.T) {
	router := newTestRouter(t, "")

	tests := []struct {
		method   string
		path     string
		body     string
		wantCode int
	}{
		{http.MethodPost, "/api/v1/analysis", `{"Age":30,"Purchase Amount (USD)":120,"Subscription Status":"Yes","Frequency of Purchases":"Monthly"}`, http.StatusOK},
		{http.MethodPost, "/api/v1/analysis/batch", `{"profiles":[]}`, http.StatusOK},
		{http.MethodPost, "/api/v1/rag/query", `{"persona_name":"x"}`, http.StatusOK},
		{http.MethodGet, "/api/v1/personas", "", http.StatusOK},
		{http.MethodGet, "/api/v1/health", "", http.StatusOK},
		{http.MethodGet, "/api/v1/health/live", "", http.StatusOK},
		{http.MethodGet, "/api/v1/health/ready", "", http.StatusOK},
		{http.MethodGet, "/metrics", "", http.StatusOK},
		{http.MethodGet, "/api/v1/analysis", "", http.StatusMethodNotAllowed},
		{http.MethodGet, "/api/v1/nope", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d\nbody: %s", rec.Code, tt.wantCode, rec.Body.String())
			}
		})
	}
}

func TestRouterSecurityHeaders(t *testing.T) {
	router := newTestRouter(t, "")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health/live", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q", got)
	}
	if got := rec.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("X-Frame-Options = %q", got)
	}
}

func TestRouterRequestIDHeader(t *testing.T) {
	router := newTestRouter(t, "")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health/live", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header is not set")
	}
}

func TestRouterBearerAuth(t *testing.T) {
	const secret = "test-secret-key-for-hmac-signing"
	router := newTestRouter(t, secret)

	tests := []struct {
		name     string
		token    string
		wantCode int
	}{
		{"missing token", "", http.StatusUnauthorized},
		{"garbage token", "not.a.jwt", http.StatusUnauthorized},
		{"wrong secret", signToken(t, "some-other-secret"), http.StatusUnauthorized},
		{"valid token", signToken(t, secret), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/health/live", nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d\nbody: %s", rec.Code, tt.wantCode, rec.Body.String())
			}
		})
	}
}

func TestRouterAuthDisabledWithoutSecret(t *testing.T) {
	router := newTestRouter(t, "")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/rag/query", strings.NewReader(`{"persona_name":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 without auth configured", rec.Code)
	}
}

func TestRouterExpiredToken(t *testing.T) {
	const secret = "test-secret-key-for-hmac-signing"
	router := newTestRouter(t, secret)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "test",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health/live", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401 for expired token", rec.Code)
	}
}

func TestRouterPersonaGet(t *testing.T) {
	cfg := testConfig()
	st := &stubStore{records: []models.PersonaRecord{
		{Title: "Loyal VIP Customer", Description: "High spender", ClusterName: "loyal_vip_customer", Embedding: []float64{0.1, 0.2}},
	}}
	handler := NewHandler(loadTestAnalyzer(t), &stubRetriever{}, st, cfg)
	router := NewRouter(handler, cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/personas/loyal_vip_customer", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\nbody: %s", rec.Code, rec.Body.String())
	}
	var summary personaSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &summary); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if summary.Title != "Loyal VIP Customer" {
		t.Errorf("Title = %q", summary.Title)
	}
	if strings.Contains(rec.Body.String(), "embedding") {
		t.Error("response must not expose the stored embedding")
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/personas/unknown_cluster", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 for unknown cluster", rec.Code)
	}
}

func TestRouterErrorEnvelopeEchoesRequestID(t *testing.T) {
	router := newTestRouter(t, "")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analysis", strings.NewReader(`{"Age":`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", "req-12345")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var envelope models.APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	if envelope.Metadata.RequestID != "req-12345" {
		t.Errorf("metadata.request_id = %q, want req-12345", envelope.Metadata.RequestID)
	}
}

func TestRouterMetricsEndpointIsOpen(t *testing.T) {
	// The scrape endpoint sits outside the authenticated API group.
	router := newTestRouter(t, "some-secret")

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "go_goroutines") {
		t.Error("metrics output missing standard collectors")
	}
}

func TestRouterSwaggerUI(t *testing.T) {
	router := newTestRouter(t, "")

	req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "swagger-ui") {
		t.Error("swagger UI page missing swagger-ui container")
	}

	req = httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("doc.json status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Personify API") {
		t.Error("doc.json missing API title")
	}
	if !strings.Contains(body, "/api/v1/rag/query") {
		t.Error("doc.json missing retrieval path")
	}
}
