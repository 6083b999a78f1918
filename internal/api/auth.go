// Personify - Customer Persona Segmentation and Semantic Retrieval
// Copyright 2026 Dain Kwon (dkwon917)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dkwon917/personify

package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dkwon917/personify/internal/logging"
)

// BearerAuth verifies HS256 bearer tokens on write and analysis routes.
// When no secret is configured the middleware passes every request
// through, so single-tenant deployments can run without token plumbing.
func BearerAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" {
				next.ServeHTTP(w, r)
				return
			}

			tokenString := extractBearerToken(r)
			if tokenString == "" {
				respondError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Missing bearer token", nil)
				return
			}

			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				logging.Ctx(r.Context()).Warn().Err(err).Msg("Rejected request with invalid bearer token")
				respondError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid bearer token", err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return header[len(prefix):]
}
