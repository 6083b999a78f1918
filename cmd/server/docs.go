// Personify - Customer Persona Segmentation and Semantic Retrieval
// Copyright 2026 Dain Kwon (dkwon917)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dkwon917/personify

// Package main provides the Personify HTTP server
//
// @title Personify API
// @version 1.0
// @description Customer persona segmentation and semantic retrieval service.
// @description
// @description Two pipelines assign a customer profile to a persona segment:
// @description a trained k-means model applied to hand-engineered features
// @description (analysis endpoints), and cosine-similarity retrieval over
// @description persona text embeddings (the rag/query endpoint).
// @description
// @description ## Authentication
// @description
// @description When a JWT secret is configured, API routes require a bearer
// @description token signed with HS256. Without a secret the API is open.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {
// @description     "code": "ERROR_CODE",
// @description     "message": "Human-readable error message",
// @description     "details": {}
// @description   },
// @description   "metadata": {
// @description     "timestamp": "2026-09-01T12:00:00Z",
// @description     "request_id": "..."
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/dkwon917/personify/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8080
// @BasePath /
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description HS256 bearer token, sent as "Bearer <token>". Only enforced when security.jwt_secret is configured.
//
// @tag.name Analysis
// @tag.description Clustering pipeline: profile to persona segment via nearest trained centroid
//
// @tag.name Retrieval
// @tag.description Retrieval pipeline: semantic persona search over stored embeddings
//
// @tag.name Personas
// @tag.description Persona corpus management (records keyed by cluster name)
//
// @tag.name Health
// @tag.description Health, liveness, and readiness probes
package main
