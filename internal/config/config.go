// Personify - Customer Persona Segmentation and Semantic Retrieval
// Copyright 2026 Dain Kwon (dkwon917)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dkwon917/personify

package config

import (
	"fmt"
	"time"
)

// Config is the complete application configuration, assembled once at
// startup and treated as read-only afterwards.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
	Artifacts ArtifactsConfig `koanf:"artifacts"`
	Embedder  EmbedderConfig  `koanf:"embedder"`
	Store     StoreConfig     `koanf:"store"`
	Security  SecurityConfig  `koanf:"security"`
	Retrieval RetrievalConfig `koanf:"retrieval"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host        string        `koanf:"host"`
	Port        int           `koanf:"port"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // "development" or "production"
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"` // "json" or "console"
	Caller bool   `koanf:"caller"`
}

// ArtifactsConfig locates the serialized training artifacts consumed
// at startup.
type ArtifactsConfig struct {
	ModelPath   string `koanf:"model_path"`
	ScalerPath  string `koanf:"scaler_path"`
	ColumnsPath string `koanf:"columns_path"`
}

// EmbedderConfig holds the embedding provider settings.
type EmbedderConfig struct {
	BaseURL   string        `koanf:"base_url"`
	APIKey    string        `koanf:"api_key"`
	Model     string        `koanf:"model"`
	Dimension int           `koanf:"dimension"`
	Timeout   time.Duration `koanf:"timeout"`
}

// StoreConfig holds persona store settings.
type StoreConfig struct {
	Path string `koanf:"path"` // BadgerDB data directory
}

// SecurityConfig holds API security settings. When JWTSecret is empty
// the API runs unauthenticated, which is only sensible behind a
// trusted gateway.
type SecurityConfig struct {
	JWTSecret         string        `koanf:"jwt_secret"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// RetrievalConfig holds retrieval pipeline defaults.
type RetrievalConfig struct {
	DefaultTopK int `koanf:"default_top_k"`
}

// Validate checks the configuration for startup-fatal problems.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in [1, 65535], got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %s", c.Server.Timeout)
	}

	switch c.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "fatal":
	default:
		return fmt.Errorf("logging.level %q is not a valid level", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format %q must be json or console", c.Logging.Format)
	}

	if c.Artifacts.ModelPath == "" {
		return fmt.Errorf("artifacts.model_path is required")
	}
	if c.Artifacts.ScalerPath == "" {
		return fmt.Errorf("artifacts.scaler_path is required")
	}
	if c.Artifacts.ColumnsPath == "" {
		return fmt.Errorf("artifacts.columns_path is required")
	}

	if c.Embedder.BaseURL == "" {
		return fmt.Errorf("embedder.base_url is required")
	}
	if c.Embedder.Model == "" {
		return fmt.Errorf("embedder.model is required")
	}
	if c.Embedder.Dimension < 1 {
		return fmt.Errorf("embedder.dimension must be at least 1, got %d", c.Embedder.Dimension)
	}

	if c.Store.Path == "" {
		return fmt.Errorf("store.path is required")
	}

	if !c.Security.RateLimitDisabled {
		if c.Security.RateLimitReqs < 1 {
			return fmt.Errorf("security.rate_limit_reqs must be at least 1, got %d", c.Security.RateLimitReqs)
		}
		if c.Security.RateLimitWindow <= 0 {
			return fmt.Errorf("security.rate_limit_window must be positive, got %s", c.Security.RateLimitWindow)
		}
	}

	if c.Retrieval.DefaultTopK < 1 || c.Retrieval.DefaultTopK > 10 {
		return fmt.Errorf("retrieval.default_top_k must be in [1, 10], got %d", c.Retrieval.DefaultTopK)
	}

	return nil
}
