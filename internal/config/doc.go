// Personify - Customer Persona Segmentation and Semantic Retrieval
// Copyright 2026 Dain Kwon (dkwon917)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dkwon917/personify

/*
Package config provides layered application configuration via Koanf v2.

Configuration is assembled from three sources, lowest to highest
precedence:

 1. Built-in defaults
 2. An optional YAML config file (config.yaml, or CONFIG_PATH)
 3. Environment variables (HTTP_PORT, EMBEDDER_API_KEY, ...)

The loaded Config is validated once and then treated as read-only for
the process lifetime; request handlers receive it by reference rather
than consulting globals.
*/
package config
