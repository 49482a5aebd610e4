// Copyright (c) 2025 The Drawlab Authors.
// MIT License; see LICENSE.

/*
Package main provides the entry point for the Drawlab experiment server.

Drawlab serves behavioral drawing/description experiments to participants
recruited via Prolific: each session receives a pre-generated configuration
of phases (train, test, free generation), and completed sessions are
persisted with duplicate-participation protection.

# Starting the Server

The server requires a database URL via environment variables or CLI flags:

	DATABASE_URL=file:drawlab.db go run main.go

Or with flags:

	go run main.go -p 8001 -d "postgres://..." -t postgres

# Configuration

Required settings:

  - DATABASE_URL (-d): sqlite or postgres connection string

Optional settings:

  - PORT (-p): Server port (default: 8001)
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"
  - CONFIG_DIR (-config-dir): generated config root (default: static/configs)
  - STIMULI_SET_DIR / STIMULI_SET: stimuli set served by /stimuli

# Generating Configs

Configs are generated offline before serving:

	go run ./cmd/genconfigs -experiments <id,...> -output_dir static/configs

# Architecture

The server uses a handler-based architecture with dependency injection:

  - experiment: config generation (descriptor parsing, registry, batching)
  - stimuli: stimuli/language set loading
  - configstore: generated-config files, session resolution
  - db: participant record persistence
  - handlers: HTTP request handlers (configs, records)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: domain and request/response types
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
