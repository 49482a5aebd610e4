// Copyright (c) 2025 The Drawlab Authors.
// MIT License; see LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8001)
  - DatabaseURL: sqlite or postgres connection string (required)
  - DatabaseType: "sqlite" (default) or "postgres"
  - ConfigDir: root of generated experiment configs (default: static/configs)
  - StimuliDir: directory of stimuli set files (default: static/stimuli_sets)
  - StimuliSet: stimuli set name served by the /stimuli endpoint

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type (sqlite or postgres)
	-config-dir   Generated config directory
	-stimuli-dir  Stimuli set directory
	-stimuli-set  Stimuli set name

# Environment Variables

Flags fall back to environment variables:

	PORT            → -p
	DATABASE_URL    → -d
	DATABASE_TYPE   → -t
	CONFIG_DIR      → -config-dir
	STIMULI_SET_DIR → -stimuli-dir
	STIMULI_SET     → -stimuli-set

CLI flags take precedence over environment variables. DATABASE_URL is the
only required setting.
*/
package cliparse
