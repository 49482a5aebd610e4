// Copyright (c) 2025 The Drawlab Authors.
// MIT License; see LICENSE.

/*
Package router defines the HTTP routes using Go 1.22+ method routing.

# Routes

	GET  /health          Health check
	GET  /configs         All generated config metadata
	GET  /configs/active  Resolve and serve the session's config
	GET  /stimuli         Stimulus groups for one condition
	POST /records         Submit a participant's document

NewRouter wires the handlers with their dependencies (database connection,
config store, stimuli set) and wraps each route with request logging.
*/
package router
