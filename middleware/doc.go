// Copyright (c) 2025 The Drawlab Authors.
// MIT License; see LICENSE.

/*
Package middleware provides HTTP middleware and JSON helpers.

# Logging

WithLogging wraps a handler with start/completion logging via slog:

	mux.HandleFunc("GET /configs", middleware.WithLogging(h.ListConfigs))

# JSON Helpers

	JSONResponse(w, status, data)   encode a JSON response
	ErrorResponse(w, status, msg)   encode a models.ErrorResponse
	ParseJSONBody(r, &target)       decode a request body

# CORS

CORS wraps the whole mux to allow cross-origin requests from the experiment
frontend, including OPTIONS preflights.
*/
package middleware
