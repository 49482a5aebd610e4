// Copyright (c) 2025 The Drawlab Authors.
// MIT License; see LICENSE.

/*
Package models defines the domain and API types shared across the server.

# Config Documents

A ConfigDocument is the full unit served to one participant for one run:
metadata, an ordered list of phase names, and one PhaseConfig per phase.
The wire format inlines each phase as a top-level JSON key:

	{
	  "metadata": {"experiment_id": "...", "condition": "A", ...},
	  "phases": ["phase_1", "phase_2"],
	  "phase_1": {"images": [...], "ui_components": ["images", "draw"]},
	  "phase_2": {"images": [null, null], "sampling": true, ...}
	}

ConfigDocument carries a custom MarshalJSON/UnmarshalJSON pair for this
shape. Submitted documents additionally carry per-phase "strokes" and
"user_descriptions" response arrays.

# UI Components

Phases declare their client UI via component tags:

	ComponentImages       = "images"       show stimulus images
	ComponentDraw         = "draw"         collect drawings
	ComponentDescribe     = "describe"     collect descriptions
	ComponentDescriptions = "descriptions" show provided descriptions

# Results

SubmitResult reports submission outcomes as plain values: duplicate
submissions and missing participant identifiers are expected business
outcomes, not faults.
*/
package models
