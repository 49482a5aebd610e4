// Copyright (c) 2025 The Drawlab Authors.
// MIT License; see LICENSE.

/*
Package handlers contains HTTP request handlers for the experiment server.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - ConfigHandler: config listing, session resolution, stimulus listing
  - RecordHandler: participant record submission

# Serving Flow

A participant's session fetches its config, runs the phases client-side,
then submits the annotated document with responses merged in:

	GET  /configs                → ListConfigs (all generated metadata)
	GET  /configs/active?... → GetActiveConfig (resolve + annotate)
	GET  /stimuli?condition=A    → GetStimuli
	POST /records                → SubmitRecord

GetActiveConfig reads the Prolific identifiers (PROLIFIC_PID, STUDY_ID,
SESSION_ID) and optional experiment_id/condition from query parameters. The
resolved config is pinned to SESSION_ID so later requests in the same
session replay the same selection, and each response carries a fresh run_id.

# Duplicate Guard

SubmitRecord checks db.RecordExists before upserting: a participant with a
completed record gets {"success": false} and their stored record is left
untouched. Submissions without a participant id are rejected before the
store is contacted. The admin user is diverted to the "test" experiment.
*/
package handlers
