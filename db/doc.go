// Copyright (c) 2025 The Drawlab Authors.
// MIT License; see LICENSE.

/*
Package db stores participant records in SQL (sqlite or postgres).

# Schema

One table, participant_record, keyed by (experiment_id, user_id). The
document column holds the participant's full submitted config JSON; the
completed column mirrors the document's metadata.completed flag so the
duplicate-submission guard is a single indexed lookup.

# Operations

	RecordExists(db, experimentID, userID)  true only for COMPLETED records
	UpsertRecord(db, rec)                   insert-or-replace the document
	UpdateRecord(db, expID, userID, fields) merge partial top-level fields
	FetchRecord(db, experimentID, userID)   load a record, nil if absent

# Duplicate Guard

The serving layer checks RecordExists before calling UpsertRecord. That
check-then-write pair is not transactional: concurrent submissions from the
same participant can both pass the check. The primary key collapses them to
one row (last write wins) rather than duplicating, but callers needing a
strict at-most-once guarantee must add their own constraint.
*/
package db
