// Package journal persists organize-run history in SQLite.
//
// The Store manages the database connection, schema initialization, and the
// queries behind `sortd history`. Runs are append-only records: a finished
// run's counters never change, so the journal is a plain log rather than a
// workflow state machine. Schema changes bump schemaVersion; users delete
// the database to adopt the new schema.
package journal
