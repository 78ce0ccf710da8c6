// Package history persists a local journal of render runs in SQLite.
//
// The journal is observability only: the pipeline writes one row per run
// (successful or failed) and the CLI reads it back for `timelapse history`.
// Nothing in planning or encoding ever consults it, so disabling the journal
// changes no render behaviour.
package history
