// Package store reads puzzle input from disk and persists run reports.
//
// Reports are serialised as indented JSON and written via a temp file that
// is renamed over the target, so a reader never sees a half-written report.
package store
