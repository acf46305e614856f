// Package report renders classification outcomes as terminal tables: one
// badge row per metric for a single file, and one row per file for batch
// summaries.
//
// Rendering is presentation only. Statuses and verdicts arrive fully decided;
// this package never re-derives them.
package report
