// Package main hosts the soundcheck CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into
// classification runs, preset catalog queries, admission checks, preference
// edits, and configuration scaffolding. It centralizes configuration
// resolution, preference-store access, and logger setup so subcommands can
// focus on user experience instead of wiring.
//
// Keep this package lean: decision logic belongs in internal/quality and
// internal/preset; this layer only loads inputs, invokes the engine, and
// renders outputs.
package main
