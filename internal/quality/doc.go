// Package quality turns measured audio facts into ordinal statuses and one
// overall verdict.
//
// The package is three layers of pure functions:
//
//  1. Metric classifiers - one per analysis channel (normalization, reverb,
//     noise floor, silence, clipping, microphone bleed), each mapping a raw
//     measurement or its absence to a MetricStatus. Classifiers are total and
//     independent; invocation order never matters.
//  2. The aggregator - a fixed precedence reduction: structural validation
//     failure beats everything, then the file's own read error, then
//     worst-status-wins across the applicable metrics.
//  3. The preset-aware overlap check - deliberately outside the aggregator
//     because it needs preset thresholds; callers fold its status into the
//     reduction through Aggregate's extras argument.
//
// Nothing here retains state, logs, or returns errors: a missing measurement
// degrades to StatusUnset and is excluded from aggregation rather than
// penalized.
package quality
