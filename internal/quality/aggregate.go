package quality

import (
	"soundcheck/internal/analysis"
)

// Breakdown holds the per-metric statuses for one file so reporting layers
// can render badges independently of the overall verdict.
type Breakdown struct {
	Normalization   MetricStatus
	Reverb          MetricStatus
	NoiseFloor      MetricStatus
	LeadingSilence  MetricStatus
	TrailingSilence MetricStatus
	LongestSilence  MetricStatus
	Clipping        MetricStatus
	MicBleed        MetricStatus
}

// Statuses returns the breakdown as a multiset for reduction. Unset entries
// are included; Worst ignores them.
func (b Breakdown) Statuses() []MetricStatus {
	return []MetricStatus{
		b.Normalization,
		b.Reverb,
		b.NoiseFloor,
		b.LeadingSilence,
		b.TrailingSilence,
		b.LongestSilence,
		b.Clipping,
		b.MicBleed,
	}
}

// Evaluate runs every metric classifier over the result.
func Evaluate(result *analysis.Result) Breakdown {
	if result == nil {
		return Breakdown{}
	}
	return Breakdown{
		Normalization:   ClassifyNormalization(result.Normalization),
		Reverb:          ClassifyReverb(result.Reverb),
		NoiseFloor:      ClassifyNoiseFloor(result.NoiseFloorDb),
		LeadingSilence:  ClassifySilence(result.LeadingSilenceSec),
		TrailingSilence: ClassifySilence(result.TrailingSilenceSec),
		LongestSilence:  ClassifySilence(result.LongestSilenceSec),
		Clipping:        ClassifyClipping(result.Clipping),
		MicBleed:        ClassifyMicBleed(result.MicBleed),
	}
}

// Aggregate reduces one result to a single verdict using the fixed precedence
// order:
//
//  1. Any hard structural validation failure wins outright and yields
//     VerdictFail; no analysis was meaningfully performed, so not even the
//     file's own error status can override it.
//  2. A file-level read/decode error yields VerdictError.
//  3. Otherwise the metric statuses (plus any caller-supplied extras, such as
//     the preset-aware overlap check) reduce by worst-status-wins: a
//     metric-level error maps to VerdictFail, a warning to VerdictWarning,
//     and an empty or all-success multiset to VerdictPass.
//
// Extras let preset-aware callers join the reduction without this function
// needing preset knowledge.
func Aggregate(result *analysis.Result, extras ...MetricStatus) Verdict {
	if result == nil {
		return VerdictError
	}
	if result.Validation.AnyFailed() {
		return VerdictFail
	}
	if result.Status == analysis.FileStatusError {
		return VerdictError
	}

	statuses := append(Evaluate(result).Statuses(), extras...)
	switch Worst(statuses...) {
	case StatusError:
		return VerdictFail
	case StatusWarning:
		return VerdictWarning
	default:
		return VerdictPass
	}
}
