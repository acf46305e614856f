package quality

import (
	"strings"

	"soundcheck/internal/analysis"
)

// Noise floor thresholds in dB. At or below the quiet threshold the floor is
// inaudible; between the two it is noticeable; above the loud threshold it
// competes with the recording.
const (
	noiseFloorQuietDb = -60
	noiseFloorLoudDb  = -50
)

// Silence thresholds in seconds, shared by the edge-silence and longest-gap
// checks. The checks are conceptually distinct but have always used the same
// thresholds.
const (
	silenceWarnSeconds = 5
	silenceErrorSec    = 10
)

// Clipping thresholds. Rules are applied top to bottom, first match wins.
const (
	clippedPctError     = 1
	clipEventsError     = 50
	clippedPctWarn      = 0.1
	clipEventsWarn      = 10
	nearClippingPctWarn = 1
)

// Microphone bleed detector thresholds.
const (
	bleedLevelDbThreshold = -60
	bleedConfirmedPctWarn = 0.5
)

// ClassifyNormalization maps the analyzer's normalization tag to a status.
// Anything other than the "normalized" tag means the file still needs level
// treatment, which is correctable and therefore only a warning.
func ClassifyNormalization(tag *string) MetricStatus {
	if tag == nil || strings.TrimSpace(*tag) == "" {
		return StatusUnset
	}
	if strings.TrimSpace(*tag) == "normalized" {
		return StatusSuccess
	}
	return StatusWarning
}

// ClassifyReverb maps the analyzer's free-text reverb quality label to a
// status. Unrecognized non-empty labels classify as error on purpose: an
// unknown label means the analyzer vocabulary changed and silently treating
// it as acceptable would hide regressions.
func ClassifyReverb(label *string) MetricStatus {
	if label == nil {
		return StatusUnset
	}
	trimmed := strings.TrimSpace(*label)
	if trimmed == "" {
		return StatusUnset
	}
	// "Very Poor" must be matched before "Poor".
	if strings.Contains(trimmed, "Very Poor") {
		return StatusError
	}
	for _, good := range []string{"Excellent", "Good", "Fair"} {
		if strings.Contains(trimmed, good) {
			return StatusSuccess
		}
	}
	if strings.Contains(trimmed, "Poor") {
		return StatusWarning
	}
	return StatusError
}

// ClassifyNoiseFloor maps a measured noise floor level to a status. The
// analyzer reports -inf for silent or undetermined floors; that is a gap in
// measurement, not a perfect floor, so it classifies as unset.
func ClassifyNoiseFloor(level *analysis.Decibels) MetricStatus {
	if level == nil || level.Silent() {
		return StatusUnset
	}
	switch {
	case float64(*level) <= noiseFloorQuietDb:
		return StatusSuccess
	case float64(*level) <= noiseFloorLoudDb:
		return StatusWarning
	default:
		return StatusError
	}
}

// ClassifySilence maps a silence duration to a status. Both the
// leading/trailing edge check and the longest-gap check use this function.
func ClassifySilence(seconds *float64) MetricStatus {
	if seconds == nil {
		return StatusUnset
	}
	switch {
	case *seconds < silenceWarnSeconds:
		return StatusSuccess
	case *seconds < silenceErrorSec:
		return StatusWarning
	default:
		return StatusError
	}
}

// ClassifyClipping maps the clipping record to a status. Rules are ordered by
// severity and the first match wins; the final near-clipping rule only fires
// when no actual clipping was found.
func ClassifyClipping(c *analysis.Clipping) MetricStatus {
	if c == nil {
		return StatusUnset
	}
	switch {
	case c.ClippedPercentage > clippedPctError || c.ClippingEventCount > clipEventsError:
		return StatusError
	case c.ClippedPercentage > clippedPctWarn || c.ClippingEventCount > clipEventsWarn:
		return StatusWarning
	case c.ClippedPercentage > 0 && c.ClippingEventCount > 0:
		return StatusWarning
	case c.NearClippingPercentage > nearClippingPctWarn:
		return StatusWarning
	default:
		return StatusSuccess
	}
}

// ClassifyMicBleed maps the two bleed detectors to a status. The detectors
// are independent and OR-ed: either firing yields a warning. Bleed never
// classifies as error because both detectors are known to false-positive on
// unusual room acoustics.
func ClassifyMicBleed(b *analysis.MicBleed) MetricStatus {
	if b == nil || (b.Old == nil && b.New == nil) {
		return StatusUnset
	}
	detected := false
	if b.Old != nil {
		if float64(b.Old.LeftChannelBleedDb) > bleedLevelDbThreshold ||
			float64(b.Old.RightChannelBleedDb) > bleedLevelDbThreshold {
			detected = true
		}
	}
	if b.New != nil && b.New.PercentageConfirmedBleed > bleedConfirmedPctWarn {
		detected = true
	}
	if detected {
		return StatusWarning
	}
	return StatusSuccess
}
