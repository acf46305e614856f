package quality

import (
	"strings"

	"soundcheck/internal/analysis"
	"soundcheck/internal/preset"
)

// ClassifyOverlap runs the preset-aware speech-overlap and stereo-type check.
// It lives outside Aggregate because it needs preset thresholds; callers fold
// its status into the reduction through Aggregate's extras argument.
//
// The check is unset when the measurement is absent or the preset declares no
// overlap criteria. A stereo type outside the preset's allow-set classifies
// as error: the recording layout itself is wrong, not just the performance.
// Overlap amounts compare against the preset's fail thresholds first, then
// its warn thresholds; a zero threshold is not configured and never fires.
func ClassifyOverlap(cfg preset.Config, o *analysis.Overlap) MetricStatus {
	if o == nil || !cfg.HasOverlapCriteria() {
		return StatusUnset
	}

	if len(cfg.StereoTypes) > 0 && !stereoTypeAllowed(cfg.StereoTypes, o.StereoType) {
		return StatusError
	}

	if exceeds(cfg.OverlapFailPercent, o.OverlapPercentage) ||
		exceeds(cfg.OverlapFailSeconds, o.OverlapDurationSec) {
		return StatusError
	}
	if exceeds(cfg.OverlapWarnPercent, o.OverlapPercentage) ||
		exceeds(cfg.OverlapWarnSeconds, o.OverlapDurationSec) {
		return StatusWarning
	}
	return StatusSuccess
}

func stereoTypeAllowed(allowed []string, stereoType string) bool {
	stereoType = strings.ToLower(strings.TrimSpace(stereoType))
	if stereoType == "" {
		return false
	}
	for _, token := range allowed {
		if strings.ToLower(strings.TrimSpace(token)) == stereoType {
			return true
		}
	}
	return false
}

func exceeds(threshold, value float64) bool {
	return threshold > 0 && value > threshold
}
