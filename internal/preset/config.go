package preset

// FilenameMode selects the filename-validation policy a preset expects.
// Validation itself is caller-owned; the preset only declares the mode.
type FilenameMode string

const (
	// FilenameModeNone performs no filename validation.
	FilenameModeNone FilenameMode = ""
	// FilenameModeScript expects long-form recordings named after the script
	// they were read from: <speaker>_<script-number>.
	FilenameModeScript FilenameMode = "script"
	// FilenameModeConversation expects the structured pattern used by
	// bilingual conversational recordings: <lang>-<lang>_<session>_<take>.
	FilenameModeConversation FilenameMode = "conversation"
)

// Config is one named bundle of admission and scoring criteria. Allow-set
// values are canonical string tokens ("48000", "16", "2"); an empty set means
// no restriction. Built-in configs are immutable; the "custom" slot is
// supplied by the caller and may be partially or fully empty.
type Config struct {
	Name string `json:"name" toml:"name"`

	FileTypes   []string `json:"file_type,omitempty" toml:"file_type"`
	SampleRates []string `json:"sample_rate,omitempty" toml:"sample_rate"`
	BitDepths   []string `json:"bit_depth,omitempty" toml:"bit_depth"`
	Channels    []string `json:"channels,omitempty" toml:"channels"`

	// MinDuration is a duration floor in seconds as a string token; empty
	// means no floor.
	MinDuration string `json:"min_duration,omitempty" toml:"min_duration"`

	FilenameMode FilenameMode `json:"filename_mode,omitempty" toml:"filename_mode"`

	// Stereo/overlap criteria, consumed only by preset-aware callers. The
	// core aggregator never reads them. Zero thresholds mean the check is
	// not configured for this preset.
	StereoTypes        []string `json:"stereo_types,omitempty" toml:"stereo_types"`
	OverlapWarnPercent float64  `json:"overlap_warn_percent,omitempty" toml:"overlap_warn_percent"`
	OverlapFailPercent float64  `json:"overlap_fail_percent,omitempty" toml:"overlap_fail_percent"`
	OverlapWarnSeconds float64  `json:"overlap_warn_seconds,omitempty" toml:"overlap_warn_seconds"`
	OverlapFailSeconds float64  `json:"overlap_fail_seconds,omitempty" toml:"overlap_fail_seconds"`
}

// HasOverlapCriteria reports whether any stereo/overlap criterion is set.
func (c Config) HasOverlapCriteria() bool {
	return len(c.StereoTypes) > 0 ||
		c.OverlapWarnPercent > 0 || c.OverlapFailPercent > 0 ||
		c.OverlapWarnSeconds > 0 || c.OverlapFailSeconds > 0
}
