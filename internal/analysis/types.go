package analysis

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
)

// FileStatus is the top-level outcome reported by the analyzer for one file.
type FileStatus string

const (
	// FileStatusNormal means the file was read and analyzed.
	FileStatusNormal FileStatus = "normal"
	// FileStatusError means the file could not be read or decoded; any metric
	// fields present alongside it are meaningless.
	FileStatusError FileStatus = "error"
)

// CheckStatus is the outcome of one structural validation check.
type CheckStatus string

const (
	CheckUnset CheckStatus = ""
	CheckPass  CheckStatus = "pass"
	CheckFail  CheckStatus = "fail"
)

// FieldCheck records one structural validation comparison. Target and Actual
// hold the canonical string tokens compared (e.g. "48000" vs "44100") so
// reporting layers can show users what was expected.
type FieldCheck struct {
	Status CheckStatus `json:"status"`
	Target string      `json:"target,omitempty"`
	Actual string      `json:"actual,omitempty"`
}

// Failed reports whether the check ran and did not pass.
func (c FieldCheck) Failed() bool { return c.Status == CheckFail }

// Validation holds the four hard structural checks performed against the
// active preset's allow-sets.
type Validation struct {
	FileType   FieldCheck `json:"file_type"`
	SampleRate FieldCheck `json:"sample_rate"`
	BitDepth   FieldCheck `json:"bit_depth"`
	Channels   FieldCheck `json:"channels"`
}

// AnyFailed reports whether any structural check hard-failed.
func (v Validation) AnyFailed() bool {
	return v.FileType.Failed() || v.SampleRate.Failed() || v.BitDepth.Failed() || v.Channels.Failed()
}

// Decibels is a dB level that round-trips the analyzer's "-inf" sentinel,
// which marks a silent or undetermined measurement.
type Decibels float64

// Silent reports whether the level is the negative-infinity sentinel.
func (d Decibels) Silent() bool { return math.IsInf(float64(d), -1) }

func (d Decibels) MarshalJSON() ([]byte, error) {
	if d.Silent() {
		return []byte(`"-inf"`), nil
	}
	return []byte(strconv.FormatFloat(float64(d), 'f', -1, 64)), nil
}

func (d *Decibels) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		switch string(bytes.ToLower(bytes.Trim(data, `"`))) {
		case "-inf", "-infinity":
			*d = Decibels(math.Inf(-1))
			return nil
		default:
			return fmt.Errorf("decibels: unrecognized sentinel %s", data)
		}
	}
	value, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("decibels: %w", err)
	}
	*d = Decibels(value)
	return nil
}

// Clipping records the analyzer's clipping detection output.
type Clipping struct {
	ClippedPercentage      float64 `json:"clipped_percentage"`
	ClippingEventCount     int     `json:"clipping_event_count"`
	NearClippingPercentage float64 `json:"near_clipping_percentage"`
}

// ChannelBleed is the older per-channel bleed-level detector.
type ChannelBleed struct {
	LeftChannelBleedDb  Decibels `json:"left_channel_bleed_db"`
	RightChannelBleedDb Decibels `json:"right_channel_bleed_db"`
}

// ConfirmedBleed is the newer percentage-of-confirmed-bleed detector.
type ConfirmedBleed struct {
	PercentageConfirmedBleed float64 `json:"percentage_confirmed_bleed"`
}

// MicBleed carries both bleed detectors. Either may be absent when the
// analyzer skipped that method.
type MicBleed struct {
	Old *ChannelBleed   `json:"old,omitempty"`
	New *ConfirmedBleed `json:"new,omitempty"`
}

// Overlap records speech-overlap measurements on a paired stereo recording.
// Only preset-aware callers consume it; the core aggregator never reads it.
type Overlap struct {
	OverlapPercentage  float64 `json:"overlap_percentage"`
	OverlapDurationSec float64 `json:"overlap_duration_sec"`
	StereoType         string  `json:"stereo_type,omitempty"`
}

// Result is the full measured record for one audio file. Optional metrics are
// pointers: nil means the analyzer did not evaluate that channel for this
// file, and the metric must not participate in aggregation.
type Result struct {
	Filename string     `json:"filename"`
	Status   FileStatus `json:"status"`

	DurationSec *float64   `json:"duration_sec,omitempty"`
	Validation  Validation `json:"validation"`

	Normalization      *string   `json:"normalization,omitempty"`
	Reverb             *string   `json:"reverb,omitempty"`
	NoiseFloorDb       *Decibels `json:"noise_floor_db,omitempty"`
	LeadingSilenceSec  *float64  `json:"leading_silence_sec,omitempty"`
	TrailingSilenceSec *float64  `json:"trailing_silence_sec,omitempty"`
	LongestSilenceSec  *float64  `json:"longest_silence_sec,omitempty"`
	Clipping           *Clipping `json:"clipping,omitempty"`
	MicBleed           *MicBleed `json:"mic_bleed,omitempty"`
	Overlap            *Overlap  `json:"overlap,omitempty"`
}
