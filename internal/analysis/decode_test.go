package analysis_test

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"soundcheck/internal/analysis"
	"soundcheck/internal/services"
)

func TestDecodeFullDocument(t *testing.T) {
	doc := `{
		"filename": "take1.wav",
		"status": "normal",
		"duration_sec": 92.5,
		"validation": {
			"file_type":   {"status": "pass", "target": "wav", "actual": "wav"},
			"sample_rate": {"status": "fail", "target": "48000", "actual": "44100"},
			"bit_depth":   {"status": "pass"},
			"channels":    {"status": ""}
		},
		"normalization": "normalized",
		"reverb": "Good",
		"noise_floor_db": -63.2,
		"leading_silence_sec": 0.8,
		"clipping": {"clipped_percentage": 0.2, "clipping_event_count": 3, "near_clipping_percentage": 0},
		"mic_bleed": {"old": {"left_channel_bleed_db": -72, "right_channel_bleed_db": -68}},
		"overlap": {"overlap_percentage": 2.5, "overlap_duration_sec": 1.1, "stereo_type": "dual-mono"}
	}`

	result, err := analysis.Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if result.Filename != "take1.wav" {
		t.Fatalf("filename: %q", result.Filename)
	}
	if !result.Validation.SampleRate.Failed() {
		t.Fatal("expected sample rate failure")
	}
	if result.Validation.SampleRate.Target != "48000" || result.Validation.SampleRate.Actual != "44100" {
		t.Fatalf("target/actual pair not preserved: %+v", result.Validation.SampleRate)
	}
	if result.Validation.Channels.Status != analysis.CheckUnset {
		t.Fatalf("channels should be unset, got %q", result.Validation.Channels.Status)
	}
	if !result.Validation.AnyFailed() {
		t.Fatal("AnyFailed should report the sample rate failure")
	}
	if result.NoiseFloorDb == nil || float64(*result.NoiseFloorDb) != -63.2 {
		t.Fatalf("noise floor: %v", result.NoiseFloorDb)
	}
	if result.TrailingSilenceSec != nil {
		t.Fatal("absent trailing silence should stay nil")
	}
	if result.MicBleed == nil || result.MicBleed.Old == nil || result.MicBleed.New != nil {
		t.Fatalf("mic bleed detectors: %+v", result.MicBleed)
	}
	if result.Overlap == nil || result.Overlap.StereoType != "dual-mono" {
		t.Fatalf("overlap: %+v", result.Overlap)
	}
}

func TestDecodeDefaultsStatusToNormal(t *testing.T) {
	result, err := analysis.Decode(strings.NewReader(`{"filename": "a.wav"}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if result.Status != analysis.FileStatusNormal {
		t.Fatalf("status: %q", result.Status)
	}
}

func TestDecodeMalformedDocument(t *testing.T) {
	_, err := analysis.Decode(strings.NewReader(`{"filename": `))
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation marker, got: %v", err)
	}
}

func TestDecibelsNegativeInfinitySentinel(t *testing.T) {
	for _, doc := range []string{
		`{"noise_floor_db": "-inf"}`,
		`{"noise_floor_db": "-Infinity"}`,
	} {
		result, err := analysis.Decode(strings.NewReader(doc))
		if err != nil {
			t.Fatalf("Decode(%s): %v", doc, err)
		}
		if result.NoiseFloorDb == nil || !result.NoiseFloorDb.Silent() {
			t.Fatalf("expected silent sentinel for %s, got %v", doc, result.NoiseFloorDb)
		}
	}
}

func TestDecibelsUnknownSentinelRejected(t *testing.T) {
	_, err := analysis.Decode(strings.NewReader(`{"noise_floor_db": "loud"}`))
	if err == nil {
		t.Fatal("expected decode error for unknown sentinel")
	}
}

func TestDecibelsRoundTrip(t *testing.T) {
	silent := analysis.Decibels(math.Inf(-1))
	payload, err := silent.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(payload) != `"-inf"` {
		t.Fatalf("sentinel encoding: %s", payload)
	}

	var decoded analysis.Decibels
	if err := decoded.UnmarshalJSON(payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !decoded.Silent() {
		t.Fatal("round-tripped sentinel lost")
	}
}

func TestLoadFileFallsBackToBaseName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "session7.json")
	if err := os.WriteFile(path, []byte(`{"status": "normal"}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	result, err := analysis.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if result.Filename != "session7" {
		t.Fatalf("filename fallback: %q", result.Filename)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := analysis.LoadFile(filepath.Join(t.TempDir(), "absent.json"))
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not-found marker, got: %v", err)
	}
}
