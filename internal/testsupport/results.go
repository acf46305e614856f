package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"soundcheck/internal/analysis"
)

// Ptr returns a pointer to value, for populating optional result fields.
func Ptr[T any](value T) *T { return &value }

// Db returns a pointer to a Decibels level.
func Db(value float64) *analysis.Decibels {
	d := analysis.Decibels(value)
	return &d
}

// PassingResult builds a result where every structural check passes and every
// metric classifies as success.
func PassingResult(filename string) *analysis.Result {
	passed := analysis.FieldCheck{Status: analysis.CheckPass}
	return &analysis.Result{
		Filename: filename,
		Status:   analysis.FileStatusNormal,
		Validation: analysis.Validation{
			FileType:   passed,
			SampleRate: passed,
			BitDepth:   passed,
			Channels:   passed,
		},
		Normalization:      Ptr("normalized"),
		Reverb:             Ptr("Excellent"),
		NoiseFloorDb:       Db(-65),
		LeadingSilenceSec:  Ptr(1.0),
		TrailingSilenceSec: Ptr(2.0),
		LongestSilenceSec:  Ptr(3.0),
		Clipping:           &analysis.Clipping{},
		MicBleed: &analysis.MicBleed{
			Old: &analysis.ChannelBleed{
				LeftChannelBleedDb:  analysis.Decibels(-70),
				RightChannelBleedDb: analysis.Decibels(-70),
			},
			New: &analysis.ConfirmedBleed{},
		},
	}
}

// WriteResult serializes result into dir as <name>.json and returns the path.
func WriteResult(t testing.TB, dir, name string, result *analysis.Result) string {
	t.Helper()

	payload, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("marshal result: %v", err)
	}
	path := filepath.Join(dir, name+".json")
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write result: %v", err)
	}
	return path
}
