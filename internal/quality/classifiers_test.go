package quality_test

import (
	"math"
	"testing"

	"soundcheck/internal/analysis"
	"soundcheck/internal/quality"
	"soundcheck/internal/testsupport"
)

func TestClassifyNormalization(t *testing.T) {
	tests := []struct {
		name string
		tag  *string
		want quality.MetricStatus
	}{
		{"absent", nil, quality.StatusUnset},
		{"empty", testsupport.Ptr(""), quality.StatusUnset},
		{"normalized", testsupport.Ptr("normalized"), quality.StatusSuccess},
		{"not normalized", testsupport.Ptr("raw"), quality.StatusWarning},
		{"whitespace padded", testsupport.Ptr("  normalized  "), quality.StatusSuccess},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := quality.ClassifyNormalization(tc.tag); got != tc.want {
				t.Fatalf("got %v want %v", got, tc.want)
			}
		})
	}
}

func TestClassifyReverb(t *testing.T) {
	tests := []struct {
		name  string
		label *string
		want  quality.MetricStatus
	}{
		{"absent", nil, quality.StatusUnset},
		{"empty", testsupport.Ptr(""), quality.StatusUnset},
		{"excellent", testsupport.Ptr("Excellent"), quality.StatusSuccess},
		{"good with detail", testsupport.Ptr("Good (RT60 0.4s)"), quality.StatusSuccess},
		{"fair", testsupport.Ptr("Fair"), quality.StatusSuccess},
		{"poor", testsupport.Ptr("Poor"), quality.StatusWarning},
		{"very poor beats poor substring", testsupport.Ptr("Very Poor"), quality.StatusError},
		{"unknown label is conservative", testsupport.Ptr("Cavernous"), quality.StatusError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := quality.ClassifyReverb(tc.label); got != tc.want {
				t.Fatalf("got %v want %v", got, tc.want)
			}
		})
	}
}

func TestClassifyNoiseFloorBoundaries(t *testing.T) {
	tests := []struct {
		name  string
		level *analysis.Decibels
		want  quality.MetricStatus
	}{
		{"absent", nil, quality.StatusUnset},
		{"negative infinity sentinel", testsupport.Db(math.Inf(-1)), quality.StatusUnset},
		{"minus 60.01", testsupport.Db(-60.01), quality.StatusSuccess},
		{"exactly minus 60", testsupport.Db(-60), quality.StatusSuccess},
		{"minus 59.99", testsupport.Db(-59.99), quality.StatusWarning},
		{"exactly minus 50", testsupport.Db(-50), quality.StatusWarning},
		{"minus 49.99", testsupport.Db(-49.99), quality.StatusError},
		{"loud floor", testsupport.Db(-20), quality.StatusError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := quality.ClassifyNoiseFloor(tc.level); got != tc.want {
				t.Fatalf("got %v want %v", got, tc.want)
			}
		})
	}
}

func TestClassifySilenceBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		seconds *float64
		want    quality.MetricStatus
	}{
		{"absent", nil, quality.StatusUnset},
		{"zero", testsupport.Ptr(0.0), quality.StatusSuccess},
		{"just under warn", testsupport.Ptr(4.999), quality.StatusSuccess},
		{"exactly five", testsupport.Ptr(5.0), quality.StatusWarning},
		{"just under error", testsupport.Ptr(9.999), quality.StatusWarning},
		{"exactly ten", testsupport.Ptr(10.0), quality.StatusError},
		{"long gap", testsupport.Ptr(42.0), quality.StatusError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := quality.ClassifySilence(tc.seconds); got != tc.want {
				t.Fatalf("got %v want %v", got, tc.want)
			}
		})
	}
}

func TestClassifyClipping(t *testing.T) {
	tests := []struct {
		name string
		clip *analysis.Clipping
		want quality.MetricStatus
	}{
		{"absent", nil, quality.StatusUnset},
		{"clean", &analysis.Clipping{}, quality.StatusSuccess},
		{"percentage over error threshold", &analysis.Clipping{ClippedPercentage: 1.5}, quality.StatusError},
		{"event count over error threshold", &analysis.Clipping{ClippingEventCount: 51}, quality.StatusError},
		{"percentage over warn threshold", &analysis.Clipping{ClippedPercentage: 0.2}, quality.StatusWarning},
		{"event count over warn threshold", &analysis.Clipping{ClippingEventCount: 11}, quality.StatusWarning},
		{"any clipping at all", &analysis.Clipping{ClippedPercentage: 0.05, ClippingEventCount: 1}, quality.StatusWarning},
		{"near clipping only", &analysis.Clipping{NearClippingPercentage: 1.5}, quality.StatusWarning},
		{"near clipping under threshold", &analysis.Clipping{NearClippingPercentage: 0.9}, quality.StatusSuccess},
		{"percentage without events stays below warn", &analysis.Clipping{ClippedPercentage: 0.05}, quality.StatusSuccess},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := quality.ClassifyClipping(tc.clip); got != tc.want {
				t.Fatalf("got %v want %v", got, tc.want)
			}
		})
	}
}

func TestClassifyMicBleed(t *testing.T) {
	quiet := &analysis.ChannelBleed{
		LeftChannelBleedDb:  analysis.Decibels(-70),
		RightChannelBleedDb: analysis.Decibels(-70),
	}
	tests := []struct {
		name  string
		bleed *analysis.MicBleed
		want  quality.MetricStatus
	}{
		{"absent", nil, quality.StatusUnset},
		{"no detectors ran", &analysis.MicBleed{}, quality.StatusUnset},
		{"both detectors clean", &analysis.MicBleed{Old: quiet, New: &analysis.ConfirmedBleed{}}, quality.StatusSuccess},
		{
			"old detector left channel",
			&analysis.MicBleed{Old: &analysis.ChannelBleed{LeftChannelBleedDb: -55, RightChannelBleedDb: -70}},
			quality.StatusWarning,
		},
		{
			"old detector right channel",
			&analysis.MicBleed{Old: &analysis.ChannelBleed{LeftChannelBleedDb: -70, RightChannelBleedDb: -59}},
			quality.StatusWarning,
		},
		{
			"new detector",
			&analysis.MicBleed{New: &analysis.ConfirmedBleed{PercentageConfirmedBleed: 0.6}},
			quality.StatusWarning,
		},
		{
			"new detector at threshold",
			&analysis.MicBleed{New: &analysis.ConfirmedBleed{PercentageConfirmedBleed: 0.5}},
			quality.StatusSuccess,
		},
		{
			"both detectors firing still warning",
			&analysis.MicBleed{
				Old: &analysis.ChannelBleed{LeftChannelBleedDb: -10, RightChannelBleedDb: -10},
				New: &analysis.ConfirmedBleed{PercentageConfirmedBleed: 90},
			},
			quality.StatusWarning,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := quality.ClassifyMicBleed(tc.bleed); got != tc.want {
				t.Fatalf("got %v want %v", got, tc.want)
			}
		})
	}
}

func TestWorstIgnoresUnset(t *testing.T) {
	if got := quality.Worst(); got != quality.StatusUnset {
		t.Fatalf("empty reduction: got %v", got)
	}
	if got := quality.Worst(quality.StatusUnset, quality.StatusUnset); got != quality.StatusUnset {
		t.Fatalf("all unset: got %v", got)
	}
	if got := quality.Worst(quality.StatusSuccess, quality.StatusError, quality.StatusWarning); got != quality.StatusError {
		t.Fatalf("worst wins: got %v", got)
	}
}

func TestMetricStatusString(t *testing.T) {
	pairs := map[quality.MetricStatus]string{
		quality.StatusUnset:   "",
		quality.StatusSuccess: "success",
		quality.StatusWarning: "warning",
		quality.StatusError:   "error",
	}
	for status, want := range pairs {
		if got := status.String(); got != want {
			t.Fatalf("status %d: got %q want %q", status, got, want)
		}
	}
}
