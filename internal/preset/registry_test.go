package preset_test

import (
	"testing"

	"soundcheck/internal/preset"
)

func TestLookupBuiltins(t *testing.T) {
	registry := preset.NewRegistry(preset.Config{})

	for _, id := range registry.IDs() {
		cfg, ok := registry.Lookup(id)
		if !ok {
			t.Fatalf("listed preset %q not found", id)
		}
		if cfg.Name == "" {
			t.Fatalf("preset %q has no display name", id)
		}
	}

	mono, _ := registry.Lookup(preset.IDMonoAudition)
	if mono.Name != "Mono Audition" {
		t.Fatalf("unexpected name: %q", mono.Name)
	}
	if len(mono.Channels) != 1 || mono.Channels[0] != "1" {
		t.Fatalf("unexpected channels: %v", mono.Channels)
	}
	if mono.HasOverlapCriteria() {
		t.Fatal("mono audition should not carry overlap criteria")
	}

	paired, _ := registry.Lookup(preset.IDPairedRecording)
	if !paired.HasOverlapCriteria() {
		t.Fatal("paired recording should carry overlap criteria")
	}
	if paired.OverlapFailPercent <= paired.OverlapWarnPercent {
		t.Fatal("fail threshold should exceed warn threshold")
	}

	longForm, _ := registry.Lookup(preset.IDLongForm)
	if longForm.FilenameMode != preset.FilenameModeScript {
		t.Fatalf("unexpected filename mode: %q", longForm.FilenameMode)
	}
}

func TestLookupUnknownIdentifier(t *testing.T) {
	registry := preset.NewRegistry(preset.Config{})
	if _, ok := registry.Lookup("does-not-exist"); ok {
		t.Fatal("expected lookup miss")
	}
	if _, ok := registry.Lookup(""); ok {
		t.Fatal("expected lookup miss for empty identifier")
	}
}

func TestLookupCustomSlot(t *testing.T) {
	custom := preset.Config{
		Name:      "Studio B",
		FileTypes: []string{"wav", "flac"},
	}
	registry := preset.NewRegistry(custom)

	got, ok := registry.Lookup(preset.IDCustom)
	if !ok {
		t.Fatal("custom slot not found")
	}
	if got.Name != "Studio B" {
		t.Fatalf("unexpected name: %q", got.Name)
	}

	// An empty custom slot is valid and means "no restriction".
	empty := registry.WithCustom(preset.Config{})
	got, ok = empty.Lookup(preset.IDCustom)
	if !ok {
		t.Fatal("empty custom slot not found")
	}
	if got.Name != "Custom" {
		t.Fatalf("expected titled fallback name, got %q", got.Name)
	}
	if len(got.FileTypes) != 0 {
		t.Fatalf("expected unrestricted file types, got %v", got.FileTypes)
	}
}

func TestWithCustomIsCopyOnWrite(t *testing.T) {
	original := preset.NewRegistry(preset.Config{Name: "First"})
	replaced := original.WithCustom(preset.Config{Name: "Second"})

	if got, _ := original.Lookup(preset.IDCustom); got.Name != "First" {
		t.Fatalf("original registry mutated: %q", got.Name)
	}
	if got, _ := replaced.Lookup(preset.IDCustom); got.Name != "Second" {
		t.Fatalf("replacement not applied: %q", got.Name)
	}
}

func TestLookupReturnsDefensiveCopies(t *testing.T) {
	registry := preset.NewRegistry(preset.Config{})
	first, _ := registry.Lookup(preset.IDMonoAudition)
	first.FileTypes[0] = "mp3"

	second, _ := registry.Lookup(preset.IDMonoAudition)
	if second.FileTypes[0] != "wav" {
		t.Fatalf("built-in table mutated through lookup result: %v", second.FileTypes)
	}
}
