package preset_test

import (
	"testing"

	"soundcheck/internal/preset"
)

func TestValidFilename(t *testing.T) {
	tests := []struct {
		name     string
		mode     preset.FilenameMode
		filename string
		want     bool
	}{
		{"no mode accepts anything", preset.FilenameModeNone, "whatever.wav", true},
		{"unknown mode accepts anything", preset.FilenameMode("future"), "whatever.wav", true},

		{"script speaker and number", preset.FilenameModeScript, "anna-k_0042.wav", true},
		{"script extension stripped before match", preset.FilenameModeScript, "anna-k_0042.flac", true},
		{"script path components ignored", preset.FilenameModeScript, "/incoming/anna-k_7.wav", true},
		{"script missing number", preset.FilenameModeScript, "anna-k.wav", false},
		{"script number not numeric", preset.FilenameModeScript, "anna-k_draft.wav", false},

		{"conversation full pattern", preset.FilenameModeConversation, "en-de_studio3_07.wav", true},
		{"conversation three letter codes", preset.FilenameModeConversation, "eng-deu_s1_1.wav", true},
		{"conversation missing take", preset.FilenameModeConversation, "en-de_studio3.wav", false},
		{"conversation uppercase language", preset.FilenameModeConversation, "EN-de_studio3_07.wav", false},
		{"conversation missing language pair", preset.FilenameModeConversation, "studio3_07.wav", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := preset.ValidFilename(tc.mode, tc.filename); got != tc.want {
				t.Fatalf("ValidFilename(%q, %q) = %v want %v", tc.mode, tc.filename, got, tc.want)
			}
		})
	}
}
