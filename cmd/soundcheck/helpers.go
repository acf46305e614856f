package main

import (
	"context"
	"log/slog"
	"strings"

	"soundcheck/internal/config"
	"soundcheck/internal/logging"
	"soundcheck/internal/prefstore"
	"soundcheck/internal/preset"
)

// preferences is the store-backed state a classification command needs:
// which preset is selected and what the custom slot currently holds.
type preferences struct {
	selectedPreset string
	custom         preset.Config
	customSaved    bool
}

// loadPreferences reads the preference store once and releases it. A store
// that cannot be opened (missing, locked by another process) degrades to
// config-supplied defaults rather than blocking classification.
func loadPreferences(cfg *config.Config, logger *slog.Logger) preferences {
	prefs := preferences{custom: cfg.CustomPreset}

	store, err := prefstore.Open(cfg)
	if err != nil {
		logging.NewComponentLogger(logger, "cli").Debug("preference store unavailable",
			logging.Error(err),
			logging.String(logging.FieldEventType, "prefstore_unavailable"),
		)
		return prefs
	}
	defer store.Close()

	ctx := context.Background()
	if selected, err := store.SelectedPreset(ctx); err == nil && selected != "" {
		prefs.selectedPreset = selected
	}
	if custom, ok, err := store.CustomPreset(ctx); err == nil && ok {
		prefs.custom = custom
		prefs.customSaved = true
	}
	return prefs
}

// resolvePresetID picks the active preset: explicit flag, then stored
// selection, then the config default.
func resolvePresetID(flagValue string, prefs preferences, cfg *config.Config) string {
	if id := strings.TrimSpace(flagValue); id != "" {
		return id
	}
	if prefs.selectedPreset != "" {
		return prefs.selectedPreset
	}
	return cfg.ActivePreset
}

// activePreset resolves the preset configuration a command should classify
// against.
func activePreset(flagValue string, prefs preferences, cfg *config.Config) (string, preset.Config, bool) {
	id := resolvePresetID(flagValue, prefs, cfg)
	registry := preset.NewRegistry(prefs.custom)
	presetCfg, ok := registry.Lookup(id)
	return id, presetCfg, ok
}
