package preset

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Catalog is a read-only lookup of preset configurations by identifier.
type Catalog interface {
	// Lookup returns the configuration for id. Unknown identifiers return
	// ok=false; the caller must treat that as "no criteria selected".
	Lookup(id string) (Config, bool)
	// IDs lists every identifier in stable display order.
	IDs() []string
}

// Registry combines the immutable built-in catalog with the single mutable
// custom slot. The zero value serves the built-ins plus an empty custom
// config (which admits everything).
type Registry struct {
	custom Config
}

// NewRegistry builds a registry whose custom slot holds the given config.
func NewRegistry(custom Config) *Registry {
	return &Registry{custom: custom}
}

// WithCustom returns a new registry with the custom slot replaced. The
// receiver is never mutated, so classification passes holding the old
// registry keep a consistent view.
func (r *Registry) WithCustom(custom Config) *Registry {
	return &Registry{custom: custom}
}

// Custom returns the current custom slot contents.
func (r *Registry) Custom() Config {
	if r == nil {
		return Config{}
	}
	return r.custom
}

// Lookup implements Catalog.
func (r *Registry) Lookup(id string) (Config, bool) {
	id = strings.TrimSpace(id)
	if cfg, ok := builtins[id]; ok {
		return cloneConfig(cfg), true
	}
	if id == IDCustom {
		cfg := r.Custom()
		if strings.TrimSpace(cfg.Name) == "" {
			cfg.Name = displayName(IDCustom)
		}
		return cfg, true
	}
	return Config{}, false
}

// IDs implements Catalog.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(builtinOrder)+1)
	ids = append(ids, builtinOrder...)
	ids = append(ids, IDCustom)
	return ids
}

// displayName derives a human-readable fallback from an identifier.
func displayName(id string) string {
	words := strings.NewReplacer("-", " ", "_", " ").Replace(id)
	return cases.Title(language.English).String(words)
}

// cloneConfig deep-copies a config so callers can never reach the built-in
// table's backing slices.
func cloneConfig(cfg Config) Config {
	cfg.FileTypes = cloneTokens(cfg.FileTypes)
	cfg.SampleRates = cloneTokens(cfg.SampleRates)
	cfg.BitDepths = cloneTokens(cfg.BitDepths)
	cfg.Channels = cloneTokens(cfg.Channels)
	cfg.StereoTypes = cloneTokens(cfg.StereoTypes)
	return cfg
}

func cloneTokens(tokens []string) []string {
	if tokens == nil {
		return nil
	}
	cp := make([]string, len(tokens))
	copy(cp, tokens)
	return cp
}
