// Package testsupport provides shared builders for tests: temp-dir configs
// and representative analyzer results.
package testsupport

import (
	"path/filepath"
	"testing"

	"soundcheck/internal/config"
)

// NewConfig produces a config seeded with a unique temp store directory per
// test.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Paths.StoreDir = filepath.Join(t.TempDir(), "store")
	return &cfg
}
