package config

import "soundcheck/internal/preset"

const (
	defaultStoreDir     = "~/.local/share/soundcheck"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
	defaultReportColor  = "auto"
	defaultBatchWorkers = 4
	defaultActivePreset = preset.IDMonoAudition
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		ActivePreset: defaultActivePreset,
		Paths: Paths{
			StoreDir: defaultStoreDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Report: Report{
			Color: defaultReportColor,
		},
		Batch: Batch{
			Workers: defaultBatchWorkers,
		},
	}
}
