package config

import (
	"strconv"
	"strings"
)

func (c *Config) normalize() error {
	expanded, err := expandPath(c.Paths.StoreDir)
	if err != nil {
		return err
	}
	c.Paths.StoreDir = expanded

	c.ActivePreset = strings.TrimSpace(c.ActivePreset)
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Report.Color = strings.ToLower(strings.TrimSpace(c.Report.Color))

	c.normalizeCustomPreset()
	return nil
}

// normalizeCustomPreset canonicalizes the custom slot's tokens. Malformed
// criteria degrade to "no restriction" rather than failing the load; strict
// preset validation is not this layer's job.
func (c *Config) normalizeCustomPreset() {
	p := &c.CustomPreset
	p.Name = strings.TrimSpace(p.Name)
	p.FileTypes = normalizeTokens(p.FileTypes, true)
	p.SampleRates = normalizeTokens(p.SampleRates, false)
	p.BitDepths = normalizeTokens(p.BitDepths, false)
	p.Channels = normalizeTokens(p.Channels, false)
	p.StereoTypes = normalizeTokens(p.StereoTypes, true)

	p.MinDuration = strings.TrimSpace(p.MinDuration)
	if p.MinDuration != "" {
		if _, err := strconv.ParseFloat(p.MinDuration, 64); err != nil {
			p.MinDuration = ""
		}
	}
}

func normalizeTokens(tokens []string, fold bool) []string {
	if len(tokens) == 0 {
		return nil
	}
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if fold {
			token = strings.ToLower(token)
		}
		out = append(out, token)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
