// Package config loads, normalizes, and validates soundcheck's TOML
// configuration.
//
// Configuration supplies the plumbing around the classification core: where
// the preference store lives, how logs are formatted, how wide batch runs
// fan out, and the fields of the mutable "custom" preset slot. The built-in
// preset table is compiled in and never configured here.
package config
