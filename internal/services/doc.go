// Package services defines the sentinel error taxonomy shared by soundcheck's
// plumbing layers (configuration, preference store, input decoding).
//
// The classification core is total over its domain and never produces errors;
// these markers exist so callers can classify failures from the layers around
// it without string matching.
package services
