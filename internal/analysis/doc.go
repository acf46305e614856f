// Package analysis defines the measured facts about a single audio file as
// produced by the external analyzer, and the JSON codec for the result
// documents it writes.
//
// The types here are deliberately closed records with explicit optionality: a
// missing measurement is a nil pointer, not a zero value, so downstream
// classification can distinguish "not evaluated" from "measured as zero".
// Nothing in this package computes metrics or touches raw audio samples.
package analysis
