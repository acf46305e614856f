// Package batch classifies many analyzer result documents concurrently and
// summarizes the outcome of a run.
//
// Each file is classified independently; there is no ordering dependency
// between classifications, so the runner fans out across a bounded worker
// group and reassembles reports in input order. A run gets a UUID so its
// summary can be recorded in the preference store and referenced later.
package batch
