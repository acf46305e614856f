// Package prefstore persists user preferences and batch run history in a
// SQLite database: the selected preset identifier, the custom preset's
// criteria, and summaries of past classification runs.
//
// The classification core never reads or writes this store; it is owned
// entirely by the CLI layer. A file lock serializes writers across processes
// so concurrent invocations cannot interleave schema migrations or edits.
package prefstore
