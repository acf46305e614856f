package preset

import "strings"

// Admit decides whether filename may proceed to analysis under the given
// file-type allow-set. An absent or empty allow-set admits unconditionally.
// Otherwise the extension after the last dot, case-folded, must be a member
// of the set; a filename with no extension is inadmissible.
//
// This check runs before any retrieval or decoding is attempted, so callers
// never spend I/O on files the active preset cannot accept.
func Admit(filename string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	dot := strings.LastIndex(filename, ".")
	if dot < 0 || dot == len(filename)-1 {
		return false
	}
	ext := strings.ToLower(filename[dot+1:])
	for _, token := range allowed {
		if strings.ToLower(strings.TrimSpace(token)) == ext {
			return true
		}
	}
	return false
}
