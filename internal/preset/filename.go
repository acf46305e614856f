package preset

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	// <speaker>_<script-number>, e.g. "anna-k_0042".
	scriptFilenamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9-]*_[0-9]+$`)
	// <lang>-<lang>_<session>_<take>, e.g. "en-de_studio3_07".
	conversationFilenamePattern = regexp.MustCompile(`^[a-z]{2,3}-[a-z]{2,3}_[A-Za-z0-9-]+_[0-9]+$`)
)

// ValidFilename checks filename against the preset's declared naming policy.
// The extension is stripped before matching. FilenameModeNone and unknown
// modes accept everything; the registry stores modes verbatim and strictness
// belongs to the caller.
func ValidFilename(mode FilenameMode, filename string) bool {
	base := filepath.Base(strings.TrimSpace(filename))
	base = strings.TrimSuffix(base, filepath.Ext(base))
	switch mode {
	case FilenameModeScript:
		return scriptFilenamePattern.MatchString(base)
	case FilenameModeConversation:
		return conversationFilenamePattern.MatchString(base)
	default:
		return true
	}
}
