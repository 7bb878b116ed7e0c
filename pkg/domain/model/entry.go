package model

import "strings"

// junkMarkers are substrings of OS-generated metadata entries. An archive
// path containing any of them is excluded from both tree and contents.
var junkMarkers = []string{
	"__MACOSX",
	".DS_Store",
}

// IsJunkEntry reports whether the archive path is OS metadata
func IsJunkEntry(path string) bool {
	for _, m := range junkMarkers {
		if strings.Contains(path, m) {
			return true
		}
	}
	return false
}

// CleanName drops the first path segment (the wrapper directory that
// archives of a repository are usually created with). A path without any
// separator is returned as is.
func CleanName(path string) string {
	if _, rest, found := strings.Cut(path, "/"); found {
		return rest
	}
	return path
}
