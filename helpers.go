package pyext

import "strings"

// MatchesExtension checks if a filename has any of the given extensions.
//
// This is a case-insensitive check for file extensions.
// Useful for checking compiled modules (.so, .pyd, .dylib).
//
// # Example
//
//	if MatchesExtension(filename, ".so", ".pyd") {
//	    // This is a compiled module
//	}
//
// # Thread Safety
//
// This function is thread-safe and can be called concurrently.
func MatchesExtension(filename string, extensions ...string) bool {
	for _, ext := range extensions {
		if strings.HasSuffix(strings.ToLower(filename), strings.ToLower(ext)) {
			return true
		}
	}
	return false
}
