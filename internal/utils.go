package internal

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashContent returns the hex SHA-256 digest of the given parts joined with
// a NUL separator. Used to derive deterministic glossary cache keys.
func HashContent(parts ...string) string {
	h := sha256.New()
	for i, part := range parts {
		if i > 0 {
			h.Write([]byte{0})
		}
		h.Write([]byte(part))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// SanitizeFilename creates a safe filename from a string
func SanitizeFilename(s string) string {
	result := ""
	for _, r := range s {
		if isFilenameSafe(r) || r == '-' || r == '_' || r == '.' {
			result += string(r)
		} else {
			result += "_"
		}
	}
	return result
}

// isFilenameSafe checks if a rune is alphanumeric or a Hangul syllable
func isFilenameSafe(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') || (r >= '가' && r <= '힣')
}
