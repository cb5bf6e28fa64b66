// Package slug derives URL-safe identifiers from human-readable headings.
package slug

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
)

// Make slugifies a heading: lowercase, runs of non-alphanumerics collapsed
// to single hyphens, leading and trailing hyphens trimmed. Idempotent.
func Make(heading string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(heading) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// Normalize prepares an explicit slug override: lowercase, spaces to hyphens.
func Normalize(override string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(override)), " ", "-")
}

// Suffix returns n random lowercase hex characters for collision resolution.
func Suffix(n int) string {
	buf := make([]byte, (n+1)/2)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)[:n]
}
