package shonamorph

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeWord canonicalizes a raw input word before segmentation:
// NFKC composition (input pasted from documents may carry combining
// marks or width variants), removal of whitespace and control
// characters, and ASCII lowercasing. Standard Shona orthography is
// plain ASCII, so this is a no-op for well-formed input.
func NormalizeWord(word string) string {
	w := norm.NFKC.String(word)
	w = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return -1
		}
		return r
	}, w)
	return lowerASCII(w)
}

// lowerASCII lowercases A–Z only. Prefix keys and stems are ASCII;
// avoiding the full Unicode case tables keeps lookups free of
// locale-dependent surprises.
func lowerASCII(s string) string {
	hasUpper := false
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return s
	}
	b := []byte(s)
	for i := range b {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}
