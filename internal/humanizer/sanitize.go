package humanizer

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// maxCleanLength caps sanitized titles so they stay usable as file names.
const maxCleanLength = 128

var (
	disallowedChars = regexp.MustCompile(`[^a-zA-Z0-9\-_()\[\]{}!$#+;,. ]`)
	whitespaceRuns  = regexp.MustCompile(`\s+`)

	// NFKD decomposition followed by combining-mark removal turns accented
	// letters into their ASCII base form before the allow-list strips the rest.
	asciiFold = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
)

// FormatString converts a human-readable string into a filesystem-safe
// variant: fold to ASCII, keep an explicit allow-list of characters,
// collapse whitespace, and truncate at a space boundary near the length
// limit. Blank input yields the empty string. The function is pure and
// idempotent.
func FormatString(query string) string {
	return formatString(query, maxCleanLength)
}

func formatString(query string, maxLength int) string {
	if strings.TrimSpace(query) == "" {
		return ""
	}

	folded, _, err := transform.String(asciiFold, query)
	if err != nil {
		folded = query
	}

	sanitized := disallowedChars.ReplaceAllString(folded, "")
	sanitized = strings.TrimSpace(whitespaceRuns.ReplaceAllString(sanitized, " "))

	if maxLength > 0 && len(sanitized) > maxLength {
		// The string is pure ASCII at this point, so byte indexes are safe.
		cutoff := strings.LastIndex(sanitized[:maxLength], " ")
		if cutoff == -1 {
			cutoff = maxLength
		}
		sanitized = strings.TrimRight(sanitized[:cutoff], " ")
	}

	return sanitized
}
