package domain

import "strings"

// Slugify normalizes free text into a URL slug:
//   - trims whitespace and lowercases
//   - drops everything except letters, digits, spaces, and hyphens
//   - collapses runs of spaces/hyphens into a single hyphen
//
// Returns an empty string when nothing survives; callers substitute their own
// fallback base before running the uniqueness probe.
func Slugify(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))

	var b strings.Builder
	b.Grow(len(text))
	prevHyphen := false
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			prevHyphen = false
		case r == ' ' || r == '-':
			if prevHyphen {
				continue
			}
			b.WriteByte('-')
			prevHyphen = true
		}
	}

	return strings.Trim(b.String(), "-")
}
