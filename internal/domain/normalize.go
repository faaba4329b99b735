package domain

import (
	"strings"
	"unicode/utf8"
)

// MaxVibeTags is the number of distinct tags kept on a vibe.
const MaxVibeTags = 6

// NormalizeText prepares text for comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses multiple spaces into one
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// StorableText reports whether s can be written to a PostgreSQL text column:
// valid UTF-8 without NUL bytes.
func StorableText(s string) bool {
	return utf8.ValidString(s) && strings.IndexByte(s, 0) < 0
}

// NormalizeTags trims and lowercases tags, drops blanks and duplicates, and
// keeps the first MaxVibeTags distinct values in input order.
// Always returns a non-nil slice.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, min(len(tags), MaxVibeTags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
		if len(out) == MaxVibeTags {
			break
		}
	}
	return out
}
