package translator

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// isWordRune reports whether r is part of a word. Everything else, including
// punctuation, whitespace and underscore, is a word boundary.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// foldEqual reports whether a and b are equal under simple Unicode case folding.
func foldEqual(a, b rune) bool {
	if a == b {
		return true
	}
	for r := unicode.SimpleFold(a); r != a; r = unicode.SimpleFold(r) {
		if r == b {
			return true
		}
	}
	return false
}

// matchAt reports whether phrase occurs at text[i:] ignoring case.
func matchAt(text []rune, i int, phrase []rune) bool {
	if i+len(phrase) > len(text) {
		return false
	}
	for j, p := range phrase {
		if !foldEqual(text[i+j], p) {
			return false
		}
	}
	return true
}

// replaceWholeWord replaces every non-overlapping, whole-word, case-insensitive
// occurrence of phrase in text with replacement, scanning left to right.
// The replacement is inserted verbatim. Reports whether anything was replaced.
func replaceWholeWord(text, phrase, replacement string) (string, bool) {
	p := []rune(phrase)
	if len(p) == 0 {
		return text, false
	}
	t := []rune(text)

	var b strings.Builder
	found := false
	for i := 0; i < len(t); {
		if matchAt(t, i, p) &&
			(i == 0 || !isWordRune(t[i-1])) &&
			(i+len(p) == len(t) || !isWordRune(t[i+len(p)])) {
			if !found {
				b.Grow(len(text))
				b.WriteString(string(t[:i]))
				found = true
			}
			b.WriteString(replacement)
			i += len(p)
			continue
		}
		if found {
			b.WriteRune(t[i])
		}
		i++
	}

	if !found {
		return text, false
	}
	return b.String(), true
}

// capitalizeFirst upper-cases the first rune and leaves the rest untouched.
func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return s
	}
	upper := unicode.ToUpper(r)
	if upper == r {
		return s
	}
	return string(upper) + s[size:]
}
