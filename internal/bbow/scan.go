package bbow

import (
	"unicode"
	"unicode/utf8"
)

// nextWord returns the byte offsets of the first word in text at or after
// from. When no word remains, start and end are both len(text).
func nextWord(text string, from int) (start, end int) {
	i := from

	// Skip separators. Marks only extend a word, they never start one.
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if unicode.IsLetter(r) {
			break
		}
		i += size
	}

	start = i
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !isWordRune(r) {
			break
		}
		i += size
	}

	return start, i
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsMark(r)
}

// isLower reports whether s is unchanged by simple lowercase mapping.
func isLower(s string) bool {
	for _, r := range s {
		if r < utf8.RuneSelf {
			if 'A' <= r && r <= 'Z' {
				return false
			}
			continue
		}
		if unicode.ToLower(r) != r {
			return false
		}
	}
	return true
}

// appendLower appends the simple lowercase mapping of s to dst.
func appendLower(dst []byte, s string) []byte {
	for _, r := range s {
		dst = utf8.AppendRune(dst, unicode.ToLower(r))
	}
	return dst
}
