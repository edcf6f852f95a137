package editor

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// IsWordBoundary is the default word-boundary test used by Memory and by
// hosts without their own word semantics. The gap between the two runes of
// pair is a boundary when the second rune starts a word: it must be a keyword
// rune (letter, digit or underscore) and Unicode word segmentation must place
// a break between the two runes.
func IsWordBoundary(pair string) bool {
	first, size := utf8.DecodeRuneInString(pair)
	if first == utf8.RuneError {
		return false
	}
	second, size2 := utf8.DecodeRuneInString(pair[size:])
	if second == utf8.RuneError || size+size2 != len(pair) {
		return false
	}
	if !IsKeywordRune(second) {
		return false
	}
	word, _, _ := uniseg.FirstWordInString(pair, -1)
	return utf8.RuneCountInString(word) == 1
}

// IsKeywordRune reports whether r belongs to a word the way editors define
// keyword characters: letters, digits and underscore.
func IsKeywordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
