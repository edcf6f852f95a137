package snippet

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// wordsForLine returns the trailing word-window of before: the final
// numWords whitespace-delimited tokens, as they appear in before. numWords
// <= 0 means the trigger's own token count. When before holds fewer tokens
// than requested, the whole trimmed string is returned.
func wordsForLine(trigger, before string, numWords int) string {
	if before == "" {
		return ""
	}
	if numWords <= 0 {
		numWords = len(strings.Fields(trigger))
	}

	wordList := strings.Fields(before)
	if len(wordList) <= numWords {
		return strings.TrimSpace(before)
	}

	beforeWords := before
	for i := 1; i <= numWords; i++ {
		word := wordList[len(wordList)-i]
		left := strings.LastIndex(beforeWords, word)
		if left < 0 {
			left = 0
		}
		beforeWords = beforeWords[:left]
	}
	return strings.TrimSpace(before[len(beforeWords):])
}

// trimToLastWordStart trims the prefix of window up to (and excluding) the
// last word-start boundary, using the supplied boundary test. With no
// boundary the window is returned whole.
func trimToLastWordStart(window string, boundary func(pair string) bool) string {
	rs := []rune(window)
	for i := len(rs) - 1; i >= 1; i-- {
		if boundary(string(rs[i-1 : i+1])) {
			return string(rs[i:])
		}
	}
	return window
}

// textBeforeMatch returns what precedes the matched substring on the
// (right-trimmed) typed text. A zero-length match reports an empty prefix.
func textBeforeMatch(before, matched string) string {
	trimmed := []rune(strings.TrimRightFunc(before, unicode.IsSpace))
	n := utf8.RuneCountInString(matched)
	if n == 0 || n >= len(trimmed) {
		return ""
	}
	return string(trimmed[:len(trimmed)-n])
}

// isBlank reports whether s contains only spaces and tabs.
func isBlank(s string) bool {
	return strings.Trim(s, " \t") == ""
}
