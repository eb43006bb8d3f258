package utils

import (
	"regexp"
	"strings"
)

// digitConfusions maps letters that OCR engines commonly emit in place of
// digits inside amounts.
var digitConfusions = map[rune]rune{
	'O': '0', 'o': '0',
	'S': '5', 's': '5',
	'I': '1', 'l': '1', '|': '1',
	'B': '8',
	'Z': '2', 'z': '2',
}

var (
	tokenPattern = regexp.MustCompile(`\S+`)
	// A token is numeric-context when every character belongs to the amount
	// alphabet (digits, confusable letters, separators, an optional currency
	// prefix, an optional pence suffix). "B00TS" fails this shape and is left
	// alone; "1O.5O" passes and gets corrected.
	numericShape = regexp.MustCompile(`^[£$€]?[0-9OoSsIlZzB|.,]+p?$`)
)

// NormalizeDigits corrects common OCR digit/letter confusions (O↔0, S↔5,
// I/l↔1, B↔8, Z↔2) within numeric-context substrings only, so merchant names
// and other prose are never corrupted. Pure table lookup, always returns a
// string.
func NormalizeDigits(text string) string {
	return tokenPattern.ReplaceAllStringFunc(text, func(tok string) string {
		if !strings.ContainsAny(tok, "0123456789") || !numericShape.MatchString(tok) {
			return tok
		}
		var b strings.Builder
		b.Grow(len(tok))
		for _, r := range tok {
			if repl, ok := digitConfusions[r]; ok {
				b.WriteRune(repl)
			} else {
				b.WriteRune(r)
			}
		}
		return b.String()
	})
}
