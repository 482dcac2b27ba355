package chat

import (
	"strings"
	"unicode/utf8"
)

// Statistical detectors misfire on very short strings, so two overrides run
// unconditionally after every detection and before any translation decision.
// Both assume the input is English.

var commonGreetings = map[string]struct{}{
	"hello":     {},
	"hi":        {},
	"hey":       {},
	"thanks":    {},
	"thank you": {},
}

// shortInputRunes is the length below which an all-ASCII input is assumed to
// be English.
const shortInputRunes = 5

func applyOverrides(question, detected string) string {
	if _, ok := commonGreetings[strings.ToLower(strings.TrimSpace(question))]; ok {
		return "en"
	}
	if utf8.RuneCountInString(question) < shortInputRunes && isASCII(question) {
		return "en"
	}
	return detected
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 127 {
			return false
		}
	}
	return true
}
