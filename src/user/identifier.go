package user

import (
	"fmt"
	"strings"
)

const maxIdentifierAttempts = 10

// GenerateIdentifier builds the 6-character code: two random digits followed by two
// letters of each name, upper-cased and padded with X. ok is false when either name is
// empty, in which case the user gets no identifier.
func GenerateIdentifier(firstName, lastName string, intn func(int) int) (string, bool) {
	if firstName == "" || lastName == "" {
		return "", false
	}
	return fmt.Sprintf("%02d%s%s", intn(100), namePrefix(firstName), namePrefix(lastName)), true
}

func namePrefix(name string) string {
	runes := []rune(strings.ToUpper(string(firstRunes(name, 2))))
	if len(runes) > 2 {
		runes = runes[:2]
	}
	for len(runes) < 2 {
		runes = append(runes, 'X')
	}
	return string(runes)
}

func firstRunes(s string, n int) []rune {
	runes := []rune(s)
	if len(runes) > n {
		return runes[:n]
	}
	return runes
}
