package numberutils

import (
	"strings"
	"unicode"
)

// IsDigits reports whether str is non-empty and made only of decimal digits.
func IsDigits(str string) bool {
	if str == "" {
		return false
	}
	for _, r := range str {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// IsDigitsIgnoringSpaces is IsDigits after removing every space ("902 10" is a zip code).
func IsDigitsIgnoringSpaces(str string) bool {
	return IsDigits(strings.ReplaceAll(str, " ", ""))
}
