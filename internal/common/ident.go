package common

import (
	"go/token"
	"unicode"
)

// IsIdent reports whether s is a valid Go identifier that is not a keyword.
func IsIdent(s string) bool {
	if s == "" || token.IsKeyword(s) {
		return false
	}

	for i, r := range s {
		if i == 0 {
			// First character must be letter or underscore
			if !isLetter(r) && r != '_' {
				return false
			}
		} else if !isLetter(r) && !isDigit(r) && r != '_' {
			return false
		}
	}

	return true
}

func isLetter(r rune) bool {
	return unicode.IsLetter(r)
}

func isDigit(r rune) bool {
	return unicode.IsDigit(r)
}
