// Package matcher decides whether free-text skills cover a requirement.
//
// The heuristic is deliberately loose. Scores depend on it, so its rules and
// their order must not change.
package matcher

import (
	"strings"
	"unicode/utf8"
)

// minTokenRunes is the length a requirement token must exceed to match on its own.
// It keeps words like "or" and "and" from matching.
const minTokenRunes = 3

// Matches reports whether userSkills covers requirement. A requirement matches
// when the lower-cased user text contains any of:
//  1. the requirement's first space-delimited token;
//  2. the part of the requirement before its first '/';
//  3. any requirement token longer than three characters.
func Matches(requirement, userSkills string) bool {
	req := strings.ToLower(requirement)
	text := strings.ToLower(userSkills)

	tokens := strings.Split(req, " ")
	if contains(text, tokens[0]) {
		return true
	}

	beforeSlash, _, _ := strings.Cut(req, "/")
	if contains(text, beforeSlash) {
		return true
	}

	for _, tok := range tokens {
		if utf8.RuneCountInString(tok) > minTokenRunes && contains(text, tok) {
			return true
		}
	}
	return false
}

func contains(text, needle string) bool {
	return needle != "" && strings.Contains(text, needle)
}
