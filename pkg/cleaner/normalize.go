// pkg/cleaner/normalize.go
package cleaner

import (
	"regexp"
	"strings"
)

var (
	wsRunPattern       = regexp.MustCompile(`\s+`)
	wsAroundDelimiters = regexp.MustCompile(`\s*([@.])\s*`)
)

// normalize lowercases the candidate, collapses whitespace, and applies
// the token-replacement table in order. Table order matters: a later
// entry may act on text produced by an earlier one, which allows
// cascaded rewrites.
func (c *EmailCleaner) normalize(s string) (out string, removedSpaces, tokenReplaced bool) {
	out = strings.ToLower(s)

	// Collapse runs to a single space and trim the ends. Single interior
	// spaces survive this step so multi-word tokens like " at " can
	// still match below.
	collapsed := wsRunPattern.ReplaceAllString(strings.TrimSpace(out), " ")
	removedSpaces = collapsed != out
	out = collapsed

	for _, tr := range c.rules.TokenReplacements {
		next := strings.ReplaceAll(out, tr.Token, tr.Replacement)
		if next != out {
			tokenReplaced = true
			out = next
		}
	}

	// Whitespace the token table did not consume cannot be part of an
	// address: strip it around @ and . first, then entirely.
	stripped := wsAroundDelimiters.ReplaceAllString(out, "$1")
	stripped = strings.ReplaceAll(stripped, " ", "")
	if stripped != out {
		removedSpaces = true
		out = stripped
	}

	return out, removedSpaces, tokenReplaced
}
