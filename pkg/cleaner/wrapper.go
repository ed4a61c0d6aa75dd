// pkg/cleaner/wrapper.go
package cleaner

import (
	"regexp"
	"strings"
)

var (
	// Redirect/tracking URLs carry the real address in a q= parameter.
	trackingURLPattern = regexp.MustCompile(`(?i)https?://\S*[?&]q=([^&\s<>]+)`)

	angleBracketPattern = regexp.MustCompile(`<([^<>]+)>`)
)

// extractFromWrappers strips wrapper syntax obscuring the literal
// address: tracking URLs, angle-bracket enclosure, and mailto: prefixes.
// Tracking URLs are handled first since a tracking URL may itself be
// bracket-wrapped. The q= parameter is only treated as a wrapped address
// when it contains an @; a bare domain in q= is left for the TLD-fix
// table to deal with.
func (c *EmailCleaner) extractFromWrappers(s string) (string, bool) {
	out := s

	if m := trackingURLPattern.FindStringSubmatch(out); m != nil && strings.Contains(m[1], "@") {
		out = m[1]
	}

	if m := angleBracketPattern.FindStringSubmatch(out); m != nil {
		out = m[1]
	}

	if len(out) > 7 && strings.EqualFold(out[:7], "mailto:") {
		out = out[7:]
	}

	return out, out != s
}
