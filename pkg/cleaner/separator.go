// pkg/cleaner/separator.go
package cleaner

import "strings"

// fixSeparator promotes a known separator token to @, only when the
// string has no @ at all. Only the first occurrence of the first
// matching token is replaced; a second @ would trip punctuation
// correction downstream incorrectly. No @ and no separator means the
// string passes through unchanged and will fail validation.
func (c *EmailCleaner) fixSeparator(s string) (string, bool) {
	if strings.Contains(s, "@") {
		return s, false
	}

	for _, sep := range c.rules.Separators {
		if sep == "" {
			continue
		}
		if idx := strings.Index(s, sep); idx >= 0 {
			return s[:idx] + "@" + s[idx+len(sep):], true
		}
	}

	return s, false
}
