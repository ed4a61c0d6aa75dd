// pkg/cleaner/typo.go
package cleaner

import (
	"regexp"
	"strings"
)

var (
	multiDotPattern = regexp.MustCompile(`\.{2,}`)
	multiAtPattern  = regexp.MustCompile(`@{2,}`)
)

// fixTypos applies the ordered TLD-fix table (first match wins), then
// collapses repeated punctuation and strips stray edge characters.
// Suffix fixes and @@ collapsing report as typoFix; dot collapsing and
// edge stripping report as punctuation. The two are kept separate to
// preserve the audit distinction in the output schema.
func (c *EmailCleaner) fixTypos(s string) (out string, typoFix, punctuation bool) {
	out = s

	for _, fix := range c.rules.TLDFixes {
		if strings.HasSuffix(out, fix.Wrong) {
			out = out[:len(out)-len(fix.Wrong)] + fix.Right
			typoFix = true
			break
		}
	}

	if multiAtPattern.MatchString(out) {
		out = multiAtPattern.ReplaceAllString(out, "@")
		typoFix = true
	}

	if multiDotPattern.MatchString(out) {
		out = multiDotPattern.ReplaceAllString(out, ".")
		punctuation = true
	}

	if trimmed := strings.Trim(out, ".@ \t"); trimmed != out {
		out = trimmed
		punctuation = true
	}

	return out, typoFix, punctuation
}
