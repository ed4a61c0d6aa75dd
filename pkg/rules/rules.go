// pkg/rules/rules.go
package rules

import (
	"strings"
)

// TLDFix maps a wrong domain suffix to its correction. Entries are
// scanned in table order and the first match wins, so authors must
// list specific entries before general ones.
type TLDFix struct {
	Wrong string `json:"wrong"`
	Right string `json:"right"`
}

// TokenReplacement is a literal substring substitution. The table is
// ordered because a later entry may act on text produced by an earlier
// one; this cascading is intentional.
type TokenReplacement struct {
	Token       string `json:"token"`
	Replacement string `json:"replacement"`
}

// Tables holds every rule table the pipeline consumes. All tables are
// optional: an empty table turns its stage into a no-op. Tables are
// read-only for the duration of a run.
type Tables struct {
	TLDFixes          []TLDFix           `json:"tld_fixes"`
	TokenReplacements []TokenReplacement `json:"token_replacements"`
	Separators        []string           `json:"separators"`
	NullValues        []string           `json:"null_values"`

	// Lowercased null-value lookup, built once by normalize()
	nullSet map[string]struct{}
}

// IsNullValue reports whether the trimmed, case-folded value appears in
// the null-value set. The empty string is always a null.
func (t *Tables) IsNullValue(value string) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return true
	}
	_, ok := t.nullSet[strings.ToLower(trimmed)]
	return ok
}

// normalize builds lookup structures and lowercases table entries that
// are compared case-insensitively.
func (t *Tables) normalize() {
	t.nullSet = make(map[string]struct{}, len(t.NullValues))
	for _, v := range t.NullValues {
		t.nullSet[strings.ToLower(strings.TrimSpace(v))] = struct{}{}
	}

	for i, fix := range t.TLDFixes {
		t.TLDFixes[i].Wrong = strings.ToLower(fix.Wrong)
		t.TLDFixes[i].Right = strings.ToLower(fix.Right)
	}
}

// NewTables finalizes a table set constructed in code rather than
// loaded from a file.
func NewTables(t Tables) *Tables {
	t.normalize()
	return &t
}

// Default returns the built-in rule tables used when no rules file is
// configured.
func Default() *Tables {
	t := &Tables{
		TLDFixes: []TLDFix{
			{Wrong: "gmial.com", Right: "gmail.com"},
			{Wrong: "gamil.com", Right: "gmail.com"},
			{Wrong: "gmaill.com", Right: "gmail.com"},
			{Wrong: "hotmial.com", Right: "hotmail.com"},
			{Wrong: "yahooo.com", Right: "yahoo.com"},
			{Wrong: ".comm", Right: ".com"},
			{Wrong: ".coom", Right: ".com"},
			{Wrong: ".con", Right: ".com"},
			{Wrong: ".cmo", Right: ".com"},
			{Wrong: ".ocm", Right: ".com"},
			{Wrong: ".vom", Right: ".com"},
			{Wrong: ".orgg", Right: ".org"},
			{Wrong: ".nett", Right: ".net"},
			{Wrong: ".eduu", Right: ".edu"},
		},
		TokenReplacements: []TokenReplacement{
			{Token: " at ", Replacement: "@"},
			{Token: "(at)", Replacement: "@"},
			{Token: "[at]", Replacement: "@"},
			{Token: " dot ", Replacement: "."},
			{Token: "(dot)", Replacement: "."},
			{Token: "[dot]", Replacement: "."},
			{Token: "[", Replacement: ""},
			{Token: "]", Replacement: ""},
		},
		Separators: []string{"#", "$", "%", "&", "*"},
		NullValues: []string{
			"na", "n/a", "none", "null", "nil", "unknown", "missing",
			"no email", "noemail", "not available", "-", "--", "?",
		},
	}

	t.normalize()
	return t
}
