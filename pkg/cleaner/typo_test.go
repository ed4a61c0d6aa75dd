// pkg/cleaner/typo_test.go
package cleaner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/David-Botos/email-cleanse/pkg/rules"
)

func TestFixTypos(t *testing.T) {
	c := newTestCleaner(t)

	tests := []struct {
		name            string
		in              string
		want            string
		wantTypoFix     bool
		wantPunctuation bool
	}{
		{
			name:        "misspelled domain",
			in:          "user@gmial.com",
			want:        "user@gmail.com",
			wantTypoFix: true,
		},
		{
			name:        "truncated tld",
			in:          "user@example.con",
			want:        "user@example.com",
			wantTypoFix: true,
		},
		{
			name:        "doubled at collapsed",
			in:          "user@@example.com",
			want:        "user@example.com",
			wantTypoFix: true,
		},
		{
			name:            "doubled dots collapsed",
			in:              "user@exa..mple.com",
			want:            "user@exa.mple.com",
			wantPunctuation: true,
		},
		{
			name:            "edge punctuation stripped",
			in:              ".user@example.com.",
			want:            "user@example.com",
			wantPunctuation: true,
		},
		{
			name:            "everything at once",
			in:              "..user@@example..con",
			want:            "user@example.com",
			wantTypoFix:     true,
			wantPunctuation: true,
		},
		{
			name: "clean input untouched",
			in:   "user@example.com",
			want: "user@example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, typoFix, punctuation := c.fixTypos(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantTypoFix, typoFix, "typoFix")
			assert.Equal(t, tt.wantPunctuation, punctuation, "punctuation")
		})
	}
}

func TestFixTyposFirstMatchWins(t *testing.T) {
	// Specific-before-general ordering is the table author's contract:
	// only the first matching entry fires.
	tables := rules.NewTables(rules.Tables{
		TLDFixes: []rules.TLDFix{
			{Wrong: "mail.con", Right: "mail.com"},
			{Wrong: ".con", Right: ".org"},
		},
	})
	c, err := NewEmailCleaner(tables, zap.NewNop())
	require.NoError(t, err)

	got, typoFix, _ := c.fixTypos("user@mail.con")
	assert.Equal(t, "user@mail.com", got)
	assert.True(t, typoFix)

	got, typoFix, _ = c.fixTypos("user@other.con")
	assert.Equal(t, "user@other.org", got)
	assert.True(t, typoFix)
}

func TestFixTyposEmptyTableIsNoOp(t *testing.T) {
	c, err := NewEmailCleaner(rules.NewTables(rules.Tables{}), zap.NewNop())
	require.NoError(t, err)

	got, typoFix, punctuation := c.fixTypos("user@gmial.com")
	assert.Equal(t, "user@gmial.com", got)
	assert.False(t, typoFix)
	assert.False(t, punctuation)
}
