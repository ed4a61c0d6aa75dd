// pkg/cleaner/normalize_test.go
package cleaner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	c := newTestCleaner(t)

	tests := []struct {
		name              string
		in                string
		want              string
		wantRemovedSpaces bool
		wantTokenReplaced bool
	}{
		{
			name: "lowercase only is unflagged",
			in:   "USER@EXAMPLE.COM",
			want: "user@example.com",
		},
		{
			name:              "at and dot tokens",
			in:                "john at example dot com",
			want:              "john@example.com",
			wantTokenReplaced: true,
		},
		{
			name:              "bracketed at token",
			in:                "john[at]example.com",
			want:              "john@example.com",
			wantTokenReplaced: true,
		},
		{
			name:              "parenthesized tokens",
			in:                "john(at)example(dot)com",
			want:              "john@example.com",
			wantTokenReplaced: true,
		},
		{
			name:              "whitespace around delimiters",
			in:                "  user @ example . com ",
			want:              "user@example.com",
			wantRemovedSpaces: true,
		},
		{
			name:              "interior whitespace stripped",
			in:                "us er@example.com",
			want:              "user@example.com",
			wantRemovedSpaces: true,
		},
		{
			name:              "tabs and newlines collapsed",
			in:                "user\t@\nexample.com",
			want:              "user@example.com",
			wantRemovedSpaces: true,
		},
		{
			name: "clean input untouched",
			in:   "user@example.com",
			want: "user@example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, removedSpaces, tokenReplaced := c.normalize(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantRemovedSpaces, removedSpaces, "removedSpaces")
			assert.Equal(t, tt.wantTokenReplaced, tokenReplaced, "tokenReplaced")
		})
	}
}
