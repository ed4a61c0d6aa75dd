// pkg/cleaner/separator_test.go
package cleaner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixSeparator(t *testing.T) {
	c := newTestCleaner(t)

	tests := []struct {
		name      string
		in        string
		want      string
		wantFixed bool
	}{
		{
			name:      "hash promoted",
			in:        "user#example.com",
			want:      "user@example.com",
			wantFixed: true,
		},
		{
			name:      "only first occurrence replaced",
			in:        "user#exa#mple.com",
			want:      "user@exa#mple.com",
			wantFixed: true,
		},
		{
			name: "existing at wins",
			in:   "user@exa#mple.com",
			want: "user@exa#mple.com",
		},
		{
			name: "no separator present",
			in:   "userexample.com",
			want: "userexample.com",
		},
		{
			name:      "ampersand promoted",
			in:        "user&example.com",
			want:      "user@example.com",
			wantFixed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, fixed := c.fixSeparator(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantFixed, fixed)
		})
	}
}
