// pkg/cleaner/wrapper_test.go
package cleaner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractFromWrappers(t *testing.T) {
	c := newTestCleaner(t)

	tests := []struct {
		name          string
		in            string
		want          string
		wantExtracted bool
	}{
		{
			name:          "angle brackets",
			in:            "John Doe <john@example.com>",
			want:          "john@example.com",
			wantExtracted: true,
		},
		{
			name:          "mailto prefix",
			in:            "mailto:john@example.com",
			want:          "john@example.com",
			wantExtracted: true,
		},
		{
			name:          "mailto prefix uppercase",
			in:            "MAILTO:john@example.com",
			want:          "john@example.com",
			wantExtracted: true,
		},
		{
			name:          "tracking url with address in q",
			in:            "https://www.google.com/url?sa=t&q=john@example.com&source=web",
			want:          "john@example.com",
			wantExtracted: true,
		},
		{
			name:          "tracking url without address in q",
			in:            "https://www.google.com/url?sa=t&q=example.com",
			want:          "https://www.google.com/url?sa=t&q=example.com",
			wantExtracted: false,
		},
		{
			name:          "bracket wrapped tracking url",
			in:            "<https://t.example/redirect?q=jane@example.org>",
			want:          "jane@example.org",
			wantExtracted: true,
		},
		{
			name:          "plain address untouched",
			in:            "john@example.com",
			want:          "john@example.com",
			wantExtracted: false,
		},
		{
			name:          "bare mailto prefix only",
			in:            "mailto:",
			want:          "mailto:",
			wantExtracted: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, extracted := c.extractFromWrappers(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantExtracted, extracted)
		})
	}
}
