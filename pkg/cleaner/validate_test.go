// pkg/cleaner/validate_test.go
package cleaner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@example.co.uk",
		"user+tag@example.org",
		"user_name%x@sub.example-site.net",
		"a@b.io",
	}
	for _, s := range valid {
		assert.True(t, IsValidEmail(s), "expected valid: %q", s)
	}

	invalid := []string{
		"",
		"userexample.com",
		"user@example",
		"user@example.c",
		"user@example.c0m",
		"@example.com",
		"user@",
		"user@@example.com",
		"us er@example.com",
		" user@example.com",
		"user@example.com ",
		"user@exam ple.com",
	}
	for _, s := range invalid {
		assert.False(t, IsValidEmail(s), "expected invalid: %q", s)
	}
}
