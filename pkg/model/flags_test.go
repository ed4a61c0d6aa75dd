// pkg/model/flags_test.go
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChangeFlagsFinalize(t *testing.T) {
	clean := ChangeFlags{}.Finalize()
	assert.True(t, clean.NoChange)

	changed := ChangeFlags{TypoFix: true}.Finalize()
	assert.False(t, changed.NoChange)
	assert.True(t, changed.TypoFix)

	null := ChangeFlags{NullValue: true}.Finalize()
	assert.False(t, null.NoChange)
}

func TestChangeFlagsAnyIgnoresNoChange(t *testing.T) {
	f := ChangeFlags{NoChange: true}
	assert.False(t, f.Any())
}
