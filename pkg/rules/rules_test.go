// pkg/rules/rules_test.go
package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDefaultTables(t *testing.T) {
	tables := Default()

	assert.NotEmpty(t, tables.TLDFixes)
	assert.NotEmpty(t, tables.TokenReplacements)
	assert.NotEmpty(t, tables.Separators)
	assert.NotEmpty(t, tables.NullValues)
}

func TestIsNullValue(t *testing.T) {
	tables := Default()

	nulls := []string{"na", "NA", " n/a ", "NONE", "unknown", "no email", "-", "?", "", "   "}
	for _, s := range nulls {
		assert.True(t, tables.IsNullValue(s), "expected null: %q", s)
	}

	notNulls := []string{"user@example.com", "nancy", "known", "0"}
	for _, s := range notNulls {
		assert.False(t, tables.IsNullValue(s), "expected not null: %q", s)
	}
}

func TestIsNullValueEmptyAlwaysNull(t *testing.T) {
	// Even with an empty null-value table, empty and blank strings are
	// classified null.
	tables := NewTables(Tables{})

	assert.True(t, tables.IsNullValue(""))
	assert.True(t, tables.IsNullValue("  \t "))
	assert.False(t, tables.IsNullValue("na"))
}

func TestNewTablesNormalizes(t *testing.T) {
	tables := NewTables(Tables{
		TLDFixes:   []TLDFix{{Wrong: "GMIAL.COM", Right: "GMAIL.COM"}},
		NullValues: []string{" FOO "},
	})

	assert.Equal(t, "gmial.com", tables.TLDFixes[0].Wrong)
	assert.Equal(t, "gmail.com", tables.TLDFixes[0].Right)
	assert.True(t, tables.IsNullValue("foo"))
	assert.True(t, tables.IsNullValue("FOO"))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.json")
	doc := `{
		"tld_fixes": [{"wrong": ".CON", "right": ".com"}],
		"token_replacements": [{"token": " at ", "replacement": "@"}],
		"separators": ["#"],
		"null_values": ["nothing"]
	}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	tables, err := Load(path)
	require.NoError(t, err)

	require.Len(t, tables.TLDFixes, 1)
	assert.Equal(t, ".con", tables.TLDFixes[0].Wrong)
	require.Len(t, tables.TokenReplacements, 1)
	assert.Equal(t, []string{"#"}, tables.Separators)
	assert.True(t, tables.IsNullValue("NOTHING"))
}

func TestLoadMissingTablesTolerated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))

	tables, err := Load(path)
	require.NoError(t, err)

	assert.Empty(t, tables.TLDFixes)
	assert.Empty(t, tables.TokenReplacements)
	assert.True(t, tables.IsNullValue(""))
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`not json`), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestLoadOrDefault(t *testing.T) {
	tables, err := LoadOrDefault("", zap.NewNop())
	require.NoError(t, err)
	assert.NotEmpty(t, tables.TLDFixes)

	path := filepath.Join(t.TempDir(), "rules.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"separators": ["#"]}`), 0o644))

	tables, err = LoadOrDefault(path, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, []string{"#"}, tables.Separators)
	assert.Empty(t, tables.TLDFixes)
}
