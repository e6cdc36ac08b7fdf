package importer_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hal-eisen/thunderbird-msgFilterRules-builder/internal/importer"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "filters.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRead(t *testing.T) {
	path := writeManifest(t, `version: "1"
filters:
  - rule: Newsletters
    field: from
    value: news@example.com
    folder: imap://eisen@imap.example.org/Newsletters
  - rule: Work
    field: subject
    value: urgent
    folder: imap://eisen@imap.example.org/Work
`)

	entries, err := importer.Read(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "Newsletters", entries[0].Rule)
	assert.Equal(t, "from", entries[0].Field)
	assert.Equal(t, "news@example.com", entries[0].Value)
	assert.Equal(t, "imap://eisen@imap.example.org/Newsletters", entries[0].Folder)
	assert.Equal(t, "Work", entries[1].Rule)
}

func TestRead_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"missing file is reported", "", "reading manifest"},
		{"no filters", "version: \"1\"\n", "no filters defined"},
		{"missing rule name", "filters:\n  - field: from\n    value: x\n", "rule name is required"},
		{"missing field", "filters:\n  - rule: A\n    value: x\n", "field is required"},
		{"missing value", "filters:\n  - rule: A\n    field: from\n", "value is required"},
		{"malformed yaml", "filters: [\n", "parsing manifest"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, tt.content)
			if tt.content == "" {
				path = filepath.Join(t.TempDir(), "missing.yaml")
			}

			_, err := importer.Read(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
