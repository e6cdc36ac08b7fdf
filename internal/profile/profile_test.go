package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("version=\"9\"\n"), 0o644))
}

func TestFindUnder_ClassicProfile(t *testing.T) {
	home := t.TempDir()
	want := filepath.Join(home, ".thunderbird", "abc123.default", "ImapMail", "imap.example.org", RulesFileName)
	touch(t, want)

	got, err := findUnder(home)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFindUnder_SnapProfile(t *testing.T) {
	home := t.TempDir()
	want := filepath.Join(home, "snap", "thunderbird", "common", ".thunderbird",
		"8blc452o.default", "ImapMail", "imap.lxdn.org", RulesFileName)
	touch(t, want)

	got, err := findUnder(home)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFindUnder_PrefersImapOverLocalMail(t *testing.T) {
	home := t.TempDir()
	imap := filepath.Join(home, ".thunderbird", "p.default", "ImapMail", "imap.example.org", RulesFileName)
	local := filepath.Join(home, ".thunderbird", "p.default", "Mail", "Local Folders", RulesFileName)
	touch(t, imap)
	touch(t, local)

	got, err := findUnder(home)
	require.NoError(t, err)
	assert.Equal(t, imap, got)
}

func TestFindUnder_StableOrder(t *testing.T) {
	home := t.TempDir()
	a := filepath.Join(home, ".thunderbird", "p.default", "ImapMail", "a.example.org", RulesFileName)
	b := filepath.Join(home, ".thunderbird", "p.default", "ImapMail", "b.example.org", RulesFileName)
	touch(t, b)
	touch(t, a)

	got, err := findUnder(home)
	require.NoError(t, err)
	assert.Equal(t, a, got)
}

func TestFindUnder_NotFound(t *testing.T) {
	_, err := findUnder(t.TempDir())
	assert.ErrorIs(t, err, ErrNotFound)
}
