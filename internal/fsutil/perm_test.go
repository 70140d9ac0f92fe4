//go:build !windows
// +build !windows

package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnsureMaxPermissions(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, "session")

	// Start with 0644 and change using os.Chmod so umask doesn't interfere.
	err := os.WriteFile(p, []byte(`somesession`), 0644)
	assert.NoError(t, err)

	// Exact match
	err = os.Chmod(p, 0600)
	assert.NoError(t, err)
	fi, err := os.Stat(p)
	assert.NoError(t, err)
	err = EnsureMaxPermissions(fi, SessionFileMode)
	assert.NoError(t, err)

	// More restrictive perms on file are fine
	err = os.Chmod(p, 0400)
	assert.NoError(t, err)
	fi, err = os.Stat(p)
	assert.NoError(t, err)
	err = EnsureMaxPermissions(fi, SessionFileMode)
	assert.NoError(t, err)

	// Group/world readable is not
	err = os.Chmod(p, 0644)
	assert.NoError(t, err)
	fi, err = os.Stat(p)
	assert.NoError(t, err)
	err = EnsureMaxPermissions(fi, SessionFileMode)
	assert.ErrorIs(t, err, ErrPermission)
}

func TestSessionRoundTrip(t *testing.T) {
	p := filepath.Join(t.TempDir(), "session")

	// Missing file is an empty session, not an error.
	id, err := ReadSession(p)
	assert.NoError(t, err)
	assert.Empty(t, id)

	err = WriteSession(p, "somesessionid")
	assert.NoError(t, err)
	fi, err := os.Stat(p)
	assert.NoError(t, err)
	assert.Equal(t, SessionFileMode, fi.Mode().Perm())

	id, err = ReadSession(p)
	assert.NoError(t, err)
	assert.Equal(t, "somesessionid", id)

	// Refuse a session file readable by others.
	err = os.Chmod(p, 0644)
	assert.NoError(t, err)
	_, err = ReadSession(p)
	assert.ErrorIs(t, err, ErrPermission)

	// Writing an empty id clears the cache.
	err = os.Chmod(p, 0600)
	assert.NoError(t, err)
	err = WriteSession(p, "")
	assert.NoError(t, err)
	_, err = os.Stat(p)
	assert.ErrorIs(t, err, os.ErrNotExist)
	err = WriteSession(p, "")
	assert.NoError(t, err)
}
