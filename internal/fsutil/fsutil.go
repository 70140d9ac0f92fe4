// Package fsutil defines a set of internal utility functions used to
// keep the cached session id on the file system.
package fsutil

import (
	"errors"
	"os"
	"strings"
)

var ErrPermission = errors.New("unexpected permission")

// SessionFileMode keeps the cached session readable by its owner only.
const SessionFileMode = os.FileMode(0600)

// ReadSession reads a cached session id, refusing files readable by
// anyone but the owner. A missing file is not an error; it returns an
// empty session id.
func ReadSession(path string) (string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	if err := EnsureMaxPermissions(fi, SessionFileMode); err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// WriteSession stores a session id with owner-only permissions. An empty
// session id removes the cache file.
func WriteSession(path, sessionID string) error {
	if sessionID == "" {
		err := os.Remove(path)
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.WriteFile(path, []byte(sessionID+"\n"), SessionFileMode)
}
