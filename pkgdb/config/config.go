// Package config holds the construction options for the pkgdb client.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/fedora-infra/go-pkgdb/pkgdb"
)

// DefaultBaseURL is the Fedora PackageDB instance.
const DefaultBaseURL = "https://admin.fedoraproject.org/pkgdb/"

// sessionFileName is the session cache kept in the user's home directory
// between invocations when CacheSession is set.
const sessionFileName = ".fedora_session"

// ClientConfig carries the options accepted when constructing a pkgdb
// client. At most one of the credential modes may be set: SessionID,
// Username/Password, or the deprecated SessionCookie.
type ClientConfig struct {
	// BaseURL is the base of every URL used to contact the server.
	BaseURL string
	// UserAgent overrides the default "Fedora PackageDB Client/<version>".
	UserAgent string
	// Debug enables request/response logging through pkgdb.GetLogger.
	Debug bool

	// Username and Password establish authenticated sessions.
	Username string
	Password string
	// SessionID is an existing session to reuse instead of logging in.
	SessionID string
	// SessionCookie is the legacy cookie form of SessionID.
	//
	// Deprecated: use SessionID instead.
	SessionCookie string
	// CacheSession persists the session id to SessionFile between runs.
	CacheSession bool
	// SessionFile is where the cached session id lives. Defaults to
	// ~/.fedora_session.
	SessionFile string

	// Timeout bounds every HTTP request.
	Timeout time.Duration

	// BaseClient overrides the transport used for all requests. When nil
	// the default session-aware HTTP client is used.
	BaseClient pkgdb.BaseClient
}

// New creates a ClientConfig with defaults filled in. An empty baseURL
// selects the Fedora PackageDB instance.
func New(baseURL string) (*ClientConfig, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, err
	}
	sessionFile := sessionFileName
	if home, err := os.UserHomeDir(); err == nil {
		sessionFile = filepath.Join(home, sessionFileName)
	}
	return &ClientConfig{
		BaseURL:     baseURL,
		UserAgent:   fmt.Sprintf("Fedora PackageDB Client/%s", pkgdb.Version),
		SessionFile: sessionFile,
		Timeout:     30 * time.Second,
	}, nil
}

// Validate checks the credential modes for mutual exclusivity. A config
// without any credentials is valid; only unauthenticated calls will work.
func (cfg *ClientConfig) Validate() error {
	modes := 0
	if cfg.Username != "" || cfg.Password != "" {
		if cfg.Username == "" || cfg.Password == "" {
			return pkgdb.ErrValue{Msg: "username and password must be set together"}
		}
		modes++
	}
	if cfg.SessionID != "" {
		modes++
	}
	if cfg.SessionCookie != "" {
		modes++
	}
	if modes > 1 {
		return pkgdb.ErrValue{Msg: "set only one of session id, username/password or legacy session cookie"}
	}
	return nil
}
