package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fedora-infra/go-pkgdb/pkgdb"
)

func TestNewClientConfig(t *testing.T) {
	// setup testing table (tt) and create subtest for each entry
	for _, tt := range []struct {
		name        string
		desc        string
		baseURL     string
		wantBaseURL string
		wantErr     bool
	}{
		{
			name:        "defaults",
			desc:        "An empty URL selects the Fedora instance",
			baseURL:     "",
			wantBaseURL: DefaultBaseURL,
		},
		{
			name:        "override",
			desc:        "A staging URL is taken as-is",
			baseURL:     "https://admin.stg.fedoraproject.org/pkgdb/",
			wantBaseURL: "https://admin.stg.fedoraproject.org/pkgdb/",
		},
		{
			name:    "invalid character in URL",
			desc:    "Invalid ASCII control sequence in input",
			baseURL: string([]byte{0x7f}),
			wantErr: true,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			// this will only be printed if run in verbose mode or if test fails
			t.Logf("Desc: %s", tt.desc)
			cfg, err := New(tt.baseURL)
			if tt.wantErr {
				assert.Nil(t, cfg)
				assert.Error(t, err)
				return
			}
			assert.NoErrorf(t, err, "expected no error but got %v", err)
			assert.Equal(t, tt.wantBaseURL, cfg.BaseURL)
			assert.Equal(t, "Fedora PackageDB Client/"+pkgdb.Version, cfg.UserAgent)
			assert.NotEmpty(t, cfg.SessionFile)
			assert.NotZero(t, cfg.Timeout)
			assert.False(t, cfg.CacheSession)
			assert.Nil(t, cfg.BaseClient)
		})
	}
}

func TestValidateCredentialModes(t *testing.T) {
	// setup testing table (tt) and create subtest for each entry
	for _, tt := range []struct {
		name    string
		desc    string
		mutate  func(cfg *ClientConfig)
		wantErr bool
	}{
		{
			name:   "no credentials",
			desc:   "Unauthenticated configs are valid",
			mutate: func(cfg *ClientConfig) {},
		},
		{
			name: "username and password",
			desc: "The password mode stands on its own",
			mutate: func(cfg *ClientConfig) {
				cfg.Username = "alice"
				cfg.Password = "somepassword"
			},
		},
		{
			name: "session id",
			desc: "The session mode stands on its own",
			mutate: func(cfg *ClientConfig) {
				cfg.SessionID = "somesession"
			},
		},
		{
			name: "legacy cookie",
			desc: "The deprecated cookie mode stands on its own",
			mutate: func(cfg *ClientConfig) {
				cfg.SessionCookie = "somecookie"
			},
		},
		{
			name: "username without password",
			desc: "Half a credential pair is rejected",
			mutate: func(cfg *ClientConfig) {
				cfg.Username = "alice"
			},
			wantErr: true,
		},
		{
			name: "password and session id",
			desc: "Credential modes are mutually exclusive",
			mutate: func(cfg *ClientConfig) {
				cfg.Username = "alice"
				cfg.Password = "somepassword"
				cfg.SessionID = "somesession"
			},
			wantErr: true,
		},
		{
			name: "session id and legacy cookie",
			desc: "Credential modes are mutually exclusive",
			mutate: func(cfg *ClientConfig) {
				cfg.SessionID = "somesession"
				cfg.SessionCookie = "somecookie"
			},
			wantErr: true,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			// this will only be printed if run in verbose mode or if test fails
			t.Logf("Desc: %s", tt.desc)
			cfg, err := New("")
			assert.NoError(t, err)
			tt.mutate(cfg)
			err = cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.IsType(t, pkgdb.ErrValue{}, err)
				return
			}
			assert.NoErrorf(t, err, "expected no error but got %v", err)
		})
	}
}
