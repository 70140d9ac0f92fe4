// Package baseclient provides the default implementation of the shared
// HTTP client the pkgdb binding is built on. It owns the authentication
// session, request dispatch and the single re-login retry; the binding
// layer never re-interprets transport failures.
package baseclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/fedora-infra/go-pkgdb/internal/fsutil"
	"github.com/fedora-infra/go-pkgdb/pkgdb"
	"github.com/fedora-infra/go-pkgdb/pkgdb/config"
)

// sessionCookieName is the TurboGears visit cookie carrying the session.
const sessionCookieName = "tg-visit"

// loginPath is the server's login endpoint, relative to the base URL.
const loginPath = "login"

// DefaultBaseClient implements pkgdb.BaseClient on top of net/http. It
// holds the session id acquired at construction or first login and
// reuses it for every authenticated request.
type DefaultBaseClient struct {
	baseURL      *url.URL
	userAgent    string
	username     string
	password     string
	sessionID    string
	cacheSession bool
	sessionFile  string
	debug        bool
	client       *http.Client
}

// New creates a DefaultBaseClient from the given configuration. A cached
// session id is loaded from cfg.SessionFile when CacheSession is set and
// no explicit credentials carry a session.
func New(cfg *config.ClientConfig) (*DefaultBaseClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, err
	}
	// A base URL without the trailing slash would swallow its last path
	// segment during resolution.
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}
	bc := &DefaultBaseClient{
		baseURL:      base,
		userAgent:    cfg.UserAgent,
		username:     cfg.Username,
		password:     cfg.Password,
		sessionID:    cfg.SessionID,
		cacheSession: cfg.CacheSession,
		sessionFile:  cfg.SessionFile,
		debug:        cfg.Debug,
		client:       &http.Client{Timeout: cfg.Timeout},
	}
	if bc.sessionID == "" && cfg.SessionCookie != "" {
		bc.sessionID = cfg.SessionCookie
	}
	if bc.sessionID == "" && bc.cacheSession {
		cached, err := fsutil.ReadSession(bc.sessionFile)
		if err != nil {
			return nil, err
		}
		bc.sessionID = cached
	}
	return bc, nil
}

// SessionID returns the current session id, if any.
func (bc *DefaultBaseClient) SessionID() string {
	return bc.sessionID
}

// Send performs the request and returns the raw response body. An
// authenticated request without a session logs in first; a session the
// server no longer accepts is renewed by logging in again and retrying
// exactly once.
func (bc *DefaultBaseClient) Send(ctx context.Context, req pkgdb.Request) ([]byte, error) {
	if req.Auth && bc.sessionID == "" {
		if err := bc.login(ctx); err != nil {
			return nil, err
		}
	}
	data, err := bc.do(ctx, req)
	if err == nil {
		return data, nil
	}
	var httpErr pkgdb.ErrHTTP
	renewable := errors.As(err, &httpErr) &&
		(httpErr.StatusCode == http.StatusUnauthorized || httpErr.StatusCode == http.StatusForbidden)
	if !req.Auth || !renewable || bc.username == "" {
		return nil, err
	}
	bc.sessionID = ""
	if err := bc.login(ctx); err != nil {
		return nil, err
	}
	return bc.do(ctx, req)
}

// do dispatches a single request: GET with query parameters for reads,
// form-encoded POST for dispatcher operations.
func (bc *DefaultBaseClient) do(ctx context.Context, req pkgdb.Request) ([]byte, error) {
	u := bc.baseURL.JoinPath(strings.TrimPrefix(req.Path, "/"))
	query := url.Values{"tg_format": []string{"json"}}

	var httpReq *http.Request
	var err error
	if req.Auth {
		body := url.Values{}
		for k, vs := range req.Params {
			body[k] = vs
		}
		u.RawQuery = query.Encode()
		httpReq, err = http.NewRequestWithContext(ctx, http.MethodPost, u.String(), strings.NewReader(body.Encode()))
		if err != nil {
			return nil, err
		}
		httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		for k, vs := range req.Params {
			query[k] = vs
		}
		u.RawQuery = query.Encode()
		httpReq, err = http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if err != nil {
			return nil, err
		}
	}
	httpReq.Header.Set("Accept", "application/json")
	if bc.userAgent != "" {
		httpReq.Header.Set("User-Agent", bc.userAgent)
	}
	if req.Auth {
		httpReq.AddCookie(&http.Cookie{Name: sessionCookieName, Value: bc.sessionID})
	}
	if bc.debug {
		pkgdb.GetLogger().Info("sending request", "method", httpReq.Method, "url", u.Redacted(), "auth", req.Auth)
	}

	res, err := bc.client.Do(httpReq)
	if err != nil {
		return nil, pkgdb.ErrSendRequest{Msg: err.Error()}
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, pkgdb.ErrHTTP{StatusCode: res.StatusCode, URL: u.Redacted()}
	}
	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, pkgdb.ErrSendRequest{Msg: err.Error()}
	}
	return data, nil
}

// login establishes a new session with the configured username and
// password and persists it when session caching is enabled.
func (bc *DefaultBaseClient) login(ctx context.Context) error {
	if bc.username == "" {
		return pkgdb.ErrAuthentication{Msg: "authenticated request requires a session id or username and password"}
	}
	u := bc.baseURL.JoinPath(loginPath)
	u.RawQuery = url.Values{"tg_format": []string{"json"}}.Encode()
	body := url.Values{
		"user_name": []string{bc.username},
		"password":  []string{bc.password},
		"login":     []string{"Login"},
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), strings.NewReader(body.Encode()))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Accept", "application/json")
	if bc.userAgent != "" {
		httpReq.Header.Set("User-Agent", bc.userAgent)
	}

	res, err := bc.client.Do(httpReq)
	if err != nil {
		return pkgdb.ErrSendRequest{Msg: err.Error()}
	}
	defer res.Body.Close()
	io.Copy(io.Discard, res.Body)
	if res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden {
		return pkgdb.ErrAuthentication{Msg: "invalid username or password"}
	}
	if res.StatusCode != http.StatusOK {
		return pkgdb.ErrHTTP{StatusCode: res.StatusCode, URL: u.Redacted()}
	}
	for _, cookie := range res.Cookies() {
		if cookie.Name == sessionCookieName && cookie.Value != "" {
			bc.sessionID = cookie.Value
			break
		}
	}
	if bc.sessionID == "" {
		return pkgdb.ErrAuthentication{Msg: "server did not grant a session"}
	}
	if bc.debug {
		pkgdb.GetLogger().Info("session established", "user", bc.username)
	}
	if bc.cacheSession {
		if err := fsutil.WriteSession(bc.sessionFile, bc.sessionID); err != nil {
			pkgdb.GetLogger().Error(err, "could not cache session", "file", bc.sessionFile)
		}
	}
	return nil
}

// Logout invalidates the current session on the server and clears the
// local session id and cache.
func (bc *DefaultBaseClient) Logout(ctx context.Context) error {
	if bc.sessionID == "" {
		return nil
	}
	_, err := bc.do(ctx, pkgdb.Request{Path: "logout", Auth: true})
	bc.sessionID = ""
	if bc.cacheSession {
		if cerr := fsutil.WriteSession(bc.sessionFile, ""); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
