package pkgdb

import (
	"context"
	"net/url"
)

// Request describes a single call against the pkgdb server, relative to
// the client's base URL.
type Request struct {
	// Path is the URL path relative to the base URL, e.g.
	// "/packages/name/bash".
	Path string
	// Params are sent as query parameters for unauthenticated reads and
	// as a form body for dispatcher operations.
	Params url.Values
	// Auth marks the request as requiring an authenticated session.
	Auth bool
}

// BaseClient is the shared HTTP client collaborator the pkgdb binding is
// built on. Implementations own session handling, request dispatch and
// retry policy; the binding only maps method calls onto paths and
// parameters and interprets the response payload.
type BaseClient interface {
	// Send performs the request and returns the raw response body.
	// Transport and authentication failures surface as ErrSendRequest,
	// ErrHTTP or ErrAuthentication.
	Send(ctx context.Context, req Request) ([]byte, error)
}
