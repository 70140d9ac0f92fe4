package pkgdb

import (
	"fmt"
)

// Define the pkgdb error types used by the client and its collaborators.
// The names chosen for pkgdb error types should start in 'Err' except where
// there is a good reason not to, and provide that reason in those cases.

// Client errors, raised locally before any request is sent

// ErrClient - an error raised by the pkgdb client itself. It covers all
// failures detected locally, as opposed to errors reported by the server
type ErrClient struct {
	Msg string
}

func (e ErrClient) Error() string {
	return fmt.Sprintf("pkgdb client error: %s", e.Msg)
}

// ErrBranchName - a branch abbreviation that is malformed or uses an
// unknown collection prefix
type ErrBranchName struct {
	Msg string
}

func (e ErrBranchName) Error() string {
	return fmt.Sprintf("branch name error: %s", e.Msg)
}

// ErrBranchName is a subset of ErrClient
func (e ErrBranchName) Is(target error) bool {
	return target == ErrClient{} || target == ErrBranchName{}
}

// ErrPackageCreate - a package does not exist and not enough information
// was supplied to create it
type ErrPackageCreate struct {
	Pkg string
}

func (e ErrPackageCreate) Error() string {
	return fmt.Sprintf("package %s does not exist and we do not have enough information to create it", e.Pkg)
}

// ErrPackageCreate is a subset of ErrClient
func (e ErrPackageCreate) Is(target error) bool {
	return target == ErrClient{} || target == ErrPackageCreate{}
}

// Server errors

// ErrServer - the server answered a request with its error envelope
// ({"status": false, "message": ...}). Extras carries the list of packages
// left unbranched when a mass branch partially fails, so callers can retry
// just the remainder.
type ErrServer struct {
	Name   string
	Msg    string
	Extras []string
}

func (e ErrServer) Error() string {
	name := e.Name
	if name == "" {
		name = "PackageDBError"
	}
	return fmt.Sprintf("%s: %s", name, e.Msg)
}

// Is reports target matching on type alone. ErrServer carries a slice and
// cannot be compared with ==, so the zero-value convention used by the
// other error types does not apply here.
func (e ErrServer) Is(target error) bool {
	_, ok := target.(ErrServer)
	return ok
}

// Transport errors, raised by BaseClient implementations

// ErrSendRequest - an error occurred while attempting to send a request
type ErrSendRequest struct {
	Msg string
}

func (e ErrSendRequest) Error() string {
	return fmt.Sprintf("send request error: %s", e.Msg)
}

// ErrHTTP - returned by BaseClient implementations for HTTP errors
type ErrHTTP struct {
	StatusCode int
	URL        string
}

func (e ErrHTTP) Error() string {
	return fmt.Sprintf("request to %s failed, http status code: %d", e.URL, e.StatusCode)
}

// ErrHTTP is a subset of ErrSendRequest
func (e ErrHTTP) Is(target error) bool {
	return target == ErrSendRequest{} || target == ErrHTTP{}
}

// ErrAuthentication - an authenticated request was attempted without a
// usable session or credentials, or the login itself was rejected
type ErrAuthentication struct {
	Msg string
}

func (e ErrAuthentication) Error() string {
	return fmt.Sprintf("authentication error: %s", e.Msg)
}

// ErrAuthentication is a subset of ErrSendRequest
func (e ErrAuthentication) Is(target error) bool {
	return target == ErrSendRequest{} || target == ErrAuthentication{}
}

// ValueError
type ErrValue struct {
	Msg string
}

func (e ErrValue) Error() string {
	return fmt.Sprintf("value error: %s", e.Msg)
}
