// Package client provides an easy to use interface to the Fedora
// Package Database.
//
// The PackageDB client maps domain calls onto the server's query and
// dispatcher endpoints and interprets the JSON error envelope once at
// the HTTP boundary. All state lives on the server; the client holds
// nothing but its transport.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"golang.org/x/exp/slices"

	"github.com/fedora-infra/go-pkgdb/pkgdb"
	"github.com/fedora-infra/go-pkgdb/pkgdb/baseclient"
	"github.com/fedora-infra/go-pkgdb/pkgdb/config"
)

// PackageDB is a client for the package database web service.
type PackageDB struct {
	bc pkgdb.BaseClient
}

// New creates a PackageDB client. A nil cfg selects the Fedora PackageDB
// instance with defaults; cfg.BaseClient overrides the transport.
func New(cfg *config.ClientConfig) (*PackageDB, error) {
	if cfg == nil {
		var err error
		cfg, err = config.New("")
		if err != nil {
			return nil, err
		}
	}
	bc := cfg.BaseClient
	if bc == nil {
		var err error
		bc, err = baseclient.New(cfg)
		if err != nil {
			return nil, err
		}
	}
	return &PackageDB{bc: bc}, nil
}

// PackageInfo returns ownership and package metadata for pkg. A non-empty
// branch token restricts the information to that branch; it is resolved
// locally and an unknown abbreviation fails without any network call.
func (p *PackageDB) PackageInfo(ctx context.Context, pkg, branch string) (pkgdb.Payload, error) {
	params := url.Values{}
	if branch != "" {
		collection, version, err := pkgdb.CanonicalBranchName(branch)
		if err != nil {
			return nil, err
		}
		params.Set("collectionName", collection)
		params.Set("collectionVersion", version)
	}
	data, err := p.bc.Send(ctx, pkgdb.Request{
		Path:   fmt.Sprintf("/packages/name/%s", pkg),
		Params: params,
	})
	if err != nil {
		return nil, err
	}
	return pkgdb.DecodeResponse(data)
}

// CloneBranch sets a branch's permissions from a pre-existing branch.
// The clone is copied from the master branch token. When emailLog is
// false the server does not mail a copy of the log.
func (p *PackageDB) CloneBranch(ctx context.Context, pkg, branch, master string, emailLog bool) (pkgdb.Payload, error) {
	params := url.Values{}
	params.Set("email_log", strconv.FormatBool(emailLog))
	data, err := p.bc.Send(ctx, pkgdb.Request{
		Path:   fmt.Sprintf("/packages/dispatcher/clone_branch/%s/%s/%s", pkg, branch, master),
		Params: params,
		Auth:   true,
	})
	if err != nil {
		return nil, err
	}
	return pkgdb.DecodeResponse(data)
}

// MassBranch branches all unblocked packages for a new release. Mass
// branching always works against the devel branch. On partial failure
// the returned ErrServer carries the packages left unbranched in its
// Extras field so the caller can retry just those.
func (p *PackageDB) MassBranch(ctx context.Context, branch string) (pkgdb.Payload, error) {
	data, err := p.bc.Send(ctx, pkgdb.Request{
		Path: fmt.Sprintf("/collections/mass_branch/%s", branch),
		Auth: true,
	})
	if err != nil {
		return nil, err
	}
	return pkgdb.DecodeResponse(data)
}

// PackageEdits carries the optional fields AddEditPackage applies. Zero
// values are left untouched on the server.
type PackageEdits struct {
	// Owner makes this person the owner of the package's branches. It is
	// required when the package has to be created first.
	Owner string
	// Description is stored as the package summary.
	Description string
	// Branches is the list of branch tokens to operate on. The caller's
	// slice is never modified.
	Branches []string
	// CCList are usernames to watch the package.
	CCList []string
	// Comaintainers are usernames to comaintain the package.
	Comaintainers []string
	// Groups are group names that can commit to the package.
	Groups []string
}

// AddEditPackage adds pkg to the database if it does not exist yet, then
// applies the given edits. Creating a package requires at least an owner;
// without one a missing package fails locally with ErrPackageCreate. A
// freshly created package always gets a devel branch.
//
// This combined behavior is transitional. It will be split into separate
// operations for adding a package, adding a branch, editing a package and
// editing a branch; createPackage and editPackage are kept apart to ease
// that split.
func (p *PackageDB) AddEditPackage(ctx context.Context, pkg string, edits PackageEdits) error {
	if _, err := p.PackageInfo(ctx, pkg, ""); err != nil {
		var srvErr pkgdb.ErrServer
		if !errors.As(err, &srvErr) {
			// Transport and branch errors are not "package missing".
			return err
		}
		if edits.Owner == "" {
			return pkgdb.ErrPackageCreate{Pkg: pkg}
		}
		branches := slices.Clone(edits.Branches)
		if !slices.Contains(branches, pkgdb.DevelBranch) {
			// New packages automatically get a devel branch.
			branches = append(branches, pkgdb.DevelBranch)
		}
		edits.Branches = branches
		if err := p.createPackage(ctx, pkg, edits.Owner, edits.Description); err != nil {
			return err
		}
		// The creation request already applied these.
		edits.Owner = ""
		edits.Description = ""
	}
	return p.editPackage(ctx, pkg, edits)
}

// createPackage creates the package and an initial branch for Fedora
// devel.
func (p *PackageDB) createPackage(ctx context.Context, pkg, owner, description string) error {
	params := url.Values{}
	params.Set("package", pkg)
	params.Set("owner", owner)
	params.Set("summary", description)
	data, err := p.bc.Send(ctx, pkgdb.Request{
		Path:   "/packages/dispatcher/add_package",
		Params: params,
		Auth:   true,
	})
	if err != nil {
		return err
	}
	if _, err := pkgdb.DecodeResponse(data); err != nil {
		var srvErr pkgdb.ErrServer
		if errors.As(err, &srvErr) {
			return pkgdb.ErrServer{
				Name: srvErr.Name,
				Msg:  fmt.Sprintf("PackageDB returned an error creating %s: %s", pkg, srvErr.Msg),
			}
		}
		return err
	}
	return nil
}

// editPackage changes the branches, owners, or anything else that needs
// changing. The edit request is sent even when no fields remain set.
func (p *PackageDB) editPackage(ctx context.Context, pkg string, edits PackageEdits) error {
	params := url.Values{}
	if edits.Owner != "" {
		params.Set("owner", edits.Owner)
	}
	if edits.Description != "" {
		params.Set("summary", edits.Description)
	}
	if len(edits.CCList) != 0 {
		params.Set("ccList", encodeList(edits.CCList))
	}
	if len(edits.Comaintainers) != 0 {
		params.Set("comaintList", encodeList(edits.Comaintainers))
	}
	if len(edits.Groups) != 0 {
		params.Set("groups", encodeList(edits.Groups))
	}
	if len(edits.Branches) != 0 {
		params["collections"] = edits.Branches
	}
	data, err := p.bc.Send(ctx, pkgdb.Request{
		Path:   fmt.Sprintf("/packages/dispatcher/edit_package/%s", pkg),
		Params: params,
		Auth:   true,
	})
	if err != nil {
		return err
	}
	if _, err := pkgdb.DecodeResponse(data); err != nil {
		var srvErr pkgdb.ErrServer
		if errors.As(err, &srvErr) {
			return pkgdb.ErrServer{
				Name: srvErr.Name,
				Msg:  fmt.Sprintf("unable to save all information for %s: %s", pkg, srvErr.Msg),
			}
		}
		return err
	}
	return nil
}

// Owners retrieves the ownership information for a package, optionally
// limited to a collection ("Fedora", "Fedora EPEL", ...) and, when a
// collection is given, to one of its versions.
func (p *PackageDB) Owners(ctx context.Context, pkg, collection, collectionVer string) (pkgdb.Payload, error) {
	path := fmt.Sprintf("/packages/name/%s", pkg)
	if collection != "" {
		path += "/" + collection
		if collectionVer != "" {
			path += "/" + collectionVer
		}
	}
	data, err := p.bc.Send(ctx, pkgdb.Request{Path: path})
	if err != nil {
		return nil, err
	}
	return pkgdb.DecodeResponse(data)
}

// RemoveUser removes a user from a package. An empty collectnList means
// the user is removed from all collections associated with the package;
// otherwise it holds branch tokens like "F-10" or "devel".
func (p *PackageDB) RemoveUser(ctx context.Context, username, pkg string, collectnList []string) (pkgdb.Payload, error) {
	params := url.Values{}
	params.Set("username", username)
	params.Set("pkg_name", pkg)
	if len(collectnList) != 0 {
		params["collectn_list"] = collectnList
	}
	data, err := p.bc.Send(ctx, pkgdb.Request{
		Path:   "/packages/dispatcher/remove_user",
		Params: params,
		Auth:   true,
	})
	if err != nil {
		return nil, err
	}
	return pkgdb.DecodeResponse(data)
}

// Logout invalidates the current session, when the transport holds one.
func (p *PackageDB) Logout(ctx context.Context) error {
	if lo, ok := p.bc.(interface{ Logout(context.Context) error }); ok {
		return lo.Logout(ctx)
	}
	return nil
}

// encodeList serializes a list-valued edit field the way the dispatcher
// expects it, as a JSON array in a single parameter.
func encodeList(items []string) string {
	data, err := json.Marshal(items)
	if err != nil {
		// A []string cannot fail to marshal.
		panic(err)
	}
	return string(data)
}
