package pkgdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalBranchName(t *testing.T) {
	// setup testing table (tt) and create subtest for each entry
	for _, tt := range []struct {
		name           string
		desc           string
		branch         string
		wantCollection string
		wantVersion    string
		wantErr        error
	}{
		{
			name:           "devel",
			desc:           "devel resolves without a table lookup",
			branch:         "devel",
			wantCollection: "Fedora",
			wantVersion:    "devel",
		},
		{
			name:           "fedora short",
			desc:           "F maps to Fedora",
			branch:         "F-20",
			wantCollection: "Fedora",
			wantVersion:    "20",
		},
		{
			name:           "fedora core",
			desc:           "FC maps to Fedora",
			branch:         "FC-6",
			wantCollection: "Fedora",
			wantVersion:    "6",
		},
		{
			name:           "epel short",
			desc:           "EL maps to Fedora EPEL",
			branch:         "EL-5",
			wantCollection: "Fedora EPEL",
			wantVersion:    "5",
		},
		{
			name:           "epel long",
			desc:           "EPEL maps to Fedora EPEL",
			branch:         "EPEL-7",
			wantCollection: "Fedora EPEL",
			wantVersion:    "7",
		},
		{
			name:           "olpc",
			desc:           "OLPC maps to Fedora OLPC",
			branch:         "OLPC-3",
			wantCollection: "Fedora OLPC",
			wantVersion:    "3",
		},
		{
			name:           "red hat linux",
			desc:           "RHL maps to Red Hat Linux",
			branch:         "RHL-9",
			wantCollection: "Red Hat Linux",
			wantVersion:    "9",
		},
		{
			name:    "unknown prefix",
			desc:    "The error names the offending prefix",
			branch:  "ZZ-1",
			wantErr: ErrBranchName{},
		},
		{
			name:    "missing separator",
			desc:    "A token without '-' is malformed",
			branch:  "rawhide",
			wantErr: ErrBranchName{},
		},
		{
			name:    "empty token",
			desc:    "The empty string is malformed",
			branch:  "",
			wantErr: ErrBranchName{},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			// this will only be printed if run in verbose mode or if test fails
			t.Logf("Desc: %s", tt.desc)
			collection, version, err := CanonicalBranchName(tt.branch)
			if tt.wantErr == nil {
				assert.NoErrorf(t, err, "expected no error but got %v", err)
				assert.Equal(t, tt.wantCollection, collection)
				assert.Equal(t, tt.wantVersion, version)
				return
			}
			assert.ErrorIsf(t, err, tt.wantErr, "expected %v but got %v", tt.wantErr, err)
			assert.ErrorIs(t, err, ErrClient{}, "branch errors are client errors")
		})
	}
}

func TestCanonicalBranchNameNamesPrefix(t *testing.T) {
	_, _, err := CanonicalBranchName("ZZ-1")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ZZ")
	// The error enumerates every accepted prefix.
	for _, abbrev := range CollectionAbbreviations() {
		assert.Contains(t, err.Error(), abbrev)
	}
}

func TestCollectionAbbreviationsSorted(t *testing.T) {
	assert.Equal(t, []string{"EL", "EPEL", "F", "FC", "OLPC", "RHL"}, CollectionAbbreviations())
}
