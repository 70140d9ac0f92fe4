package pkgdb

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// DevelBranch is the development branch token. It resolves to the Fedora
// collection without a table lookup.
const DevelBranch = "devel"

// collectionMap maps branch abbreviation prefixes to collection names,
// for instance FC => Fedora.
var collectionMap = map[string]string{
	"F":    "Fedora",
	"FC":   "Fedora",
	"EL":   "Fedora EPEL",
	"EPEL": "Fedora EPEL",
	"OLPC": "Fedora OLPC",
	"RHL":  "Red Hat Linux",
}

// CollectionAbbreviations returns the accepted branch abbreviation
// prefixes in sorted order.
func CollectionAbbreviations() []string {
	abbrevs := maps.Keys(collectionMap)
	slices.Sort(abbrevs)
	return abbrevs
}

// CanonicalBranchName changes a branch abbreviation like "FC-6" into a
// collection name and version pair ("Fedora", "6"). The special token
// "devel" resolves to ("Fedora", "devel"). It never contacts the server
// and returns ErrBranchName for an unknown prefix or a token without a
// "-" separator.
func CanonicalBranchName(branch string) (string, string, error) {
	if branch == DevelBranch {
		return "Fedora", DevelBranch, nil
	}
	abbrev, version, found := strings.Cut(branch, "-")
	if !found {
		return "", "", ErrBranchName{Msg: fmt.Sprintf(
			"branch %q has no version separator, use %s or e.g. %s-10",
			branch, DevelBranch, CollectionAbbreviations()[0])}
	}
	collection, ok := collectionMap[abbrev]
	if !ok {
		return "", "", ErrBranchName{Msg: fmt.Sprintf(
			"collection abbreviation %s is unknown, use %s",
			abbrev, strings.Join(CollectionAbbreviations(), ", "))}
	}
	return collection, version, nil
}
