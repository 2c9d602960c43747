package label

import (
	"strings"

	"github.com/matzehuels/spdxgraph/pkg/purl"
	"github.com/matzehuels/spdxgraph/pkg/spdx"
)

// Detail is the verbosity tier of a label.
type Detail int

const (
	// Brief labels describe a package by purl, file name, or name and version.
	Brief Detail = iota
	// Qualified labels prefix purl and file name labels with the package name.
	Qualified
	// Identifier labels are the SPDX identifier.
	Identifier
)

// MaxDetail is the last escalation level.
const MaxDetail = Identifier

// digestPrefix marks versions that are content digests.
const digestPrefix = "sha256:"

// digestKeep is how many characters of a digest version are shown.
const digestKeep = 12

// String returns the level name.
func (d Detail) String() string {
	switch d {
	case Brief:
		return "brief"
	case Qualified:
		return "qualified"
	case Identifier:
		return "identifier"
	}
	return "unknown"
}

// Resolve returns the label of p at detail level d. Levels above
// [MaxDetail] are treated as [MaxDetail].
func Resolve(p spdx.Package, d Detail) string {
	if d >= Identifier {
		return p.ID
	}
	label, descriptive := describe(p)
	if d == Qualified && descriptive {
		return p.Name + ": " + label
	}
	return label
}

// describe returns the brief label of p and whether it came from a purl or
// the file name.
func describe(p spdx.Package) (string, bool) {
	if locator, ok := purl.Dominant(p.Purls()); ok {
		if u, err := purl.Parse(locator); err == nil {
			return fromPurl(u), true
		}
	}
	if p.HasFileName() {
		return p.FileName, true
	}
	if p.HasVersion() {
		return p.Name + " " + p.Version, false
	}
	return p.Name, false
}

func fromPurl(u purl.PURL) string {
	if dl := u.Qualifier(purl.QualifierDownloadURL); dl != "" {
		return dl
	}

	kind := u.Type
	if arch := u.Qualifier(purl.QualifierArch); arch != "" {
		kind += "." + arch
	} else if u.Type == purl.TypeOCI {
		kind += ".index"
	}

	label := kind + ": " + u.Name
	if v := shortVersion(u.Version); v != "" {
		label += " " + v
	}
	return label
}

// shortVersion collapses digest versions to a fixed prefix and an ellipsis.
func shortVersion(v string) string {
	if !strings.HasPrefix(v, digestPrefix) {
		return v
	}
	if len(v) > digestKeep {
		v = v[:digestKeep]
	}
	return v + "..."
}
