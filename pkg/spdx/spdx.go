package spdx

import "slices"

const (
	// NoAssertion is the SPDX sentinel for "no information available".
	NoAssertion = "NOASSERTION"

	// RefTypePurl is the externalRefs referenceType of package URLs.
	RefTypePurl = "purl"
)

// ExternalRef is an external reference of a package.
type ExternalRef struct {
	Category string `json:"referenceCategory,omitempty" yaml:"referenceCategory,omitempty"`
	Type     string `json:"referenceType" yaml:"referenceType"`
	Locator  string `json:"referenceLocator" yaml:"referenceLocator"`
}

// Package is an SPDX package record. Packages are immutable once loaded.
type Package struct {
	ID           string        `json:"SPDXID" yaml:"SPDXID"`
	Name         string        `json:"name" yaml:"name"`
	Version      string        `json:"versionInfo,omitempty" yaml:"versionInfo,omitempty"`
	FileName     string        `json:"packageFileName,omitempty" yaml:"packageFileName,omitempty"`
	ExternalRefs []ExternalRef `json:"externalRefs,omitempty" yaml:"externalRefs,omitempty"`
}

// Purls returns the locators of all package URL references in input order.
func (p Package) Purls() []string {
	var out []string
	for _, ref := range p.ExternalRefs {
		if ref.Type == RefTypePurl {
			out = append(out, ref.Locator)
		}
	}
	return out
}

// HasVersion reports whether the package carries a version other than NOASSERTION.
func (p Package) HasVersion() bool {
	return p.Version != "" && p.Version != NoAssertion
}

// HasFileName reports whether the package carries a file name other than NOASSERTION.
func (p Package) HasFileName() bool {
	return p.FileName != "" && p.FileName != NoAssertion
}

// Relationship is a subject/predicate/object triple between two SPDX elements.
type Relationship struct {
	Subject string `json:"spdxElementId" yaml:"spdxElementId"`
	Type    string `json:"relationshipType" yaml:"relationshipType"`
	Object  string `json:"relatedSpdxElement" yaml:"relatedSpdxElement"`
}

// Document is the subset of an SPDX document that spdxgraph consumes.
type Document struct {
	Name          string         `json:"name,omitempty" yaml:"name,omitempty"`
	Packages      []Package      `json:"packages" yaml:"packages"`
	Relationships []Relationship `json:"relationships" yaml:"relationships"`
}

// IDs returns the package identifiers in input order.
func (d *Document) IDs() []string {
	ids := make([]string, len(d.Packages))
	for i, p := range d.Packages {
		ids[i] = p.ID
	}
	return ids
}

// Index returns the packages keyed by identifier. When an identifier is
// repeated the first package wins.
func (d *Document) Index() map[string]Package {
	idx := make(map[string]Package, len(d.Packages))
	for _, p := range d.Packages {
		if _, ok := idx[p.ID]; !ok {
			idx[p.ID] = p
		}
	}
	return idx
}

// KnownRelationships returns the relationships whose subject and object are
// both packages of d, in input order. The second return value is the number
// of relationships dropped.
func (d *Document) KnownRelationships() ([]Relationship, int) {
	idx := d.Index()
	known := slices.DeleteFunc(slices.Clone(d.Relationships), func(r Relationship) bool {
		_, subj := idx[r.Subject]
		_, obj := idx[r.Object]
		return !subj || !obj
	})
	return known, len(d.Relationships) - len(known)
}
