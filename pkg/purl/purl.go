// Package purl groups and parses package URL locators.
//
// A package may carry several purls that only differ in their qualifiers
// (one per architecture, one per download location, ...). The base identity
// of a locator is the locator with its trailing "?qualifiers" suffix removed;
// [Dominant] picks the most frequent base identity so that labels describe
// what most references agree on.
package purl

import (
	"strings"

	packageurl "github.com/package-url/packageurl-go"
)

// Qualifier keys that influence labels.
const (
	QualifierArch        = "arch"
	QualifierDownloadURL = "download_url"
)

// TypeOCI is the purl type of OCI images.
const TypeOCI = "oci"

// PURL is a decomposed package URL.
type PURL struct {
	Type       string
	Namespace  string
	Name       string
	Version    string
	Qualifiers map[string]string
}

// Qualifier returns the value of the qualifier key, or "" when absent.
func (p PURL) Qualifier(key string) string {
	return p.Qualifiers[key]
}

// Parse decomposes a purl locator.
func Parse(locator string) (PURL, error) {
	u, err := packageurl.FromString(locator)
	if err != nil {
		return PURL{}, err
	}
	return PURL{
		Type:       u.Type,
		Namespace:  u.Namespace,
		Name:       u.Name,
		Version:    u.Version,
		Qualifiers: u.Qualifiers.Map(),
	}, nil
}

// Base returns locator without its trailing "?qualifiers" suffix.
func Base(locator string) string {
	if i := strings.LastIndex(locator, "?"); i >= 0 {
		return locator[:i]
	}
	return locator
}

// Group is a set of locators sharing one base identity, in input order.
type Group struct {
	Base     string
	Locators []string
}

// GroupByBase groups locators by base identity. Groups are returned in the
// order their base was first seen.
func GroupByBase(locators []string) []Group {
	var groups []Group
	index := make(map[string]int)
	for _, loc := range locators {
		base := Base(loc)
		i, ok := index[base]
		if !ok {
			i = len(groups)
			index[base] = i
			groups = append(groups, Group{Base: base})
		}
		groups[i].Locators = append(groups[i].Locators, loc)
	}
	return groups
}

// Dominant returns the first locator of the largest group. Ties go to the
// group seen first. ok is false when locators is empty.
func Dominant(locators []string) (locator string, ok bool) {
	best := -1
	groups := GroupByBase(locators)
	for i, g := range groups {
		if best < 0 || len(g.Locators) > len(groups[best].Locators) {
			best = i
		}
	}
	if best < 0 {
		return "", false
	}
	return groups[best].Locators[0], true
}
