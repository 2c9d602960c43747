package label

import (
	"github.com/matzehuels/spdxgraph/pkg/spdx"
)

// Labels maps package identifiers to labels.
type Labels map[string]string

// Get returns the label of id, or id itself when it has none.
func (l Labels) Get(id string) string {
	if s, ok := l[id]; ok {
		return s
	}
	return id
}

// Result is the outcome of [Disambiguate].
type Result struct {
	Labels Labels

	// Rounds is the number of labelling rounds run, between 1 and 3.
	Rounds int

	// Detail is the highest detail level any package was labelled at.
	Detail Detail

	// Ambiguous lists, in input order, identifiers whose label is still
	// shared after the last round.
	Ambiguous []string
}

// Option configures [Disambiguate].
type Option func(*options)

type options struct {
	group func(id string) string
}

// WithGroups declares packages that render together. Two packages with the
// same group key may share a label without counting as a collision.
func WithGroups(group func(id string) string) Option {
	return func(o *options) { o.group = group }
}

// Disambiguate labels every package of pkgs. All packages start at [Brief];
// each further round relabels only the colliding packages one level higher,
// up to [MaxDetail]. It runs at most three rounds.
func Disambiguate(pkgs []spdx.Package, opts ...Option) Result {
	o := options{group: func(id string) string { return id }}
	for _, opt := range opts {
		opt(&o)
	}

	unique := uniquePackages(pkgs)
	labels := make(Labels, len(unique))
	for _, p := range unique {
		labels[p.ID] = Resolve(p, Brief)
	}

	byID := make(map[string]spdx.Package, len(unique))
	for _, p := range unique {
		byID[p.ID] = p
	}

	res := Result{Labels: labels, Rounds: 1, Detail: Brief}
	for {
		colliding := collisions(unique, labels, o.group)
		if len(colliding) == 0 {
			return res
		}
		if res.Detail == MaxDetail {
			res.Ambiguous = colliding
			return res
		}
		res.Detail++
		res.Rounds++
		for _, id := range colliding {
			labels[id] = Resolve(byID[id], res.Detail)
		}
	}
}

// collisions returns, in input order, the identifiers whose label is shared
// with a package of another group.
func collisions(pkgs []spdx.Package, labels Labels, group func(string) string) []string {
	groups := make(map[string]map[string]struct{})
	for _, p := range pkgs {
		l := labels[p.ID]
		if groups[l] == nil {
			groups[l] = make(map[string]struct{})
		}
		groups[l][group(p.ID)] = struct{}{}
	}

	var out []string
	for _, p := range pkgs {
		if len(groups[labels[p.ID]]) > 1 {
			out = append(out, p.ID)
		}
	}
	return out
}

// uniquePackages drops repeated identifiers, keeping the first package.
func uniquePackages(pkgs []spdx.Package) []spdx.Package {
	seen := make(map[string]struct{}, len(pkgs))
	out := make([]spdx.Package, 0, len(pkgs))
	for _, p := range pkgs {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}
	return out
}
