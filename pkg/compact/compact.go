package compact

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/spdxgraph/pkg/spdx"
)

// LineBreak separates member identifiers in a class key. It is the
// Graph::Easy line break escape, not a newline character.
const LineBreak = `\n`

// DefaultMaxMembers is how many member identifiers a class key lists before
// summarizing the rest.
const DefaultMaxMembers = 10

// Class is a set of packages with identical relationship signatures.
type Class struct {
	// Members are the package identifiers in document order. The first one
	// is the primary.
	Members []string

	maxMembers int
}

// Primary returns the member that keeps its relationships.
func (c Class) Primary() string { return c.Members[0] }

// Merged reports whether the class has more than one member.
func (c Class) Merged() bool { return len(c.Members) > 1 }

// Display returns the sorted member identifiers, truncated to the maximum
// with a trailing "... (k more)" entry.
func (c Class) Display() []string {
	ids := slices.Sorted(slices.Values(c.Members))
	limit := c.maxMembers
	if limit <= 0 {
		limit = DefaultMaxMembers
	}
	if len(ids) > limit {
		more := len(ids) - limit
		ids = append(ids[:limit], fmt.Sprintf("... (%d more)", more))
	}
	return ids
}

// Key returns the combined identifier the class is referenced by in
// compacted relationships.
func (c Class) Key() string {
	return strings.Join(c.Display(), LineBreak)
}

// Endpoint returns what compacted relationships use to reference the class:
// the class key for merged classes and the package identifier otherwise.
func (c Class) Endpoint() string {
	if c.Merged() {
		return c.Key()
	}
	return c.Primary()
}

// Result is the outcome of [Compact].
type Result struct {
	// Relationships are the surviving relationships in input order, with
	// primaries of merged classes replaced by class keys.
	Relationships []spdx.Relationship

	// Classes partition the package identifiers. They are ordered by their
	// primary's position in the document.
	Classes []Class

	// Unknown counts relationships dropped because they reference an
	// element that is not a package of the document.
	Unknown int

	// Redundant counts relationships dropped because they mention a
	// non-primary class member.
	Redundant int

	byEndpoint map[string]int
	byMember   map[string]int
}

// Lookup returns the class referenced by a compacted relationship endpoint.
func (r *Result) Lookup(endpoint string) (Class, bool) {
	i, ok := r.byEndpoint[endpoint]
	if !ok {
		return Class{}, false
	}
	return r.Classes[i], true
}

// ClassOf returns the class a package belongs to.
func (r *Result) ClassOf(id string) (Class, bool) {
	i, ok := r.byMember[id]
	if !ok {
		return Class{}, false
	}
	return r.Classes[i], true
}

// Merged returns the number of classes with more than one member.
func (r *Result) Merged() int {
	n := 0
	for _, c := range r.Classes {
		if c.Merged() {
			n++
		}
	}
	return n
}

// Option configures [Compact].
type Option func(*options)

type options struct {
	maxMembers int
}

// WithMaxMembers sets how many identifiers a class key lists. Values below
// one select [DefaultMaxMembers].
func WithMaxMembers(n int) Option {
	return func(o *options) { o.maxMembers = n }
}

// Compact groups the packages of doc by relationship signature and rewrites
// the relationship list to reference merged classes.
func Compact(doc *spdx.Document, opts ...Option) *Result {
	o := options{maxMembers: DefaultMaxMembers}
	for _, opt := range opts {
		opt(&o)
	}
	if o.maxMembers <= 0 {
		o.maxMembers = DefaultMaxMembers
	}

	rels, unknown := doc.KnownRelationships()
	res := &Result{
		Unknown:    unknown,
		byEndpoint: make(map[string]int),
		byMember:   make(map[string]int),
	}

	res.Classes = partition(doc.IDs(), rels, o.maxMembers)
	replace := make(map[string]string)
	redundant := make(map[string]struct{})
	for i, c := range res.Classes {
		for _, id := range c.Members {
			res.byMember[id] = i
		}
		res.byEndpoint[c.Endpoint()] = i
		if !c.Merged() {
			continue
		}
		replace[c.Primary()] = c.Key()
		for _, id := range c.Members[1:] {
			redundant[id] = struct{}{}
		}
	}

	for _, r := range rels {
		_, subj := redundant[r.Subject]
		_, obj := redundant[r.Object]
		if subj || obj {
			res.Redundant++
			continue
		}
		if key, ok := replace[r.Subject]; ok {
			r.Subject = key
		}
		if key, ok := replace[r.Object]; ok {
			r.Object = key
		}
		res.Relationships = append(res.Relationships, r)
	}
	return res
}

// partition groups ids by signature. Repeated ids are counted once.
func partition(ids []string, rels []spdx.Relationship, maxMembers int) []Class {
	out := make(map[string]map[string][]string)
	in := make(map[string]map[string][]string)
	for _, r := range rels {
		addEdge(out, r.Subject, r.Type, r.Object)
		addEdge(in, r.Object, r.Type, r.Subject)
	}

	var classes []Class
	index := make(map[string]int)
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		sig := encode(in[id]) + "|" + encode(out[id])
		i, ok := index[sig]
		if !ok {
			i = len(classes)
			index[sig] = i
			classes = append(classes, Class{maxMembers: maxMembers})
		}
		classes[i].Members = append(classes[i].Members, id)
	}
	return classes
}

func addEdge(m map[string]map[string][]string, from, typ, to string) {
	if m[from] == nil {
		m[from] = make(map[string][]string)
	}
	m[from][typ] = append(m[from][typ], to)
}

// encode serializes one side of a signature. Types are sorted and each type's
// neighbours are reduced to a sorted set, so the encoding only depends on
// which typed connections exist.
func encode(byType map[string][]string) string {
	var b strings.Builder
	for _, typ := range slices.Sorted(maps.Keys(byType)) {
		b.WriteString(strconv.Quote(typ))
		b.WriteByte('=')
		neighbours := slices.Compact(slices.Sorted(slices.Values(byType[typ])))
		for i, n := range neighbours {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Quote(n))
		}
		b.WriteByte(';')
	}
	return b.String()
}
