package pipeline

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/spdxgraph/pkg/compact"
	"github.com/matzehuels/spdxgraph/pkg/label"
	"github.com/matzehuels/spdxgraph/pkg/layout"
	"github.com/matzehuels/spdxgraph/pkg/observability"
	"github.com/matzehuels/spdxgraph/pkg/render/nodelink"
	"github.com/matzehuels/spdxgraph/pkg/spdx"
)

// Runner executes pipeline stages and logs their progress.
//
// The Runner is stateless except for the logger. Multiple goroutines can
// safely use the same Runner with different documents.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, logging is discarded.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{Logger: logger}
}

// Packages labels every package of doc and returns the labels in document
// order. Repeated identifiers produce one line per occurrence.
func (r *Runner) Packages(ctx context.Context, doc *spdx.Document) ([]string, label.Result) {
	start := time.Now()
	res := label.Disambiguate(doc.Packages)
	r.logLabels(res)
	observability.Pipeline().OnStageComplete(ctx, observability.StageLabel, len(res.Labels), time.Since(start))

	lines := make([]string, len(doc.Packages))
	for i, p := range doc.Packages {
		lines[i] = res.Labels.Get(p.ID)
	}
	return lines, res
}

// Relationships runs compaction, labelling and edge formatting on doc.
func (r *Runner) Relationships(ctx context.Context, doc *spdx.Document, opts Options) *Result {
	hooks := observability.Pipeline()
	start := time.Now()

	comp := compact.Compact(doc, compact.WithMaxMembers(opts.MaxMembers))
	hooks.OnStageComplete(ctx, observability.StageCompact, len(comp.Classes), time.Since(start))
	r.Logger.Debug("compacted relationships",
		"classes", len(comp.Classes),
		"merged", comp.Merged(),
		"unknown", comp.Unknown,
		"redundant", comp.Redundant)
	for _, c := range comp.Classes {
		if c.Merged() {
			r.Logger.Debug("merged equivalent packages", "primary", c.Primary(), "members", len(c.Members))
		}
	}

	stage := time.Now()
	labels := label.Disambiguate(doc.Packages, label.WithGroups(func(id string) string {
		if c, ok := comp.ClassOf(id); ok {
			return c.Primary()
		}
		return id
	}))
	r.logLabels(labels)
	hooks.OnStageComplete(ctx, observability.StageLabel, len(labels.Labels), time.Since(stage))

	res := &Result{Compaction: comp, Labels: labels, opts: opts}
	for _, c := range comp.Classes {
		res.Nodes = append(res.Nodes, nodelink.Node{
			Label:   nodeLabel(c.Display(), labels.Labels),
			Members: c.Members,
		})
	}
	for _, rel := range comp.Relationships {
		res.Edges = append(res.Edges, layout.Edge{
			Left:  res.endpointLabel(rel.Subject),
			Type:  rel.Type,
			Right: res.endpointLabel(rel.Object),
		})
	}
	stage = time.Now()
	if opts.Hints {
		res.Placements = layout.Assign(res.Edges, opts.HintStep)
	} else {
		res.Placements = layout.Plain(res.Edges)
	}
	hooks.OnStageComplete(ctx, observability.StageLayout, len(res.Placements), time.Since(stage))

	res.Stats = Stats{
		Packages:      len(doc.Packages),
		Relationships: len(doc.Relationships),
		Unknown:       comp.Unknown,
		Redundant:     comp.Redundant,
		Edges:         len(res.Edges),
		Classes:       len(comp.Classes),
		Merged:        comp.Merged(),
		Rounds:        labels.Rounds,
		Detail:        labels.Detail,
		Ambiguous:     len(labels.Ambiguous),
		Duration:      time.Since(start),
	}
	return res
}

func (r *Runner) logLabels(res label.Result) {
	r.Logger.Debug("resolved labels", "packages", len(res.Labels), "rounds", res.Rounds, "detail", res.Detail)
	if len(res.Ambiguous) > 0 {
		r.Logger.Debug("labels remain ambiguous", "packages", len(res.Ambiguous))
	}
}

// endpointLabel maps a compacted relationship endpoint to its display text.
func (res *Result) endpointLabel(endpoint string) string {
	if c, ok := res.Compaction.Lookup(endpoint); ok {
		return nodeLabel(c.Display(), res.Labels.Labels)
	}
	return res.Labels.Labels.Get(endpoint)
}

// nodeLabel joins the labels of ids. Members sharing a label are shown once.
func nodeLabel(ids []string, labels label.Labels) string {
	seen := make(map[string]struct{}, len(ids))
	lines := make([]string, 0, len(ids))
	for _, id := range ids {
		l := labels.Get(id)
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		lines = append(lines, l)
	}
	return strings.Join(lines, compact.LineBreak)
}
