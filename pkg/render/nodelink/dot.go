package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/spdxgraph/pkg/layout"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds the number of merged packages below the label of
	// merged nodes.
	Detailed bool
}

// Node is a rendered graph node. Members lists the package identifiers
// behind the node; more than one means an equivalence class.
type Node struct {
	Label   string
	Members []string
}

// Graph is a compacted relationship graph ready for rendering.
type Graph struct {
	Nodes []Node
	Edges []layout.Edge
}

// ToDOT converts a compacted graph to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG] or [RenderPNG].
//
// Nodes standing for several packages are drawn with a double outline.
// Labels keep their `\n` line breaks, which DOT renders as centered lines.
func ToDOT(g Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [fontsize=10, fontcolor=\"#555555\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	nodes, ids := collect(g)
	for i, n := range nodes {
		fmt.Fprintf(&buf, "  n%d [%s];\n", i, strings.Join(fmtAttrs(n, opts.Detailed), ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges {
		fmt.Fprintf(&buf, "  n%d -> n%d [label=%s];\n", ids[e.Left], ids[e.Right], quote(e.Type))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// collect lists the distinct nodes of g, graph nodes first and then edge
// endpoints, and maps each label to its position.
func collect(g Graph) ([]Node, map[string]int) {
	var nodes []Node
	ids := make(map[string]int, len(g.Nodes))
	add := func(n Node) {
		if _, ok := ids[n.Label]; ok {
			return
		}
		ids[n.Label] = len(nodes)
		nodes = append(nodes, n)
	}
	for _, n := range g.Nodes {
		add(n)
	}
	for _, e := range g.Edges {
		add(Node{Label: e.Left})
		add(Node{Label: e.Right})
	}
	return nodes, ids
}

func fmtAttrs(n Node, detailed bool) []string {
	label := n.Label
	if detailed && len(n.Members) > 1 {
		label += fmt.Sprintf(`\n(%d packages)`, len(n.Members))
	}
	attrs := []string{"label=" + quote(label)}
	if len(n.Members) > 1 {
		attrs = append(attrs, "peripheries=2")
	}
	return attrs
}

// quote wraps s in double quotes for DOT. Backslash escapes such as `\n`
// are kept so DOT interprets them.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	out, err := render(ctx, dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(out), nil
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
