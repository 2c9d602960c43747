// Package nodelink renders compacted SPDX relationship graphs as node-link
// diagrams.
//
// # Usage
//
// Convert a [Graph] to DOT format, then render it:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot)
//
// Every node of the graph is a rendered endpoint: a single package or an
// equivalence class of merged packages. Classes without relationships are
// part of [Graph.Nodes] and appear as standalone boxes. Edges carry the
// relationship type as their label.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process rendering.
// PDF output goes through SVG and [render.ToPDF].
//
// [render.ToPDF]: github.com/matzehuels/spdxgraph/pkg/render.ToPDF
package nodelink
