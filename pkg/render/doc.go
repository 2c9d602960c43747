// Package render provides output writers for compacted SPDX relationship
// graphs.
//
// # Overview
//
//   - Graph::Easy text (in [easy] subpackage), the default relationships output
//   - Node-link diagrams through Graphviz (in [nodelink] subpackage)
//   - Generic format conversion (SVG to PDF)
//
// # Format Conversion
//
// [ToPDF] converts an SVG to PDF using the external rsvg-convert tool (from
// librsvg):
//
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	pdf, err := render.ToPDF(ctx, svg)
//
// [easy]: github.com/matzehuels/spdxgraph/pkg/render/easy
// [nodelink]: github.com/matzehuels/spdxgraph/pkg/render/nodelink
package render
