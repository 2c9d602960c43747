package pipeline

import (
	"context"
	"io"
	"time"

	"github.com/matzehuels/spdxgraph/pkg/errors"
	"github.com/matzehuels/spdxgraph/pkg/observability"
	"github.com/matzehuels/spdxgraph/pkg/render"
	"github.com/matzehuels/spdxgraph/pkg/render/easy"
	"github.com/matzehuels/spdxgraph/pkg/render/nodelink"
)

// WriteEasy writes the Graph::Easy description. The flow directive is only
// written when hints are enabled.
func (res *Result) WriteEasy(w io.Writer) error {
	return easy.Write(w, res.Placements, easy.Options{Flow: res.opts.Hints})
}

// Graph returns the compacted graph for node-link rendering.
func (res *Result) Graph() nodelink.Graph {
	return nodelink.Graph{Nodes: res.Nodes, Edges: res.Edges}
}

// DOT returns the Graphviz DOT description.
func (res *Result) DOT() string {
	return nodelink.ToDOT(res.Graph(), nodelink.Options{Detailed: res.opts.Detailed})
}

// WriteText writes the result in a text format (see [TextFormats]).
func (res *Result) WriteText(w io.Writer, format string) error {
	if err := ValidateTextFormat(format); err != nil {
		return err
	}
	switch format {
	case FormatDOT:
		_, err := io.WriteString(w, res.DOT())
		return err
	case FormatJSON:
		return nodelink.WriteJSON(w, res.Graph())
	}
	return res.WriteEasy(w)
}

// Render renders the result as an image (see [ImageFormats]).
func (res *Result) Render(ctx context.Context, format string) ([]byte, error) {
	if err := ValidateImageFormat(format); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, format)
	start := time.Now()

	dot := res.DOT()
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatSVG:
		data, err = nodelink.RenderSVG(ctx, dot)
	case FormatPNG:
		data, err = nodelink.RenderPNG(ctx, dot)
	case FormatPDF:
		data, err = nodelink.RenderSVG(ctx, dot)
		if err == nil {
			data, err = render.ToPDF(ctx, data)
		}
	}
	if err != nil {
		err = errors.Wrap(errors.ErrCodeRenderFailed, err, "render %s", format)
		hooks.OnRenderComplete(ctx, format, 0, time.Since(start), err)
		return nil, err
	}
	hooks.OnRenderComplete(ctx, format, len(data), time.Since(start), nil)
	return data, nil
}
