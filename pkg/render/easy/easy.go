// Package easy writes compacted relationship graphs in the Graph::Easy text
// format:
//
//	graph { flow: south; }
//	[ npm: foo 1.0.0 ] -- DEPENDS_ON --> [ bar 2.0 ] { origin: npm: foo 1.0.0; offset: 0,2; }
//
// The flow directive is only written together with layout hints.
package easy

import (
	"bufio"
	"io"
	"strings"

	"github.com/matzehuels/spdxgraph/pkg/layout"
)

// FlowDirective declares top-to-bottom flow.
const FlowDirective = "graph { flow: south; }"

// Options configures [Write].
type Options struct {
	// Flow writes [FlowDirective] before the edges.
	Flow bool
}

var nameEscaper = strings.NewReplacer(
	"[", `\[`,
	"]", `\]`,
	"|", `\|`,
)

// Line formats one placement.
func Line(p layout.Placement) string {
	var b strings.Builder
	writeNode(&b, p.Left, p.LeftHint)
	b.WriteString(" -- ")
	b.WriteString(p.Type)
	b.WriteString(" --> ")
	writeNode(&b, p.Right, p.RightHint)
	return b.String()
}

func writeNode(b *strings.Builder, name string, hint *layout.Hint) {
	b.WriteString("[ ")
	b.WriteString(nameEscaper.Replace(name))
	b.WriteString(" ]")
	if hint != nil {
		b.WriteByte(' ')
		h := *hint
		h.Origin = nameEscaper.Replace(h.Origin)
		b.WriteString(h.String())
	}
}

// Write writes placements to w, one line each.
func Write(w io.Writer, placements []layout.Placement, opts Options) error {
	bw := bufio.NewWriter(w)
	if opts.Flow {
		bw.WriteString(FlowDirective)
		bw.WriteByte('\n')
	}
	for _, p := range placements {
		bw.WriteString(Line(p))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
