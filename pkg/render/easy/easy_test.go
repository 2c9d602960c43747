package easy

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/spdxgraph/pkg/layout"
)

func TestLine(t *testing.T) {
	tests := []struct {
		name string
		in   layout.Placement
		want string
	}{
		{
			name: "plain",
			in:   layout.Placement{Edge: layout.Edge{Left: "npm: foo 1.0.0", Type: "DEPENDS_ON", Right: "bar 2.0"}},
			want: "[ npm: foo 1.0.0 ] -- DEPENDS_ON --> [ bar 2.0 ]",
		},
		{
			name: "right hint",
			in: layout.Placement{
				Edge:      layout.Edge{Left: "a", Type: "CONTAINS", Right: "b"},
				RightHint: &layout.Hint{Origin: "a", Offset: 2},
			},
			want: "[ a ] -- CONTAINS --> [ b ] { origin: a; offset: 0,2; }",
		},
		{
			name: "both hints",
			in: layout.Placement{
				Edge:      layout.Edge{Left: "c", Type: "T", Right: "d"},
				LeftHint:  &layout.Hint{Origin: "a", Offset: 4},
				RightHint: &layout.Hint{Origin: "a", Offset: 6},
			},
			want: "[ c ] { origin: a; offset: 0,4; } -- T --> [ d ] { origin: a; offset: 0,6; }",
		},
		{
			name: "merged label keeps line breaks",
			in:   layout.Placement{Edge: layout.Edge{Left: `x\ny`, Type: "T", Right: "z"}},
			want: `[ x\ny ] -- T --> [ z ]`,
		},
		{
			name: "special characters escaped",
			in: layout.Placement{
				Edge:      layout.Edge{Left: "a[1]", Type: "T", Right: "b|c"},
				RightHint: &layout.Hint{Origin: "a[1]", Offset: 2},
			},
			want: `[ a\[1\] ] -- T --> [ b\|c ] { origin: a\[1\]; offset: 0,2; }`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Line(tt.in))
		})
	}
}

func TestWrite(t *testing.T) {
	edges := []layout.Edge{
		{Left: "a", Type: "DEPENDS_ON", Right: "b"},
		{Left: "b", Type: "DEPENDS_ON", Right: "c"},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, layout.Assign(edges, layout.DefaultStep), Options{Flow: true}))
	assert.Equal(t, "graph { flow: south; }\n"+
		"[ a ] -- DEPENDS_ON --> [ b ] { origin: a; offset: 0,2; }\n"+
		"[ b ] -- DEPENDS_ON --> [ c ] { origin: a; offset: 0,4; }\n", buf.String())

	buf.Reset()
	require.NoError(t, Write(&buf, layout.Plain(edges), Options{}))
	assert.Equal(t, "[ a ] -- DEPENDS_ON --> [ b ]\n[ b ] -- DEPENDS_ON --> [ c ]\n", buf.String())
}

func TestWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil, Options{Flow: true}))
	assert.Equal(t, FlowDirective+"\n", buf.String())
}
