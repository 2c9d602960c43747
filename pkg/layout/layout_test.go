package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssign(t *testing.T) {
	edges := []Edge{
		{Left: "root", Type: "DEPENDS_ON", Right: "a"},
		{Left: "root", Type: "DEPENDS_ON", Right: "b"},
		{Left: "a", Type: "DEPENDS_ON", Right: "b"},
		{Left: "c", Type: "BUILD_TOOL_OF", Right: "root"},
	}

	got := Assign(edges, DefaultStep)
	require.Len(t, got, 4)

	assert.Nil(t, got[0].LeftHint, "origin is never hinted")
	assert.Equal(t, &Hint{Origin: "root", Offset: 2}, got[0].RightHint)
	assert.Nil(t, got[1].LeftHint)
	assert.Equal(t, &Hint{Origin: "root", Offset: 4}, got[1].RightHint)
	assert.Nil(t, got[2].LeftHint)
	assert.Nil(t, got[2].RightHint)
	assert.Equal(t, &Hint{Origin: "root", Offset: 6}, got[3].LeftHint)
	assert.Nil(t, got[3].RightHint, "origin seen as right endpoint is not hinted")
}

func TestAssignAtMostOneHintPerLabel(t *testing.T) {
	edges := []Edge{
		{Left: "a", Type: "T", Right: "b"},
		{Left: "b", Type: "T", Right: "c"},
		{Left: "c", Type: "T", Right: "a"},
		{Left: "d", Type: "T", Right: "d"},
		{Left: "b", Type: "T", Right: "d"},
	}

	hints := make(map[string]int)
	for _, p := range Assign(edges, 3) {
		if p.LeftHint != nil {
			hints[p.Left]++
		}
		if p.RightHint != nil {
			hints[p.Right]++
		}
	}

	assert.Equal(t, map[string]int{"b": 1, "c": 1, "d": 1}, hints)
}

func TestAssignOffsetsIncrease(t *testing.T) {
	edges := []Edge{
		{Left: "o", Type: "T", Right: "1"},
		{Left: "2", Type: "T", Right: "3"},
	}

	got := Assign(edges, 5)
	assert.Equal(t, 5, got[0].RightHint.Offset)
	assert.Equal(t, 10, got[1].LeftHint.Offset)
	assert.Equal(t, 15, got[1].RightHint.Offset)

	got = Assign(edges, 0)
	assert.Equal(t, DefaultStep, got[0].RightHint.Offset)
}

func TestAssignEmpty(t *testing.T) {
	assert.Empty(t, Assign(nil, DefaultStep))
}

func TestAssignPreservesEdges(t *testing.T) {
	edges := []Edge{
		{Left: "a", Type: "T", Right: "b"},
		{Left: "b", Type: "U", Right: "a"},
	}
	for i, p := range Assign(edges, DefaultStep) {
		assert.Equal(t, edges[i], p.Edge)
	}
}

func TestPlain(t *testing.T) {
	edges := []Edge{{Left: "a", Type: "T", Right: "b"}}
	got := Plain(edges)
	require.Len(t, got, 1)
	assert.Nil(t, got[0].LeftHint)
	assert.Nil(t, got[0].RightHint)
}

func TestHintString(t *testing.T) {
	h := Hint{Origin: `npm: foo 1.0.0`, Offset: 4}
	assert.Equal(t, "{ origin: npm: foo 1.0.0; offset: 0,4; }", h.String())
}
