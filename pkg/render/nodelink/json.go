package nodelink

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

type jsonGraph struct {
	Nodes []jsonNode `json:"nodes"`
	Edges []jsonEdge `json:"edges"`
}

type jsonNode struct {
	ID      string   `json:"id"`
	Label   string   `json:"label"`
	Members []string `json:"members,omitempty"`
}

type jsonEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
	Type string `json:"type"`
}

// WriteJSON encodes g as JSON and writes it to w. Node identifiers match
// those of [ToDOT]; composite labels are split back into lines.
func WriteJSON(w io.Writer, g Graph) error {
	nodes, ids := collect(g)
	out := jsonGraph{
		Nodes: make([]jsonNode, len(nodes)),
		Edges: make([]jsonEdge, len(g.Edges)),
	}
	for i, n := range nodes {
		out.Nodes[i] = jsonNode{
			ID:      fmt.Sprintf("n%d", i),
			Label:   strings.ReplaceAll(n.Label, `\n`, "\n"),
			Members: n.Members,
		}
	}
	for i, e := range g.Edges {
		out.Edges[i] = jsonEdge{
			From: fmt.Sprintf("n%d", ids[e.Left]),
			To:   fmt.Sprintf("n%d", ids[e.Right]),
			Type: e.Type,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode graph: %w", err)
	}
	return nil
}
