// Package pkg provides the libraries behind spdxgraph.
//
// # Overview
//
// Spdxgraph turns the packages and relationships of an SPDX software bill of
// materials into a compact graph description. Packages with identical
// relationships collapse into one node and every node gets the shortest
// label that still tells it apart from the others.
//
// # Architecture
//
// The data flow through spdxgraph:
//
//	SPDX JSON/YAML document
//	         ↓
//	    [spdx] package (decode packages and relationships)
//	         ↓
//	    [compact] package (merge equivalent packages)
//	         ↓
//	    [label] package (resolve and disambiguate labels, using [purl])
//	         ↓
//	    [layout] package (placement hints)
//	         ↓
//	    [render] packages (Graph::Easy, DOT, JSON, SVG/PNG/PDF)
//
// [pipeline] runs these stages in order and is what the CLI calls.
// [errors] defines the coded errors shared by all packages and
// [observability] reports stage timings.
//
// [spdx]: github.com/matzehuels/spdxgraph/pkg/spdx
// [compact]: github.com/matzehuels/spdxgraph/pkg/compact
// [label]: github.com/matzehuels/spdxgraph/pkg/label
// [purl]: github.com/matzehuels/spdxgraph/pkg/purl
// [layout]: github.com/matzehuels/spdxgraph/pkg/layout
// [render]: github.com/matzehuels/spdxgraph/pkg/render
// [pipeline]: github.com/matzehuels/spdxgraph/pkg/pipeline
// [errors]: github.com/matzehuels/spdxgraph/pkg/errors
// [observability]: github.com/matzehuels/spdxgraph/pkg/observability
package pkg
