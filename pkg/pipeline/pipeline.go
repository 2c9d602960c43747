// Package pipeline turns SPDX documents into compact graph descriptions.
//
// This package implements the straight-line transformation used by every
// spdxgraph command:
//
//  1. Compact: merge packages with identical relationship signatures
//  2. Label: derive a label per package and escalate detail on collisions
//  3. Edges: substitute labels into the compacted relationships
//  4. Layout: optionally attach placement hints
//  5. Output: Graph::Easy text, DOT, JSON, or a rendered image
//
// The "packages" mode only runs step 2.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	res := runner.Relationships(ctx, doc, pipeline.DefaultOptions())
//	if err := res.WriteEasy(os.Stdout); err != nil {
//	    log.Fatal(err)
//	}
//
// Nothing is cached or persisted between runs; the same document and
// options always produce the same output.
package pipeline

import (
	"time"

	"github.com/matzehuels/spdxgraph/pkg/compact"
	"github.com/matzehuels/spdxgraph/pkg/errors"
	"github.com/matzehuels/spdxgraph/pkg/label"
	"github.com/matzehuels/spdxgraph/pkg/layout"
	"github.com/matzehuels/spdxgraph/pkg/render/nodelink"
)

// =============================================================================
// Formats
// =============================================================================

// Text formats of the relationships command.
const (
	FormatEasy = "easy"
	FormatDOT  = "dot"
	FormatJSON = "json"
)

// Image formats of the render command.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
	FormatPDF = "pdf"
)

// TextFormats lists the supported relationships output formats.
var TextFormats = []string{FormatEasy, FormatDOT, FormatJSON}

// ImageFormats lists the supported render output formats.
var ImageFormats = []string{FormatSVG, FormatPNG, FormatPDF}

// ValidateTextFormat checks that format is a relationships output format.
func ValidateTextFormat(format string) error {
	return errors.ValidateChoice("output format", format, TextFormats)
}

// ValidateImageFormat checks that format is a render output format.
func ValidateImageFormat(format string) error {
	return errors.ValidateChoice("render format", format, ImageFormats)
}

// =============================================================================
// Options
// =============================================================================

// Options configures a pipeline run.
type Options struct {
	// Hints attaches layout hints and the flow directive to Graph::Easy output.
	Hints bool

	// HintStep is the offset increment between hinted nodes.
	HintStep int

	// MaxMembers is how many identifiers a merged class key lists.
	MaxMembers int

	// Detailed adds package counts to merged nodes in DOT output.
	Detailed bool
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Hints:      true,
		HintStep:   layout.DefaultStep,
		MaxMembers: compact.DefaultMaxMembers,
	}
}

// =============================================================================
// Results
// =============================================================================

// Result is the outcome of [Runner.Relationships].
type Result struct {
	// Compaction holds the equivalence classes and compacted relationships.
	Compaction *compact.Result

	// Labels holds the disambiguated package labels.
	Labels label.Result

	// Edges are the compacted relationships with labels substituted.
	Edges []layout.Edge

	// Placements are Edges with layout hints, or without when hints are off.
	Placements []layout.Placement

	// Nodes lists every rendered node, one per equivalence class.
	Nodes []nodelink.Node

	Stats Stats

	opts Options
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Packages      int
	Relationships int
	Unknown       int // relationships referencing unknown packages
	Redundant     int // relationships removed by merging
	Edges         int
	Classes       int
	Merged        int // classes with more than one member
	Rounds        int // disambiguation rounds
	Detail        label.Detail
	Ambiguous     int // packages whose label stayed ambiguous
	Duration      time.Duration
}
