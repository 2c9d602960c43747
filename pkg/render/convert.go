package render

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// converter is the librsvg command line tool.
const converter = "rsvg-convert"

// ToPDF converts SVG bytes to PDF using rsvg-convert. The conversion is
// killed when ctx is cancelled.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func ToPDF(ctx context.Context, svg []byte) ([]byte, error) {
	if _, err := exec.LookPath(converter); err != nil {
		return nil, fmt.Errorf("pdf export requires librsvg. Install with:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin")
	}

	cmd := exec.CommandContext(ctx, converter, "-f", "pdf")
	cmd.Stdin = bytes.NewReader(svg)

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%s: %v: %s", converter, err, strings.TrimSpace(stderr.String()))
	}
	return out.Bytes(), nil
}
