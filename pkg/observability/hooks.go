// Package observability provides hooks for timing and tracing the pipeline.
//
// The pipeline reports each stage to the registered [PipelineHooks]. The
// default implementation does nothing, so library users pay nothing unless
// they register hooks, typically once in main:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    // ... run application
//	}
//
// Embed [NoopPipelineHooks] to implement only the events of interest.
package observability

import (
	"context"
	"sync"
	"time"
)

// Stage names reported to [PipelineHooks.OnStageComplete].
const (
	StageCompact = "compact"
	StageLabel   = "label"
	StageLayout  = "layout"
)

// PipelineHooks receives events from the pipeline.
type PipelineHooks interface {
	// OnStageComplete reports a finished in-memory stage and the number of
	// items it produced.
	OnStageComplete(ctx context.Context, stage string, items int, duration time.Duration)

	// Render events
	OnRenderStart(ctx context.Context, format string)
	OnRenderComplete(ctx context.Context, format string, size int, duration time.Duration, err error)
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnStageComplete(context.Context, string, int, time.Duration)         {}
func (NoopPipelineHooks) OnRenderStart(context.Context, string)                               {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, string, int, time.Duration, error) {}

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks. A nil h is ignored.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Reset restores the no-op hooks.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
}
