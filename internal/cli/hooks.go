package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/spdxgraph/pkg/observability"
)

// logHooks reports pipeline stage timings at debug level.
type logHooks struct {
	observability.NoopPipelineHooks
	logger *log.Logger
}

// LogHooks returns pipeline hooks that log to logger.
func LogHooks(logger *log.Logger) observability.PipelineHooks {
	return &logHooks{logger: logger}
}

func (h *logHooks) OnStageComplete(_ context.Context, stage string, items int, d time.Duration) {
	h.logger.Debug("stage complete", "stage", stage, "items", items, "duration", d)
}

func (h *logHooks) OnRenderComplete(_ context.Context, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "format", format, "duration", d, "err", err)
		return
	}
	h.logger.Debug("render complete", "format", format, "bytes", size, "duration", d)
}
