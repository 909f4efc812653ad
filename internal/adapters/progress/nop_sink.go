package progress

import (
	"context"
	"os"

	"github.com/gonana/gonana-deploy/internal/domain/config"
	"github.com/gonana/gonana-deploy/internal/usecase"
)

// NopSink is a no-op implementation of ProgressSink
type NopSink struct{}

// NewNopSink creates a new no-op progress sink
func NewNopSink() usecase.ProgressSink {
	return &NopSink{}
}

// OnProgress does nothing with progress events
func (n *NopSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {}

// Info does nothing with info messages
func (n *NopSink) Info(message string) {}

// Warn does nothing with warnings
func (n *NopSink) Warn(message string) {}

// NewProgressSink picks the spinner for interactive sessions. Debug output
// would interleave with a spinner, so debug sessions get plain lines instead.
func NewProgressSink(cfg *config.RuntimeConfig) usecase.ProgressSink {
	switch {
	case cfg.NonInteractive:
		return NewNopSink()
	case cfg.Debug:
		return NewLineSink(os.Stderr)
	default:
		return NewSpinnerProgressReporter()
	}
}

// Ensure NopSink implements ProgressSink
var _ usecase.ProgressSink = (*NopSink)(nil)
