package progress

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gonana/gonana-deploy/internal/usecase"
)

// LineSink prints one line per stage change instead of animating a spinner
type LineSink struct {
	out   io.Writer
	stage usecase.DeploymentStage
}

// NewLineSink creates a sink that writes to out
func NewLineSink(out io.Writer) *LineSink {
	return &LineSink{out: out}
}

// OnProgress prints the stage and message when the stage changes
func (s *LineSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if event.Stage == usecase.StageCompleted || event.Stage == s.stage {
		return
	}
	s.stage = event.Stage
	if event.Message == "" {
		return
	}
	fmt.Fprintf(s.out, "%s %s\n", color.New(color.FgYellow).Sprintf("[%s]", event.Stage), event.Message)
}

// Info prints an info message
func (s *LineSink) Info(message string) {
	color.New(color.FgCyan).Fprintln(s.out, message)
}

// Warn prints a warning
func (s *LineSink) Warn(message string) {
	color.New(color.FgYellow, color.Bold).Fprintln(s.out, "⚠️  "+message)
}

var _ usecase.ProgressSink = (*LineSink)(nil)
