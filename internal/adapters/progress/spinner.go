package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/gonana/gonana-deploy/internal/usecase"
)

// SpinnerProgressReporter shows the deployment stages behind a spinner on stderr
type SpinnerProgressReporter struct {
	spinner *spinner.Spinner
	out     io.Writer
	stages  []stageInfo
}

type stageInfo struct {
	Stage     usecase.DeploymentStage
	StartTime time.Time
	EndTime   time.Time
}

// NewSpinnerProgressReporter creates a new spinner-based progress reporter
func NewSpinnerProgressReporter() *SpinnerProgressReporter {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.HideCursor = false

	return &SpinnerProgressReporter{
		spinner: s,
		out:     os.Stderr,
	}
}

// OnProgress handles progress events
func (r *SpinnerProgressReporter) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if event.Stage == usecase.StageCompleted {
		r.completeCurrentStage()
		r.spinner.Stop()
		return
	}

	if len(r.stages) == 0 || r.stages[len(r.stages)-1].Stage != event.Stage {
		r.completeCurrentStage()
		r.stages = append(r.stages, stageInfo{Stage: event.Stage, StartTime: time.Now()})
	}

	if !event.Spinner {
		r.spinner.Stop()
		return
	}

	r.spinner.Suffix = " " + r.display(event.Message)
	if !r.spinner.Active() {
		r.spinner.Start()
	}
}

// Info prints an info message
func (r *SpinnerProgressReporter) Info(message string) {
	r.pause(func() {
		color.New(color.FgCyan).Fprintln(r.out, message)
	})
}

// Warn prints a warning
func (r *SpinnerProgressReporter) Warn(message string) {
	r.pause(func() {
		color.New(color.FgYellow, color.Bold).Fprintln(r.out, "⚠️  "+message)
	})
}

// pause stops the spinner while fn writes, then restarts it
func (r *SpinnerProgressReporter) pause(fn func()) {
	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}
	fn()
	if wasActive {
		r.spinner.Start()
	}
}

func (r *SpinnerProgressReporter) completeCurrentStage() {
	if len(r.stages) > 0 && r.stages[len(r.stages)-1].EndTime.IsZero() {
		r.stages[len(r.stages)-1].EndTime = time.Now()
	}
}

// display renders "✓ factory (12ms) → ● submit  Deploying GonanaEscrow"
func (r *SpinnerProgressReporter) display(message string) string {
	var display string
	for i, stage := range r.stages {
		icon := "●"
		stageColor := color.New(color.FgYellow)
		duration := ""
		if !stage.EndTime.IsZero() {
			icon = "✓"
			stageColor = color.New(color.FgGreen)
			duration = fmt.Sprintf(" (%s)", stage.EndTime.Sub(stage.StartTime).Round(time.Millisecond))
		}

		if i > 0 {
			display += " → "
		}
		display += fmt.Sprintf("%s %s%s", icon, stageColor.Sprint(string(stage.Stage)), duration)
	}
	if message != "" {
		display += "  " + message
	}
	return display
}

// Ensure SpinnerProgressReporter implements ProgressSink
var _ usecase.ProgressSink = (*SpinnerProgressReporter)(nil)
