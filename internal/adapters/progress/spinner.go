package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	"github.com/palisade-org/palisade/internal/usecase"
)

// SpinnerSink renders progress events as an animated terminal spinner.
type SpinnerSink struct {
	spinner *spinner.Spinner
}

// NewSpinnerSink creates a spinner-based progress sink.
func NewSpinnerSink() *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.HideCursor = false
	return &SpinnerSink{spinner: s}
}

// OnProgress handles progress events.
func (r *SpinnerSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if event.Spinner {
		if !r.spinner.Active() {
			r.spinner.Start()
		}
		r.spinner.Suffix = " " + formatEvent(event)
		return
	}
	if r.spinner.Active() {
		r.spinner.Stop()
	}
	fmt.Println(formatEvent(event))
}

// Info prints an info message, pausing the spinner around it.
func (r *SpinnerSink) Info(message string) {
	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}
	color.New(color.FgCyan).Println(message)
	if wasActive {
		r.spinner.Start()
	}
}

// Error prints an error message, pausing the spinner around it.
func (r *SpinnerSink) Error(message string) {
	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}
	color.New(color.FgRed).Println(message)
	if wasActive {
		r.spinner.Start()
	}
}

// Stop halts the spinner. Safe to call when it is not running.
func (r *SpinnerSink) Stop() {
	if r.spinner.Active() {
		r.spinner.Stop()
	}
}

func formatEvent(event usecase.ProgressEvent) string {
	if event.Total > 0 {
		return fmt.Sprintf("[%d/%d] %s: %s", event.Current, event.Total, event.Stage, event.Message)
	}
	if event.Stage != "" {
		return fmt.Sprintf("%s: %s", event.Stage, event.Message)
	}
	return event.Message
}

var _ usecase.ProgressSink = (*SpinnerSink)(nil)
