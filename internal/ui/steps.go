package ui

import (
	"fmt"
	"io"
)

// Steps announces the phases of a sequential procedure with a counter
// display. Steps are always driven from a single goroutine.
type Steps struct {
	out   io.Writer
	total int
	n     int
}

// NewSteps creates a step announcer for total steps.
func NewSteps(out io.Writer, total int) *Steps {
	return &Steps{out: out, total: total}
}

// Start announces the next step.
func (s *Steps) Start(label string) {
	s.n++
	_, _ = fmt.Fprintf(s.out, "[%d/%d] %s\n", s.n, s.total, label)
}

// Warnf prints a warning line within the step display.
func (s *Steps) Warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, "Warning: "+format+"\n", args...)
}
