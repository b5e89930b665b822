// Package diag reports faults that escape the normal error paths: panics
// while rendering and failures of background work nobody waits on.
package diag

import (
	"fmt"
	"log/slog"
	"sync"
)

// Reporter receives uncaught faults. Hosts inject one at startup.
type Reporter interface {
	// Fault reports a rendering fault with a location trace.
	Fault(err error, location string)
	// Rejection reports a failed background operation.
	Rejection(reason any)
}

// LogReporter writes faults to a structured logger.
type LogReporter struct {
	logger *slog.Logger
}

// NewLogReporter returns a Reporter logging to logger, or to slog.Default
// when logger is nil.
func NewLogReporter(logger *slog.Logger) *LogReporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogReporter{logger: logger}
}

// Fault implements Reporter.
func (r *LogReporter) Fault(err error, location string) {
	r.logger.Error("[TipSplit Error]",
		"error", err,
		"location", location,
	)
}

// Rejection implements Reporter.
func (r *LogReporter) Rejection(reason any) {
	r.logger.Error("[TipSplit Unhandled Rejection]",
		"reason", fmt.Sprint(reason),
	)
}

// Recorder is a Reporter that keeps everything it is given. It is meant for
// tests and is safe for concurrent use.
type Recorder struct {
	mu         sync.Mutex
	Faults     []error
	Locations  []string
	Rejections []any
}

// Fault implements Reporter.
func (r *Recorder) Fault(err error, location string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Faults = append(r.Faults, err)
	r.Locations = append(r.Locations, location)
}

// Rejection implements Reporter.
func (r *Recorder) Rejection(reason any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Rejections = append(r.Rejections, reason)
}

// FaultCount returns the number of faults recorded so far.
func (r *Recorder) FaultCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Faults)
}

// RejectionCount returns the number of rejections recorded so far.
func (r *Recorder) RejectionCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Rejections)
}
