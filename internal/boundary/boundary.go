// Package boundary contains rendering faults. A Boundary wraps a whole view
// tree; when any part of it panics the fault is reported once and a static
// recovery view replaces the tree until the host reloads.
package boundary

import (
	"fmt"
	"runtime/debug"

	"github.com/mmynk/tipsplit/internal/diag"
)

// PanicError wraps a value recovered from a panic.
type PanicError struct {
	Value any
	Stack string
}

func (e *PanicError) Error() string {
	if err, ok := e.Value.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(e.Value)
}

// Unwrap returns the panic value when it is an error.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// Boundary is a single-shot latch around a render function.
// It is not safe for concurrent use.
type Boundary struct {
	reporter diag.Reporter
	fallback func() string
	err      *PanicError
}

// New returns an untripped Boundary. fallback renders the recovery view.
func New(reporter diag.Reporter, fallback func() string) *Boundary {
	return &Boundary{reporter: reporter, fallback: fallback}
}

// Render returns render's output. If render panics, or the boundary has
// already tripped, it returns the recovery view instead.
func (b *Boundary) Render(render func() string) (out string) {
	if b.err != nil {
		return b.fallback()
	}
	defer func() {
		if v := recover(); v != nil {
			b.err = &PanicError{Value: v, Stack: string(debug.Stack())}
			b.reporter.Fault(b.err, b.err.Stack)
			out = b.fallback()
		}
	}()
	return render()
}

// Tripped reports whether a fault has been caught.
func (b *Boundary) Tripped() bool {
	return b.err != nil
}

// Err returns the caught fault, or nil.
func (b *Boundary) Err() error {
	if b.err == nil {
		return nil
	}
	return b.err
}

// Guard runs fn and converts a panic into a *PanicError. It is used for
// work whose failure must be reported without touching the view.
func Guard(fn func() error) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = &PanicError{Value: v, Stack: string(debug.Stack())}
		}
	}()
	return fn()
}
