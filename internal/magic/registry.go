// Package magic dispatches source cells to named cell directives.
//
// A directive receives the trailing argument line of its marker and the
// full cell body, writes any reports to the provided writer, and yields a
// Result that the host environment displays. Registration is an explicit
// call made during wiring, not a load-time side effect.
package magic

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"sync"
)

// Result is the displayed outcome of a directive invocation.
// When Message is non-empty it is the cell's displayed result (used for
// the checker install hint); otherwise Status carries the exit status.
type Result struct {
	Message string
	Status  int
}

// Display returns what the host environment shows for the cell.
func (r Result) Display() string {
	if r.Message != "" {
		return r.Message
	}
	return strconv.Itoa(r.Status)
}

// Handler processes one cell. line holds the directive's trailing
// argument line, possibly empty; cell holds the full cell body.
type Handler func(ctx context.Context, w io.Writer, line, cell string) (Result, error)

// Registry maps directive names to handlers. Safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register attaches handler to name, replacing any previous handler.
func (r *Registry) Register(name string, h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[name] = h
}

// Lookup returns the handler registered under name.
func (r *Registry) Lookup(name string) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[name]
	return h, ok
}

// Names returns the registered directive names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch invokes the named directive with line and cell, writing any
// reports to w. Returns an error for unknown directive names.
func (r *Registry) Dispatch(ctx context.Context, w io.Writer, name, line, cell string) (Result, error) {
	h, ok := r.Lookup(name)
	if !ok {
		return Result{}, fmt.Errorf("unknown directive %q", name)
	}
	return h(ctx, w, line, cell)
}
