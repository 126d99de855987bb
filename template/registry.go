package template

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// HandlerFunc applies a matched directive to one cell. row and col are
// 0-based; value is the raw cell text.
type HandlerFunc func(f *excelize.File, sheet string, row, col int, value string) error

// Registry maps cell text patterns to handlers. A cell is handled by the
// first pattern it contains, in registration order.
type Registry struct {
	patterns []string
	handlers map[string]HandlerFunc
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{handlers: make(map[string]HandlerFunc)}
}

// Register binds handler to pattern (e.g. "{{merge "). Registering a pattern
// again replaces its handler but keeps its original position.
func (r *Registry) Register(pattern string, handler HandlerFunc) {
	if _, ok := r.handlers[pattern]; !ok {
		r.patterns = append(r.patterns, pattern)
	}
	r.handlers[pattern] = handler
}

// Patterns returns the registered patterns in matching order.
func (r *Registry) Patterns() []string {
	return append([]string(nil), r.patterns...)
}

// Match returns the first registered pattern value contains and its
// handler, or "" and nil.
func (r *Registry) Match(value string) (string, HandlerFunc) {
	for _, p := range r.patterns {
		if strings.Contains(value, p) {
			return p, r.handlers[p]
		}
	}
	return "", nil
}

// Process runs the handler matching value, if any, and returns the pattern
// that selected it.
func (r *Registry) Process(f *excelize.File, sheet string, row, col int, value string) (string, error) {
	pattern, h := r.Match(value)
	if h == nil {
		return "", nil
	}
	if err := h(f, sheet, row, col, value); err != nil {
		return "", err
	}
	return pattern, nil
}
