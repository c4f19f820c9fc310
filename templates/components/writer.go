package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Writer accumulates HTML output and remembers the first write error
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter wraps w
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Raw writes trusted markup as is
func (h *Writer) Raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

// Text writes escaped text content
func (h *Writer) Text(s string) {
	h.Raw(templ.EscapeString(s))
}

// Attr writes ` name="value"` with the value escaped
func (h *Writer) Attr(name, value string) {
	h.Raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// AttrIf writes a boolean attribute when cond holds
func (h *Writer) AttrIf(cond bool, name string) {
	if cond {
		h.Raw(" " + name)
	}
}

// Render writes a child component into the same stream
func (h *Writer) Render(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

// Err returns the first error seen
func (h *Writer) Err() error {
	return h.err
}

// Component turns a writing function into a templ component
func Component(fn func(ctx context.Context, h *Writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := NewWriter(w)
		fn(ctx, h)
		return h.Err()
	})
}
