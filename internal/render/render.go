package render

import (
	"bytes"
	"context"
	"html/template"
	"io"

	"github.com/hellofanny/faststore/pkg/interfaces"
)

// Renderable mirrors interfaces.Renderable for package-local readability.
type Renderable = interfaces.Renderable

// Func adapts a function into a Renderable.
type Func func(ctx context.Context, w io.Writer) error

// Render implements Renderable.
func (fn Func) Render(ctx context.Context, w io.Writer) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, w)
}

// HTML is trusted markup written verbatim.
type HTML template.HTML

// Render implements Renderable.
func (h HTML) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, string(h))
	return err
}

// Text is plain text, escaped on output.
type Text string

// Render implements Renderable.
func (t Text) Render(_ context.Context, w io.Writer) error {
	template.HTMLEscape(w, []byte(t))
	return nil
}

// Fragment renders its children in order with no wrapping element.
type Fragment []Renderable

// Render implements Renderable.
func (f Fragment) Render(ctx context.Context, w io.Writer) error {
	for _, child := range f {
		if child == nil {
			continue
		}
		if err := child.Render(ctx, w); err != nil {
			return err
		}
	}
	return nil
}

// String renders r into a string. A nil Renderable yields an empty string.
func String(ctx context.Context, r Renderable) (string, error) {
	if r == nil {
		return "", nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	var buf bytes.Buffer
	if err := r.Render(ctx, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
