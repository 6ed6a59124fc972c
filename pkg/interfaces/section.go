package interfaces

import (
	"context"
	"io"
)

// Renderable is anything that can write its markup to a writer.
type Renderable interface {
	Render(ctx context.Context, w io.Writer) error
}

// SectionProps carries the data handed to a section renderer for one render pass.
type SectionProps struct {
	Section string
	Data    map[string]any
}

// SectionRenderer renders a named storefront section. Default section
// implementations and deployment overrides share this contract.
type SectionRenderer interface {
	RenderSection(ctx context.Context, w io.Writer, props SectionProps) error
}

// SectionRendererFunc adapts a function into a SectionRenderer.
type SectionRendererFunc func(ctx context.Context, w io.Writer, props SectionProps) error

// RenderSection implements SectionRenderer.
func (fn SectionRendererFunc) RenderSection(ctx context.Context, w io.Writer, props SectionProps) error {
	return fn(ctx, w, props)
}

// SectionSanitizer cleans markup produced by override implementations.
type SectionSanitizer interface {
	Sanitize(html string) string
}

// SectionMetrics records section resolution and skeleton rendering activity.
type SectionMetrics interface {
	ObserveResolution(section string, source string)
	IncrementRenderError(section string)
	ObserveSkeleton(placeholders int)
}
