package sections

import (
	"context"
	"fmt"
	"html/template"
	"io"

	"github.com/hellofanny/faststore/pkg/interfaces"
)

var defaultTemplate = template.Must(template.New("section-default").Parse(
	`<section data-fs-section="{{ .Section }}" data-fs-section-default>` +
		`{{ with .Data.title }}<h2 data-fs-section-title>{{ . }}</h2>{{ end }}` +
		`{{ with .Data.content }}<div data-fs-section-content>{{ . }}</div>{{ end }}` +
		`</section>`))

// DefaultRenderer is the markup a section falls back to when no host default
// and no override implementation is available. It escapes every value.
func DefaultRenderer() interfaces.SectionRenderer {
	return interfaces.SectionRendererFunc(func(_ context.Context, w io.Writer, props interfaces.SectionProps) error {
		if err := defaultTemplate.Execute(w, props); err != nil {
			return fmt.Errorf("sections: default render %s: %w", props.Section, err)
		}
		return nil
	})
}
