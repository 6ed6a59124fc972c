package themes

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/hellofanny/faststore/internal/runtimeconfig"
	"github.com/hellofanny/faststore/internal/sections"
	"github.com/hellofanny/faststore/pkg/interfaces"
)

// TemplateSource resolves template keys to template paths. *gotheme.Selection
// satisfies it.
type TemplateSource interface {
	Template(key string, fallback string) string
}

// TemplateKey is the theme template key that overrides a section.
func TemplateKey(name sections.Name) string {
	return "sections." + name.String()
}

// ComponentTemplateKey is the theme template key that overrides one
// component of a section.
func ComponentTemplateKey(name sections.Name, component string) string {
	return TemplateKey(name) + "." + component
}

// TemplateRenderer renders a section from a parsed html/template file.
type TemplateRenderer struct {
	name string
	tpl  *template.Template
}

// ParseTemplate reads path from fsys and compiles it.
func ParseTemplate(fsys fs.FS, name string) (*TemplateRenderer, error) {
	cleaned := path.Clean(strings.TrimPrefix(strings.TrimSpace(name), "/"))
	raw, err := fs.ReadFile(fsys, cleaned)
	if err != nil {
		return nil, fmt.Errorf("themes: read template %s: %w", cleaned, err)
	}
	tpl, err := template.New(cleaned).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("themes: parse template %s: %w", cleaned, err)
	}
	return &TemplateRenderer{name: cleaned, tpl: tpl}, nil
}

// Name returns the template path the renderer was parsed from.
func (r *TemplateRenderer) Name() string {
	return r.name
}

// RenderSection implements interfaces.SectionRenderer.
func (r *TemplateRenderer) RenderSection(_ context.Context, w io.Writer, props interfaces.SectionProps) error {
	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, props); err != nil {
		return fmt.Errorf("themes: render %s with %s: %w", props.Section, r.name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// SectionOverrides turns the section template entries exposed by source into
// override declarations. Sections the theme does not template are skipped.
func SectionOverrides(fsys fs.FS, source TemplateSource) ([]sections.Override, error) {
	if source == nil {
		return nil, nil
	}

	var out []sections.Override
	for _, name := range sections.Recognized() {
		override := sections.Override{Section: name}

		if file := strings.TrimSpace(source.Template(TemplateKey(name), "")); file != "" {
			renderer, err := ParseTemplate(fsys, file)
			if err != nil {
				return nil, err
			}
			override.Implementation = renderer
		}

		for _, component := range sections.Components(name) {
			file := strings.TrimSpace(source.Template(ComponentTemplateKey(name, component), ""))
			if file == "" {
				continue
			}
			renderer, err := ParseTemplate(fsys, file)
			if err != nil {
				return nil, err
			}
			if override.Components == nil {
				override.Components = map[string]interfaces.SectionRenderer{}
			}
			override.Components[component] = renderer
		}

		if override.Implementation != nil || len(override.Components) > 0 {
			out = append(out, override)
		}
	}
	return out, nil
}

// ConfigOverrides builds override declarations from config entries. Template
// paths are read from fsys. Section names are validated at registration.
func ConfigOverrides(fsys fs.FS, entries []runtimeconfig.SectionOverrideConfig) ([]sections.Override, error) {
	out := make([]sections.Override, 0, len(entries))
	for _, entry := range entries {
		renderer, err := ParseTemplate(fsys, entry.Template)
		if err != nil {
			return nil, err
		}
		out = append(out, sections.Override{
			Section:        sections.Name(strings.TrimSpace(entry.Section)),
			Implementation: renderer,
		})
	}
	return out, nil
}
