package faststore

import (
	"context"
	"io"
	"net/http"

	"github.com/hellofanny/faststore/internal/di"
	"github.com/hellofanny/faststore/internal/render"
	"github.com/hellofanny/faststore/internal/sections"
	"github.com/hellofanny/faststore/internal/sections/overrides"
	"github.com/hellofanny/faststore/internal/skeletons"
	"github.com/hellofanny/faststore/pkg/interfaces"
)

// SectionName identifies an overridable storefront section.
type SectionName = sections.Name

// SectionOverride declares a replacement for a storefront section.
type SectionOverride = sections.Override

// SectionRenderer is the contract shared by default sections and overrides.
type SectionRenderer = interfaces.SectionRenderer

// SectionRendererFunc adapts a function into a SectionRenderer.
type SectionRendererFunc = interfaces.SectionRendererFunc

// SectionProps is the data handed to a section renderer.
type SectionProps = interfaces.SectionProps

// Resolution reports which renderer serves a section.
type Resolution = sections.Resolution

// GridProps are the loose inputs of the product grid skeleton.
type GridProps = skeletons.GridProps

// GridState selects the loading or loaded branch of the product grid skeleton.
type GridState = skeletons.GridState

// Loading renders placeholders sized to the page.
type Loading = skeletons.Loading

// Loaded renders the real grid content verbatim.
type Loaded = skeletons.Loaded

// Renderable is anything that writes markup.
type Renderable = render.Renderable

// Option customises the module wiring.
type Option = di.Option

var (
	WithLoggerProvider   = di.WithLoggerProvider
	WithManifestLoader   = di.WithManifestLoader
	WithThemeFS          = di.WithThemeFS
	WithTemplateFS       = di.WithTemplateFS
	WithOverrides        = di.WithOverrides
	WithDefaultRenderers = di.WithDefaultRenderers
	WithCardRenderer     = di.WithCardRenderer
)

var (
	ErrSectionNameRequired   = sections.ErrSectionNameRequired
	ErrUnknownSection        = sections.ErrUnknownSection
	ErrUnknownComponent      = sections.ErrUnknownComponent
	ErrDuplicateOverride     = sections.ErrDuplicateOverride
	ErrOverrideUnimplemented = sections.ErrOverrideUnimplemented
)

// Module is the storefront runtime facade.
type Module struct {
	container *di.Container
}

// New builds a storefront module. Configuration problems, including
// conflicting section overrides, are returned here.
func New(cfg Config, opts ...Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// RecognizedSections lists every section that may be overridden.
func RecognizedSections() []SectionName {
	return sections.Recognized()
}

// BuiltInOverrides returns the override declarations shipped with the storefront.
func BuiltInOverrides() []SectionOverride {
	return overrides.Declarations()
}

// ResolveSection reports which renderer serves name.
func (m *Module) ResolveSection(name string) (Resolution, error) {
	return m.container.Resolver().Resolve(name)
}

// RenderSection writes the named section to w.
func (m *Module) RenderSection(ctx context.Context, w io.Writer, name string, data map[string]any) error {
	return m.container.Resolver().Render(ctx, w, name, data)
}

// SectionComponent returns the override for one component of a section.
func (m *Module) SectionComponent(section, component string) (SectionRenderer, bool) {
	return m.container.Resolver().Component(section, component)
}

// RenderProductGrid writes the product grid skeleton for state.
func (m *Module) RenderProductGrid(ctx context.Context, w io.Writer, state GridState) error {
	return m.container.Skeleton().Render(ctx, w, state)
}

// ProductGrid binds props to the skeleton so it can be nested in page output.
func (m *Module) ProductGrid(props GridProps) Renderable {
	return m.container.Skeleton().Renderable(props.State())
}

// ItemsPerPage is the page size shared by the product grid and its skeleton.
func (m *Module) ItemsPerPage() int {
	return m.container.Skeleton().ItemsPerPage()
}

// Handler returns the preview HTTP handler.
func (m *Module) Handler() http.Handler {
	return m.container.Preview().Router()
}
