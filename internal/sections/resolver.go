package sections

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"maps"

	goerrors "github.com/goliatone/go-errors"

	"github.com/hellofanny/faststore/internal/logging"
	"github.com/hellofanny/faststore/pkg/interfaces"
)

// Source records where a resolved renderer came from.
type Source string

const (
	SourceDefault       Source = "default"
	SourceOverride      Source = "override"
	SourceUnimplemented Source = "override_unimplemented"
)

// UnknownSectionLabel is recorded in metrics for names that are not
// recognized sections, so client input never becomes a label value.
const UnknownSectionLabel = "unknown"

// FallbackPolicy decides what happens when a section is overridden without
// an implementation.
type FallbackPolicy string

const (
	// FallbackDefault renders the section's default and flags the resolution
	// as SourceUnimplemented.
	FallbackDefault FallbackPolicy = "default"
	// FallbackStrict fails the resolution with ErrOverrideUnimplemented.
	FallbackStrict FallbackPolicy = "strict"
)

// Resolution is the outcome of looking up a section.
type Resolution struct {
	Section  Name
	Source   Source
	Renderer interfaces.SectionRenderer
}

// OverrideLookup is the read side of Registry the resolver depends on.
type OverrideLookup interface {
	Get(name Name) (Override, bool)
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithDefaults supplies the host's default renderer per section. Sections
// without an entry use DefaultRenderer.
func WithDefaults(defaults map[Name]interfaces.SectionRenderer) ResolverOption {
	return func(r *Resolver) {
		r.defaults = maps.Clone(defaults)
	}
}

// WithFallbackPolicy sets the unimplemented-override policy.
func WithFallbackPolicy(policy FallbackPolicy) ResolverOption {
	return func(r *Resolver) {
		if policy == FallbackStrict || policy == FallbackDefault {
			r.policy = policy
		}
	}
}

// WithSanitizer filters markup produced by override implementations.
func WithSanitizer(sanitizer interfaces.SectionSanitizer) ResolverOption {
	return func(r *Resolver) {
		r.sanitizer = sanitizer
	}
}

// WithResolverMetrics overrides the metrics recorder.
func WithResolverMetrics(metrics interfaces.SectionMetrics) ResolverOption {
	return func(r *Resolver) {
		if metrics != nil {
			r.metrics = metrics
		}
	}
}

// WithResolverLogger overrides the logger.
func WithResolverLogger(logger interfaces.Logger) ResolverOption {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Resolver picks the renderer to mount for a section: the override
// implementation when one is registered, the default otherwise.
type Resolver struct {
	overrides OverrideLookup
	defaults  map[Name]interfaces.SectionRenderer
	fallback  interfaces.SectionRenderer
	policy    FallbackPolicy
	sanitizer interfaces.SectionSanitizer
	metrics   interfaces.SectionMetrics
	logger    interfaces.Logger
}

// NewResolver constructs a resolver over overrides.
func NewResolver(overrides OverrideLookup, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		overrides: overrides,
		fallback:  DefaultRenderer(),
		policy:    FallbackDefault,
		metrics:   NoOpMetrics(),
		logger:    logging.NoOp(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Policy returns the configured fallback policy.
func (r *Resolver) Policy() FallbackPolicy {
	return r.policy
}

// Resolve returns the renderer for the named section. The decision is made
// fresh on every call.
func (r *Resolver) Resolve(raw string) (Resolution, error) {
	name, ok := Lookup(raw)
	if !ok {
		return Resolution{}, sectionError(ErrUnknownSection, goerrors.CategoryNotFound, textCodeRenderNotFound, Name(raw),
			fmt.Sprintf("section %q is not a recognized storefront section", raw))
	}

	res := Resolution{Section: name, Source: SourceDefault, Renderer: r.defaultFor(name)}
	if r.overrides != nil {
		if o, found := r.overrides.Get(name); found {
			switch {
			case o.Implemented():
				res.Source = SourceOverride
				res.Renderer = o.Implementation
			case r.policy == FallbackStrict:
				return Resolution{}, sectionError(ErrOverrideUnimplemented, goerrors.CategoryValidation, textCodeUnimplemented, name,
					fmt.Sprintf("section %q is overridden without an implementation", name))
			default:
				res.Source = SourceUnimplemented
			}
		}
	}

	r.metrics.ObserveResolution(name.String(), string(res.Source))
	return res, nil
}

// Component returns the override for a sub-component of section, if any.
func (r *Resolver) Component(section, component string) (interfaces.SectionRenderer, bool) {
	name, ok := Lookup(section)
	if !ok || r.overrides == nil {
		return nil, false
	}
	o, found := r.overrides.Get(name)
	if !found {
		return nil, false
	}
	renderer, ok := o.Components[component]
	return renderer, ok && renderer != nil
}

// Render resolves section and writes it to w.
func (r *Resolver) Render(ctx context.Context, w io.Writer, section string, data map[string]any) error {
	res, err := r.Resolve(section)
	if err != nil {
		label := UnknownSectionLabel
		if name, ok := Lookup(section); ok {
			label = name.String()
		}
		r.metrics.IncrementRenderError(label)
		return err
	}

	logger := logging.WithSectionContext(r.logger.WithContext(ctx), res.Section.String(), string(res.Source))
	props := interfaces.SectionProps{Section: res.Section.String(), Data: data}

	if res.Source != SourceOverride || r.sanitizer == nil {
		if err := res.Renderer.RenderSection(ctx, w, props); err != nil {
			return r.renderFailed(logger, res, err)
		}
		return nil
	}

	var buf bytes.Buffer
	if err := res.Renderer.RenderSection(ctx, &buf, props); err != nil {
		return r.renderFailed(logger, res, err)
	}
	if _, err := io.WriteString(w, r.sanitizer.Sanitize(buf.String())); err != nil {
		return r.renderFailed(logger, res, err)
	}
	return nil
}

func (r *Resolver) renderFailed(logger interfaces.Logger, res Resolution, err error) error {
	r.metrics.IncrementRenderError(res.Section.String())
	logger.Error("sections.render.failed", "error", err)
	return fmt.Errorf("sections: render %s: %w", res.Section, err)
}

func (r *Resolver) defaultFor(name Name) interfaces.SectionRenderer {
	if renderer, ok := r.defaults[name]; ok && renderer != nil {
		return renderer
	}
	return r.fallback
}
