package sections

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	goerrors "github.com/goliatone/go-errors"

	"github.com/hellofanny/faststore/pkg/interfaces"
)

type recordingMetrics struct {
	resolutions []string
	errors      []string
}

func (m *recordingMetrics) ObserveResolution(section, source string) {
	m.resolutions = append(m.resolutions, section+":"+source)
}
func (m *recordingMetrics) IncrementRenderError(section string) { m.errors = append(m.errors, section) }
func (m *recordingMetrics) ObserveSkeleton(int)                 {}

func renderSection(t *testing.T, r *Resolver, section string, data map[string]any) string {
	t.Helper()
	var buf strings.Builder
	if err := r.Render(context.Background(), &buf, section, data); err != nil {
		t.Fatalf("Render(%s) error: %v", section, err)
	}
	return buf.String()
}

func TestResolver_DefaultWhenNotOverridden(t *testing.T) {
	resolver := NewResolver(NewRegistry(), WithDefaults(map[Name]interfaces.SectionRenderer{
		Hero: staticRenderer("<div>default hero</div>"),
	}))

	res, err := resolver.Resolve("Hero")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if res.Source != SourceDefault || res.Section != Hero {
		t.Fatalf("unexpected resolution %#v", res)
	}
	if got := renderSection(t, resolver, "Hero", nil); got != "<div>default hero</div>" {
		t.Fatalf("unexpected default output %q", got)
	}
}

func TestResolver_OverrideWins(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(Override{Section: Navbar, Implementation: staticRenderer("<nav>custom</nav>")}); err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	resolver := NewResolver(registry, WithDefaults(map[Name]interfaces.SectionRenderer{
		Navbar: staticRenderer("<nav>default</nav>"),
	}))

	res, err := resolver.Resolve("Navbar")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if res.Source != SourceOverride {
		t.Fatalf("expected override source, got %s", res.Source)
	}
	if got := renderSection(t, resolver, "Navbar", nil); got != "<nav>custom</nav>" {
		t.Fatalf("unexpected override output %q", got)
	}
}

func TestResolver_UnimplementedOverrideFallsBackToDefault(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(Override{Section: EmptyState}); err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	resolver := NewResolver(registry)

	res, err := resolver.Resolve("EmptyState")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if res.Source != SourceUnimplemented {
		t.Fatalf("expected unimplemented source, got %s", res.Source)
	}

	out := renderSection(t, resolver, "EmptyState", map[string]any{"content": "No products"})
	want := `<section data-fs-section="EmptyState" data-fs-section-default><div data-fs-section-content>No products</div></section>`
	if out != want {
		t.Fatalf("unexpected fallback output\nwant: %s\ngot:  %s", want, out)
	}

	again, _ := resolver.Resolve("EmptyState")
	if again.Source != res.Source {
		t.Fatalf("resolution must be deterministic, got %s then %s", res.Source, again.Source)
	}
}

func TestResolver_StrictPolicyFlagsUnimplemented(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(Override{Section: EmptyState}); err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	resolver := NewResolver(registry, WithFallbackPolicy(FallbackStrict))

	_, err := resolver.Resolve("EmptyState")
	if !errors.Is(err, ErrOverrideUnimplemented) {
		t.Fatalf("expected ErrOverrideUnimplemented, got %v", err)
	}
	if !strings.Contains(err.Error(), "EmptyState") {
		t.Fatalf("expected section name in error, got %v", err)
	}
}

func TestResolver_UnknownSectionIsNotFound(t *testing.T) {
	metrics := &recordingMetrics{}
	resolver := NewResolver(NewRegistry(), WithResolverMetrics(metrics))

	var buf strings.Builder
	err := resolver.Render(context.Background(), &buf, "Checkout", nil)
	if !errors.Is(err, ErrUnknownSection) {
		t.Fatalf("expected ErrUnknownSection, got %v", err)
	}
	if !goerrors.IsNotFound(err) {
		t.Fatalf("expected not_found category, got %v", err)
	}
	if len(metrics.errors) != 1 || metrics.errors[0] != "Checkout" {
		t.Fatalf("expected render error metric, got %v", metrics.errors)
	}
}

func TestResolver_IgnoresUnknownPolicy(t *testing.T) {
	resolver := NewResolver(nil, WithFallbackPolicy("bogus"))
	if resolver.Policy() != FallbackDefault {
		t.Fatalf("expected default policy, got %s", resolver.Policy())
	}
	res, err := resolver.Resolve("Alert")
	if err != nil || res.Source != SourceDefault {
		t.Fatalf("expected default resolution without registry, got %#v %v", res, err)
	}
}

func TestResolver_SanitizesOverrideOutputOnly(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(Override{
		Section:        Hero,
		Implementation: staticRenderer(`<section data-fs-hero class="hero"><script>alert(1)</script><h1>Sale</h1></section>`),
	}); err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	resolver := NewResolver(registry,
		WithSanitizer(NewSanitizer()),
		WithDefaults(map[Name]interfaces.SectionRenderer{
			Alert: staticRenderer(`<div data-fs-alert><script>trusted()</script></div>`),
		}),
	)

	hero := renderSection(t, resolver, "Hero", nil)
	if strings.Contains(hero, "<script") || strings.Contains(hero, "alert(1)") {
		t.Fatalf("expected script to be stripped, got %s", hero)
	}
	if !strings.Contains(hero, "<h1>Sale</h1>") || !strings.Contains(hero, "data-fs-hero") {
		t.Fatalf("expected safe markup to survive, got %s", hero)
	}

	alert := renderSection(t, resolver, "Alert", nil)
	if !strings.Contains(alert, "<script>trusted()</script>") {
		t.Fatalf("default output must not be sanitised, got %s", alert)
	}
}

func TestResolver_RenderErrorIsWrappedAndCounted(t *testing.T) {
	boom := errors.New("boom")
	registry := NewRegistry()
	_ = registry.Register(Override{
		Section: ProductShelf,
		Implementation: interfaces.SectionRendererFunc(func(context.Context, io.Writer, interfaces.SectionProps) error {
			return boom
		}),
	})
	metrics := &recordingMetrics{}
	resolver := NewResolver(registry, WithResolverMetrics(metrics))

	var buf strings.Builder
	err := resolver.Render(context.Background(), &buf, "ProductShelf", nil)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped boom, got %v", err)
	}
	if len(metrics.errors) != 1 || metrics.errors[0] != "ProductShelf" {
		t.Fatalf("expected render error metric, got %v", metrics.errors)
	}
	if len(metrics.resolutions) != 1 || metrics.resolutions[0] != "ProductShelf:override" {
		t.Fatalf("expected override resolution metric, got %v", metrics.resolutions)
	}
}

func TestResolver_RenderErrorLabelsAreBounded(t *testing.T) {
	registry := NewRegistry()
	_ = registry.Register(Override{Section: EmptyState})
	metrics := &recordingMetrics{}
	resolver := NewResolver(registry, WithResolverMetrics(metrics), WithFallbackPolicy(FallbackStrict))

	var buf strings.Builder
	for _, section := range []string{"%ff", "bogus-1", "bogus-2", " EmptyState "} {
		if err := resolver.Render(context.Background(), &buf, section, nil); err == nil {
			t.Fatalf("Render(%q) expected error", section)
		}
	}
	want := []string{UnknownSectionLabel, UnknownSectionLabel, UnknownSectionLabel, "EmptyState"}
	if strings.Join(metrics.errors, ",") != strings.Join(want, ",") {
		t.Fatalf("expected bounded labels %v, got %v", want, metrics.errors)
	}
}

func TestResolver_PassesPropsToRenderer(t *testing.T) {
	var seen interfaces.SectionProps
	registry := NewRegistry()
	_ = registry.Register(Override{
		Section: Newsletter,
		Implementation: interfaces.SectionRendererFunc(func(_ context.Context, _ io.Writer, props interfaces.SectionProps) error {
			seen = props
			return nil
		}),
	})
	resolver := NewResolver(registry)
	_ = renderSection(t, resolver, " Newsletter ", map[string]any{"title": "Join"})

	if seen.Section != "Newsletter" || seen.Data["title"] != "Join" {
		t.Fatalf("unexpected props %#v", seen)
	}
}

func TestResolver_Component(t *testing.T) {
	registry := NewRegistry()
	_ = registry.Register(Override{
		Section:    ProductGallery,
		Components: map[string]interfaces.SectionRenderer{"Sort": staticRenderer("<select></select>")},
	})
	resolver := NewResolver(registry)

	if _, ok := resolver.Component("ProductGallery", "Sort"); !ok {
		t.Fatalf("expected Sort component override")
	}
	if _, ok := resolver.Component("ProductGallery", "FilterDesktop"); ok {
		t.Fatalf("unexpected FilterDesktop override")
	}
	if _, ok := resolver.Component("Hero", "Hero"); ok {
		t.Fatalf("unexpected component for non-overridden section")
	}
	if _, ok := resolver.Component("Nope", "Sort"); ok {
		t.Fatalf("unexpected component for unknown section")
	}
}

func TestDefaultRendererEscapesData(t *testing.T) {
	var buf strings.Builder
	err := DefaultRenderer().RenderSection(context.Background(), &buf, interfaces.SectionProps{
		Section: "Alert",
		Data:    map[string]any{"title": "<b>Hi</b>"},
	})
	if err != nil {
		t.Fatalf("RenderSection() error: %v", err)
	}
	if strings.Contains(buf.String(), "<b>") {
		t.Fatalf("expected escaped title, got %s", buf.String())
	}
}
