package di

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/hellofanny/faststore/internal/logging"
	"github.com/hellofanny/faststore/internal/logging/console"
	"github.com/hellofanny/faststore/internal/logging/gologger"
	"github.com/hellofanny/faststore/internal/metrics"
	"github.com/hellofanny/faststore/internal/runtimeconfig"
	"github.com/hellofanny/faststore/internal/sections"
	"github.com/hellofanny/faststore/internal/sections/overrides"
	"github.com/hellofanny/faststore/internal/skeletons"
	"github.com/hellofanny/faststore/internal/themes"
	"github.com/hellofanny/faststore/pkg/interfaces"

	storehttp "github.com/hellofanny/faststore/internal/http"
)

// Container wires the storefront modules from a validated Config.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	manifestLoader themes.ManifestLoader
	themeFS        fs.FS
	templateFS     fs.FS
	declarations   []sections.Override
	defaults       map[sections.Name]interfaces.SectionRenderer
	cardRenderer   skeletons.CardRenderer

	metrics  *metrics.Metrics
	selector *themes.Selector
	registry *sections.Registry
	resolver *sections.Resolver
	skeleton *skeletons.ProductGridSkeleton
	preview  *storehttp.PreviewAPI
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the provider selected from Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithManifestLoader overrides how theme manifests are read.
func WithManifestLoader(loader themes.ManifestLoader) Option {
	return func(c *Container) {
		c.manifestLoader = loader
	}
}

// WithThemeFS sets the filesystem theme templates are read from. It defaults
// to the selected theme directory.
func WithThemeFS(fsys fs.FS) Option {
	return func(c *Container) {
		c.themeFS = fsys
	}
}

// WithTemplateFS sets the filesystem config override templates are read
// from. It defaults to the working directory.
func WithTemplateFS(fsys fs.FS) Option {
	return func(c *Container) {
		c.templateFS = fsys
	}
}

// WithOverrides registers host declarations. A host declaration replaces the
// built-in declaration for the same section.
func WithOverrides(declarations ...sections.Override) Option {
	return func(c *Container) {
		c.declarations = append(c.declarations, declarations...)
	}
}

// WithDefaultRenderers supplies the host's default section renderers.
func WithDefaultRenderers(defaults map[sections.Name]interfaces.SectionRenderer) Option {
	return func(c *Container) {
		c.defaults = defaults
	}
}

// WithCardRenderer swaps the product card placeholder.
func WithCardRenderer(card skeletons.CardRenderer) Option {
	return func(c *Container) {
		c.cardRenderer = card
	}
}

// NewContainer validates cfg and builds every module. Override conflicts
// are reported here so a bad configuration never serves traffic.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if err := c.configureLoggerProvider(); err != nil {
		return nil, err
	}
	c.configureMetrics()
	if err := c.configureSections(); err != nil {
		return nil, err
	}
	c.configureSkeleton()
	c.configurePreview()

	logging.ModuleLogger(c.loggerProvider, "storefront").Info("storefront.configured",
		"sections_overridden", c.registry.Len(),
		"items_per_page", c.skeleton.ItemsPerPage(),
		"fallback_policy", string(c.resolver.Policy()),
		"metrics", c.metrics != nil,
		"themes", c.selector != nil,
	)
	return c, nil
}

func (c *Container) configureLoggerProvider() error {
	if c.loggerProvider != nil || !c.Config.Features.Logger {
		return nil
	}

	switch strings.ToLower(strings.TrimSpace(c.Config.Logging.Provider)) {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     c.Config.Logging.Level,
			Format:    c.Config.Logging.Format,
			AddSource: c.Config.Logging.AddSource,
			Focus:     c.Config.Logging.Focus,
		})
		if err != nil {
			return err
		}
		c.loggerProvider = provider
	default:
		level := console.ParseLevel(c.Config.Logging.Level)
		c.loggerProvider = console.NewProvider(console.Options{MinLevel: &level})
	}
	return nil
}

func (c *Container) configureMetrics() {
	if c.Config.Features.Metrics {
		namespace := strings.TrimSpace(c.Config.Metrics.Namespace)
		if namespace == "" {
			namespace = runtimeconfig.DefaultMetricsNamespace
		}
		c.metrics = metrics.New(namespace)
	}
}

func (c *Container) configureSections() error {
	logger := logging.SectionsLogger(c.loggerProvider)

	declarations := append([]sections.Override(nil), c.declarations...)

	if len(c.Config.Sections.Overrides) > 0 {
		templateFS := c.templateFS
		if templateFS == nil {
			templateFS = os.DirFS(".")
		}
		configured, err := themes.ConfigOverrides(templateFS, c.Config.Sections.Overrides)
		if err != nil {
			return err
		}
		declarations = append(declarations, configured...)
	}

	if c.Config.Features.Themes {
		themed, err := c.themeOverrides()
		if err != nil {
			return err
		}
		declarations = append(declarations, themed...)
	}

	if !c.Config.Sections.DisableBuiltIns {
		declarations = overrides.Compose(declarations...)
	}

	c.registry = sections.NewRegistry()
	if err := sections.RegisterOverrides(c.registry, logger, declarations...); err != nil {
		return fmt.Errorf("storefront: section overrides: %w", err)
	}

	policy := sections.FallbackPolicy(strings.ToLower(strings.TrimSpace(c.Config.Sections.FallbackPolicy)))
	if policy == sections.FallbackStrict {
		if err := sections.RequireImplemented(c.registry); err != nil {
			return fmt.Errorf("storefront: strict section overrides: %w", err)
		}
	}

	opts := []sections.ResolverOption{
		sections.WithDefaults(c.defaults),
		sections.WithFallbackPolicy(policy),
		sections.WithResolverLogger(logger),
	}
	if c.Config.Sections.SanitizeOverrides {
		opts = append(opts, sections.WithSanitizer(sections.NewSanitizer()))
	}
	if c.metrics != nil {
		opts = append(opts, sections.WithResolverMetrics(c.metrics))
	}
	c.resolver = sections.NewResolver(c.registry, opts...)
	return nil
}

func (c *Container) themeOverrides() ([]sections.Override, error) {
	logger := logging.ThemesLogger(c.loggerProvider)
	c.selector = themes.NewSelector(c.Config.Themes, c.manifestLoader, logger)

	selection, err := c.selector.Select(c.Config.Themes.DefaultVariant)
	if err != nil {
		return nil, err
	}

	themeFS := c.themeFS
	if themeFS == nil {
		themeFS = os.DirFS(c.selector.ThemePath())
	}
	themed, err := themes.SectionOverrides(themeFS, selection)
	if err != nil {
		return nil, err
	}
	logging.WithThemeContext(logger, selection.Theme).Info("themes.sections.loaded", "overrides", len(themed))
	return themed, nil
}

func (c *Container) configureSkeleton() {
	opts := []skeletons.GridOption{
		skeletons.WithLogger(logging.SkeletonsLogger(c.loggerProvider)),
	}
	if c.cardRenderer != nil {
		opts = append(opts, skeletons.WithCardRenderer(c.cardRenderer))
	}
	if c.metrics != nil {
		opts = append(opts, skeletons.WithMetrics(c.metrics))
	}
	c.skeleton = skeletons.NewProductGridSkeleton(c.Config.Catalog.ItemsPerPage, opts...)
}

func (c *Container) configurePreview() {
	opts := []storehttp.Option{
		storehttp.WithRegistry(c.registry),
		storehttp.WithResolver(c.resolver),
		storehttp.WithSkeleton(c.skeleton),
		storehttp.WithLogger(logging.HTTPLogger(c.loggerProvider)),
		storehttp.WithDefaultAspectRatio(c.Config.Catalog.CardAspectRatio),
	}
	if c.metrics != nil {
		opts = append(opts, storehttp.WithMetrics(c.metrics))
	}
	c.preview = storehttp.NewPreviewAPI(opts...)
}

// LoggerProvider returns the active provider, nil when logging is off.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

func (c *Container) Registry() *sections.Registry {
	return c.registry
}

func (c *Container) Resolver() *sections.Resolver {
	return c.resolver
}

func (c *Container) Skeleton() *skeletons.ProductGridSkeleton {
	return c.skeleton
}

// Metrics returns the Prometheus recorder, nil when the feature is off.
func (c *Container) Metrics() *metrics.Metrics {
	return c.metrics
}

func (c *Container) Preview() *storehttp.PreviewAPI {
	return c.preview
}
