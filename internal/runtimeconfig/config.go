package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var ErrItemsPerPageInvalid = errors.New("storefront config: catalog items per page must be positive")
var ErrAspectRatioInvalid = errors.New("storefront config: card aspect ratio must be zero or positive")
var ErrFallbackPolicyInvalid = errors.New("storefront config: section fallback policy is invalid")
var ErrSectionOverrideInvalid = errors.New("storefront config: section override requires section and template")
var ErrThemesFeatureRequired = errors.New("storefront config: themes feature must be enabled to configure themes")
var ErrThemeNameRequired = errors.New("storefront config: default theme is required when themes are enabled")
var ErrMetricsFeatureRequired = errors.New("storefront config: metrics feature must be enabled to configure metrics")
var ErrHTTPAddrRequired = errors.New("storefront config: http address is required")
var ErrLoggingProviderRequired = errors.New("storefront config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("storefront config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("storefront config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("storefront config: logging format is invalid")

// Config aggregates storefront settings. It is read once at start and then
// passed by value to the components that need it.
type Config struct {
	Catalog  CatalogConfig  `yaml:"catalog"`
	Sections SectionsConfig `yaml:"sections"`
	Themes   ThemeConfig    `yaml:"themes"`
	HTTP     HTTPConfig     `yaml:"http"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Logging  LoggingConfig  `yaml:"logging"`
	Features Features       `yaml:"features"`
}

// CatalogConfig holds settings shared by the product grid and its skeleton.
type CatalogConfig struct {
	// ItemsPerPage is the page size of the product grid. The loading
	// skeleton renders exactly this many placeholders.
	ItemsPerPage int `yaml:"items_per_page"`
	// CardAspectRatio is handed to card placeholders; zero means the card default.
	CardAspectRatio float64 `yaml:"card_aspect_ratio"`
}

// SectionsConfig controls section override resolution.
type SectionsConfig struct {
	FallbackPolicy    string                  `yaml:"fallback_policy"`
	SanitizeOverrides bool                    `yaml:"sanitize_overrides"`
	Overrides         []SectionOverrideConfig `yaml:"overrides"`

	// DisableBuiltIns skips the declarations shipped with the storefront.
	DisableBuiltIns bool `yaml:"disable_built_ins"`
}

// SectionOverrideConfig binds a section to a template file on disk.
type SectionOverrideConfig struct {
	Section  string `yaml:"section"`
	Template string `yaml:"template"`
}

// Validate implements validation.Validatable.
func (o SectionOverrideConfig) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Section, validation.Required),
		validation.Field(&o.Template, validation.Required),
	)
}

// ThemeConfig locates go-theme manifests whose templates can override sections.
type ThemeConfig struct {
	BasePath       string `yaml:"base_path"`
	DefaultTheme   string `yaml:"default_theme"`
	DefaultVariant string `yaml:"default_variant"`
}

// HTTPConfig configures the storefront preview server.
type HTTPConfig struct {
	Addr string `yaml:"addr"`
}

// MetricsConfig configures the Prometheus recorder. An empty namespace means
// DefaultMetricsNamespace.
type MetricsConfig struct {
	Namespace string `yaml:"namespace"`
}

// Features toggles optional modules.
type Features struct {
	Themes  bool `yaml:"themes"`
	Metrics bool `yaml:"metrics"`
	Logger  bool `yaml:"logger"`
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string   `yaml:"provider"`
	Level     string   `yaml:"level"`
	Format    string   `yaml:"format"`
	AddSource bool     `yaml:"add_source"`
	Focus     []string `yaml:"focus"`
}

// DefaultItemsPerPage matches the storefront product grid page size.
const DefaultItemsPerPage = 12

// DefaultMetricsNamespace prefixes every storefront metric.
const DefaultMetricsNamespace = "storefront"

// DefaultConfig returns the settings used when no config file is supplied.
func DefaultConfig() Config {
	return Config{
		Catalog: CatalogConfig{
			ItemsPerPage: DefaultItemsPerPage,
		},
		Sections: SectionsConfig{
			FallbackPolicy: "default",
		},
		Themes: ThemeConfig{
			BasePath: "themes",
		},
		HTTP: HTTPConfig{
			Addr: ":8080",
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
	}
}

// Validate performs consistency checks. Every failure is a start-up error.
func (cfg Config) Validate() error {
	if cfg.Catalog.ItemsPerPage <= 0 {
		return fmt.Errorf("%w: %d", ErrItemsPerPageInvalid, cfg.Catalog.ItemsPerPage)
	}
	if cfg.Catalog.CardAspectRatio < 0 {
		return fmt.Errorf("%w: %v", ErrAspectRatioInvalid, cfg.Catalog.CardAspectRatio)
	}
	switch normalize(cfg.Sections.FallbackPolicy) {
	case "", "default", "strict":
	default:
		return fmt.Errorf("%w: %s", ErrFallbackPolicyInvalid, cfg.Sections.FallbackPolicy)
	}
	for i, override := range cfg.Sections.Overrides {
		if err := override.Validate(); err != nil {
			return fmt.Errorf("%w: overrides[%d]: %v", ErrSectionOverrideInvalid, i, err)
		}
	}
	if !cfg.Features.Themes {
		if strings.TrimSpace(cfg.Themes.DefaultTheme) != "" {
			return ErrThemesFeatureRequired
		}
	} else if strings.TrimSpace(cfg.Themes.DefaultTheme) == "" {
		return ErrThemeNameRequired
	}
	if !cfg.Features.Metrics && strings.TrimSpace(cfg.Metrics.Namespace) != "" {
		return ErrMetricsFeatureRequired
	}
	if strings.TrimSpace(cfg.HTTP.Addr) == "" {
		return ErrHTTPAddrRequired
	}
	if cfg.Features.Logger {
		provider := normalize(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch normalize(level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch normalize(format) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
