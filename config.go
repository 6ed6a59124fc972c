package faststore

import "github.com/hellofanny/faststore/internal/runtimeconfig"

var (
	ErrItemsPerPageInvalid     = runtimeconfig.ErrItemsPerPageInvalid
	ErrAspectRatioInvalid      = runtimeconfig.ErrAspectRatioInvalid
	ErrFallbackPolicyInvalid   = runtimeconfig.ErrFallbackPolicyInvalid
	ErrSectionOverrideInvalid  = runtimeconfig.ErrSectionOverrideInvalid
	ErrThemesFeatureRequired   = runtimeconfig.ErrThemesFeatureRequired
	ErrThemeNameRequired       = runtimeconfig.ErrThemeNameRequired
	ErrMetricsFeatureRequired  = runtimeconfig.ErrMetricsFeatureRequired
	ErrHTTPAddrRequired        = runtimeconfig.ErrHTTPAddrRequired
	ErrLoggingProviderRequired = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config                = runtimeconfig.Config
	CatalogConfig         = runtimeconfig.CatalogConfig
	SectionsConfig        = runtimeconfig.SectionsConfig
	SectionOverrideConfig = runtimeconfig.SectionOverrideConfig
	ThemeConfig           = runtimeconfig.ThemeConfig
	HTTPConfig            = runtimeconfig.HTTPConfig
	MetricsConfig         = runtimeconfig.MetricsConfig
	Features              = runtimeconfig.Features
	LoggingConfig         = runtimeconfig.LoggingConfig
)

// DefaultItemsPerPage is the product grid page size used when none is configured.
const DefaultItemsPerPage = runtimeconfig.DefaultItemsPerPage

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// LoadConfig reads a YAML config file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	return runtimeconfig.LoadFile(path)
}
