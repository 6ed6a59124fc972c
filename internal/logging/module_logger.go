package logging

import (
	"context"
	"strings"

	"github.com/hellofanny/faststore/pkg/interfaces"
)

const (
	rootModule      = "storefront"
	sectionsModule  = "storefront.sections"
	skeletonsModule = "storefront.skeletons"
	themesModule    = "storefront.themes"
	httpModule      = "storefront.http"
)

const (
	fieldSection  = "section"
	fieldSource   = "source"
	fieldThemeKey = "theme"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The module identifier is
// attached as a structured field.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// SectionsLogger returns the logger namespace for section registration and resolution.
func SectionsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, sectionsModule)
}

// SkeletonsLogger returns the logger namespace for loading placeholders.
func SkeletonsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, skeletonsModule)
}

// ThemesLogger returns the logger namespace for theme template overrides.
func ThemesLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, themesModule)
}

// HTTPLogger returns the logger namespace for the storefront preview server.
func HTTPLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, httpModule)
}

// WithSectionContext enriches logger with the section name and the source that
// served it. Empty values are ignored.
func WithSectionContext(logger interfaces.Logger, section, source string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(section); trimmed != "" {
		fields[fieldSection] = trimmed
	}
	if trimmed := strings.TrimSpace(source); trimmed != "" {
		fields[fieldSource] = trimmed
	}
	return WithFields(logger, fields)
}

// WithThemeContext tags logger with the active theme name.
func WithThemeContext(logger interfaces.Logger, theme string) interfaces.Logger {
	if trimmed := strings.TrimSpace(theme); trimmed != "" {
		return WithFields(logger, map[string]any{fieldThemeKey: trimmed})
	}
	return logger
}

// NoOp returns a logger that drops every entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
