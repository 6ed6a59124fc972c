package runtimeconfig_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hellofanny/faststore/internal/runtimeconfig"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
	if cfg.Catalog.ItemsPerPage != runtimeconfig.DefaultItemsPerPage {
		t.Fatalf("expected default items per page %d, got %d", runtimeconfig.DefaultItemsPerPage, cfg.Catalog.ItemsPerPage)
	}
}

func TestConfigValidate_RequiresPositiveItemsPerPage(t *testing.T) {
	for _, n := range []int{0, -1} {
		cfg := runtimeconfig.DefaultConfig()
		cfg.Catalog.ItemsPerPage = n
		if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrItemsPerPageInvalid) {
			t.Fatalf("items per page %d: expected ErrItemsPerPageInvalid, got %v", n, err)
		}
	}
}

func TestConfigValidate_RejectsNegativeAspectRatio(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Catalog.CardAspectRatio = -1
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrAspectRatioInvalid) {
		t.Fatalf("expected ErrAspectRatioInvalid, got %v", err)
	}
}

func TestConfigValidate_FallbackPolicy(t *testing.T) {
	for _, policy := range []string{"", "default", "STRICT"} {
		cfg := runtimeconfig.DefaultConfig()
		cfg.Sections.FallbackPolicy = policy
		if err := cfg.Validate(); err != nil {
			t.Fatalf("policy %q: unexpected error %v", policy, err)
		}
	}

	cfg := runtimeconfig.DefaultConfig()
	cfg.Sections.FallbackPolicy = "last-write-wins"
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrFallbackPolicyInvalid) {
		t.Fatalf("expected ErrFallbackPolicyInvalid, got %v", err)
	}
}

func TestConfigValidate_SectionOverridesNeedSectionAndTemplate(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Sections.Overrides = []runtimeconfig.SectionOverrideConfig{
		{Section: "Hero", Template: "hero.tmpl"},
		{Section: "Navbar"},
	}
	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrSectionOverrideInvalid) {
		t.Fatalf("expected ErrSectionOverrideInvalid, got %v", err)
	}
	if !strings.Contains(err.Error(), "overrides[1]") {
		t.Fatalf("expected index in diagnostic, got %v", err)
	}
}

func TestConfigValidate_Themes(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Themes.DefaultTheme = "aurora"
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrThemesFeatureRequired) {
		t.Fatalf("expected ErrThemesFeatureRequired, got %v", err)
	}

	cfg = runtimeconfig.DefaultConfig()
	cfg.Features.Themes = true
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrThemeNameRequired) {
		t.Fatalf("expected ErrThemeNameRequired, got %v", err)
	}
}

func TestConfigValidate_MetricsNamespaceNeedsFeature(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Metrics.Namespace = "shop"
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrMetricsFeatureRequired) {
		t.Fatalf("expected ErrMetricsFeatureRequired, got %v", err)
	}

	cfg.Features.Metrics = true
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestConfigValidate_RequiresHTTPAddr(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.HTTP.Addr = " "
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrHTTPAddrRequired) {
		t.Fatalf("expected ErrHTTPAddrRequired, got %v", err)
	}
}

func TestConfigValidate_Logging(t *testing.T) {
	cases := []struct {
		name     string
		provider string
		level    string
		format   string
		want     error
	}{
		{name: "missing provider", provider: "", want: runtimeconfig.ErrLoggingProviderRequired},
		{name: "unknown provider", provider: "syslog", want: runtimeconfig.ErrLoggingProviderUnknown},
		{name: "bad level", provider: "console", level: "loud", want: runtimeconfig.ErrLoggingLevelInvalid},
		{name: "bad format", provider: "gologger", format: "xml", want: runtimeconfig.ErrLoggingFormatInvalid},
		{name: "console ignores format", provider: "console", format: "xml"},
		{name: "gologger pretty", provider: "gologger", level: "debug", format: "pretty"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := runtimeconfig.DefaultConfig()
			cfg.Features.Logger = true
			cfg.Logging.Provider = tc.provider
			cfg.Logging.Level = tc.level
			cfg.Logging.Format = tc.format

			err := cfg.Validate()
			if tc.want == nil {
				if err != nil {
					t.Fatalf("unexpected error %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestLoad_AppliesYAMLOverDefaults(t *testing.T) {
	cfg, err := runtimeconfig.Load(strings.NewReader(`
catalog:
  items_per_page: 24
  card_aspect_ratio: 1.5
sections:
  fallback_policy: strict
  sanitize_overrides: true
  disable_built_ins: true
  overrides:
    - section: Hero
      template: sections/hero.tmpl
`))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Catalog.ItemsPerPage != 24 || cfg.Catalog.CardAspectRatio != 1.5 {
		t.Fatalf("unexpected catalog %#v", cfg.Catalog)
	}
	if cfg.Sections.FallbackPolicy != "strict" || !cfg.Sections.SanitizeOverrides || !cfg.Sections.DisableBuiltIns {
		t.Fatalf("unexpected sections %#v", cfg.Sections)
	}
	if len(cfg.Sections.Overrides) != 1 || cfg.Sections.Overrides[0].Section != "Hero" {
		t.Fatalf("unexpected overrides %#v", cfg.Sections.Overrides)
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Fatalf("expected default http addr to survive, got %q", cfg.HTTP.Addr)
	}
}

func TestLoad_EmptyInputUsesDefaults(t *testing.T) {
	cfg, err := runtimeconfig.Load(strings.NewReader("  \n"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Catalog.ItemsPerPage != runtimeconfig.DefaultItemsPerPage {
		t.Fatalf("expected defaults, got %#v", cfg.Catalog)
	}
}

func TestLoad_RejectsUnknownKeys(t *testing.T) {
	if _, err := runtimeconfig.Load(strings.NewReader("catalog:\n  page_size: 10\n")); err == nil {
		t.Fatalf("expected unknown key error")
	}
}

func TestLoad_ValidatesResult(t *testing.T) {
	_, err := runtimeconfig.Load(strings.NewReader("catalog:\n  items_per_page: 0\n"))
	if !errors.Is(err, runtimeconfig.ErrItemsPerPageInvalid) {
		t.Fatalf("expected ErrItemsPerPageInvalid, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storefront.yaml")
	if err := os.WriteFile(path, []byte("http:\n  addr: \":9090\"\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := runtimeconfig.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if cfg.HTTP.Addr != ":9090" {
		t.Fatalf("expected :9090, got %q", cfg.HTTP.Addr)
	}

	if _, err := runtimeconfig.LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected missing file error")
	}
}
