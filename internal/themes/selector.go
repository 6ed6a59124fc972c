package themes

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	gotheme "github.com/goliatone/go-theme"

	"github.com/hellofanny/faststore/internal/logging"
	"github.com/hellofanny/faststore/internal/runtimeconfig"
	"github.com/hellofanny/faststore/pkg/interfaces"
)

var (
	ErrThemeNameRequired = errors.New("themes: theme name required")
	ErrThemePathRequired = errors.New("themes: theme path required")
)

// ManifestLoader reads a go-theme manifest from a theme directory.
type ManifestLoader interface {
	Load(themePath string) (*gotheme.Manifest, error)
}

// FSManifestLoader loads manifests from the local filesystem.
type FSManifestLoader struct{}

func (FSManifestLoader) Load(themePath string) (*gotheme.Manifest, error) {
	cleaned := strings.TrimSpace(themePath)
	if cleaned == "" {
		return nil, ErrThemePathRequired
	}
	return gotheme.LoadDir(os.DirFS(filepath.Clean(cleaned)), ".")
}

// Selector registers the configured theme manifest once and hands out
// selections for a variant.
type Selector struct {
	basePath       string
	defaultTheme   string
	defaultVariant string
	loader         ManifestLoader
	logger         interfaces.Logger

	mu       sync.Mutex
	registry *gotheme.MemoryRegistry
	manifest *gotheme.Manifest
}

// NewSelector builds a selector from theme settings. A nil loader means FSManifestLoader.
func NewSelector(cfg runtimeconfig.ThemeConfig, loader ManifestLoader, logger interfaces.Logger) *Selector {
	if loader == nil {
		loader = FSManifestLoader{}
	}
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Selector{
		basePath:       strings.TrimSpace(cfg.BasePath),
		defaultTheme:   strings.TrimSpace(cfg.DefaultTheme),
		defaultVariant: strings.TrimSpace(cfg.DefaultVariant),
		loader:         loader,
		logger:         logger,
		registry:       gotheme.NewRegistry(),
	}
}

// ThemePath is the directory holding the default theme.
func (s *Selector) ThemePath() string {
	return filepath.Join(s.basePath, s.defaultTheme)
}

// Select returns the selection for variant, falling back to the default variant.
func (s *Selector) Select(variant string) (*gotheme.Selection, error) {
	if _, err := s.ensureManifest(); err != nil {
		return nil, err
	}

	resolved := strings.TrimSpace(variant)
	if resolved == "" {
		resolved = s.defaultVariant
	}

	selector := gotheme.Selector{
		Registry:       s.registry,
		DefaultTheme:   s.defaultTheme,
		DefaultVariant: s.defaultVariant,
	}
	selection, err := selector.Select(s.defaultTheme, resolved)
	if err != nil {
		return nil, fmt.Errorf("select theme %s: %w", s.defaultTheme, err)
	}
	logging.WithThemeContext(s.logger, selection.Theme).Debug("themes.selected", "variant", selection.Variant)
	return selection, nil
}

func (s *Selector) ensureManifest() (*gotheme.Manifest, error) {
	if s.defaultTheme == "" {
		return nil, ErrThemeNameRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.manifest != nil {
		return s.manifest, nil
	}

	manifest, err := s.loader.Load(s.ThemePath())
	if err != nil {
		return nil, fmt.Errorf("load theme manifest from %s: %w", s.ThemePath(), err)
	}

	normalized := *manifest
	if strings.TrimSpace(normalized.Name) == "" || !strings.EqualFold(normalized.Name, s.defaultTheme) {
		normalized.Name = s.defaultTheme
	}
	if strings.TrimSpace(normalized.Version) == "" {
		normalized.Version = "0.0.0"
	}

	if err := s.registry.Register(&normalized); err != nil {
		return nil, fmt.Errorf("register theme manifest: %w", err)
	}
	s.manifest = &normalized
	return &normalized, nil
}
