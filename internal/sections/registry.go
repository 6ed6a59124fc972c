package sections

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	goerrors "github.com/goliatone/go-errors"
)

// Registry holds at most one override per recognized section. It is filled
// during application start and read by the Resolver on every render.
type Registry struct {
	mu        sync.RWMutex
	overrides map[Name]Override
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{overrides: make(map[Name]Override)}
}

// Register validates o and stores it. A second override for the same section
// is rejected; the first registration is kept untouched.
func (r *Registry) Register(o Override) error {
	if err := o.Validate(); err != nil {
		return err
	}
	o.Section = Name(strings.TrimSpace(o.Section.String()))

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.overrides[o.Section]; exists {
		return sectionError(ErrDuplicateOverride, goerrors.CategoryConflict, textCodeDuplicate, o.Section,
			fmt.Sprintf("section %q is already overridden", o.Section))
	}
	r.overrides[o.Section] = o.Clone()
	return nil
}

// Get returns the override registered for name.
func (r *Registry) Get(name Name) (Override, bool) {
	if r == nil {
		return Override{}, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.overrides[name]
	if !ok {
		return Override{}, false
	}
	return o.Clone(), true
}

// List returns all overrides sorted by section name.
func (r *Registry) List() []Override {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Override, 0, len(r.overrides))
	for _, o := range r.overrides {
		out = append(out, o.Clone())
	}
	slices.SortFunc(out, func(a, b Override) int {
		return strings.Compare(a.Section.String(), b.Section.String())
	})
	return out
}

// Len reports the number of registered overrides.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.overrides)
}
