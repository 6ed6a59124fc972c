// Package overrides holds the section override declarations shipped with the
// storefront. Each declaration is a plain value; nothing is registered until
// the host passes Declarations to sections.RegisterOverrides.
package overrides

import (
	"strings"

	"github.com/hellofanny/faststore/internal/sections"
)

// Declarations returns every built-in override declaration.
func Declarations() []sections.Override {
	return []sections.Override{
		EmptyState(),
	}
}

// Compose merges the built-in declarations with a deployment's own. A
// deployment declaration replaces the built-in one for the same section.
// Deployment declarations are returned untouched, so two of them naming the
// same section still conflict at registration.
func Compose(deployment ...sections.Override) []sections.Override {
	claimed := make(map[sections.Name]struct{}, len(deployment))
	for _, o := range deployment {
		claimed[sections.Name(strings.TrimSpace(o.Section.String()))] = struct{}{}
	}

	out := make([]sections.Override, 0, len(deployment)+1)
	for _, o := range Declarations() {
		if _, ok := claimed[o.Section]; ok {
			continue
		}
		out = append(out, o)
	}
	return append(out, deployment...)
}
