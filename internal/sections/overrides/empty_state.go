package overrides

import "github.com/hellofanny/faststore/internal/sections"

// EmptyState registers the EmptyState section without replacing its markup.
// It is the template deployments copy when they start overriding a section:
// set Implementation (and optionally Components) to take over rendering.
func EmptyState() sections.Override {
	return sections.Override{
		Section: sections.EmptyState,
	}
}
