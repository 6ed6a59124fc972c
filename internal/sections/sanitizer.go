package sections

import (
	"github.com/microcosm-cc/bluemonday"

	"github.com/hellofanny/faststore/pkg/interfaces"
)

// Sanitizer strips scripts and unsafe attributes from override output while
// keeping the data-fs-* hooks storefront styles depend on.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer returns a sanitizer built on the bluemonday UGC policy.
func NewSanitizer() *Sanitizer {
	policy := bluemonday.UGCPolicy()
	policy.AllowDataAttributes()
	policy.AllowElements("section", "header", "footer", "nav")
	policy.AllowAttrs("class").Globally()
	return &Sanitizer{policy: policy}
}

// Sanitize implements interfaces.SectionSanitizer.
func (s *Sanitizer) Sanitize(html string) string {
	return s.policy.Sanitize(html)
}

var _ interfaces.SectionSanitizer = (*Sanitizer)(nil)
