package sections

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	goerrors "github.com/goliatone/go-errors"

	"github.com/hellofanny/faststore/pkg/interfaces"
)

// Override declares that a section has a replacement available. A nil
// Implementation registers the section without replacing its rendering.
type Override struct {
	Section        Name
	Implementation interfaces.SectionRenderer
	Components     map[string]interfaces.SectionRenderer
}

// Implemented reports whether the override supplies a section renderer.
func (o Override) Implemented() bool {
	return o.Implementation != nil
}

// Clone returns a copy whose component map is not shared with o.
func (o Override) Clone() Override {
	o.Components = maps.Clone(o.Components)
	return o
}

// Validate checks the declaration against the recognized section catalogue.
func (o Override) Validate() error {
	section := Name(strings.TrimSpace(o.Section.String()))

	if err := validation.Validate(section.String(), validation.Required); err != nil {
		return sectionError(ErrSectionNameRequired, goerrors.CategoryValidation, textCodeNameRequired, section,
			"override declares no section name")
	}
	if err := validation.Validate(section, validation.In(recognizedValues()...)); err != nil {
		return sectionError(ErrUnknownSection, goerrors.CategoryValidation, textCodeUnknown, section,
			fmt.Sprintf("section %q is not a recognized storefront section", section))
	}
	for _, component := range slices.Sorted(maps.Keys(o.Components)) {
		if !AcceptsComponent(section, component) {
			return sectionError(ErrUnknownComponent, goerrors.CategoryValidation, textCodeComponent, section,
				fmt.Sprintf("section %q has no overridable component %q", section, component))
		}
		if o.Components[component] == nil {
			return sectionError(ErrUnknownComponent, goerrors.CategoryValidation, textCodeComponent, section,
				fmt.Sprintf("section %q component %q has no implementation", section, component))
		}
	}
	return nil
}
