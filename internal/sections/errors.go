package sections

import (
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

var (
	ErrRegistryRequired      = errors.New("sections: registry required")
	ErrSectionNameRequired   = errors.New("sections: section name required")
	ErrUnknownSection        = errors.New("sections: unknown section")
	ErrUnknownComponent      = errors.New("sections: unknown component")
	ErrDuplicateOverride     = errors.New("sections: duplicate override")
	ErrOverrideUnimplemented = errors.New("sections: override has no implementation")
)

const (
	textCodeNameRequired   = "SECTION_NAME_REQUIRED"
	textCodeUnknown        = "SECTION_UNKNOWN"
	textCodeComponent      = "SECTION_COMPONENT_UNKNOWN"
	textCodeDuplicate      = "SECTION_OVERRIDE_DUPLICATE"
	textCodeUnimplemented  = "SECTION_OVERRIDE_UNIMPLEMENTED"
	textCodeRenderNotFound = "SECTION_NOT_FOUND"
)

// sectionError wraps a package sentinel so callers can match it with
// errors.Is while still getting a categorised go-errors value that names the
// offending section.
func sectionError(sentinel error, category goerrors.Category, code string, section Name, message string) error {
	return goerrors.Wrap(sentinel, category, message).
		WithTextCode(code).
		WithMetadata(map[string]any{"section": section.String()})
}

// IsConfigurationError reports whether err came from override validation.
func IsConfigurationError(err error) bool {
	return goerrors.IsValidation(err) || goerrors.IsCategory(err, goerrors.CategoryConflict)
}
