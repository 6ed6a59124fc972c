package sections

import (
	"fmt"

	goerrors "github.com/goliatone/go-errors"

	"github.com/hellofanny/faststore/internal/logging"
	"github.com/hellofanny/faststore/pkg/interfaces"
)

// RegisterOverrides registers every declaration on registry. All declarations
// are attempted so a single error reports every bad section; any failure
// means the configuration must not be used.
func RegisterOverrides(registry *Registry, logger interfaces.Logger, overrides ...Override) error {
	if registry == nil {
		return ErrRegistryRequired
	}
	if logger == nil {
		logger = logging.NoOp()
	}

	var errs []error
	for _, o := range overrides {
		if err := registry.Register(o); err != nil {
			logging.WithSectionContext(logger, o.Section.String(), "").
				Error("sections.override.rejected", "error", err)
			errs = append(errs, err)
			continue
		}
		logging.WithSectionContext(logger, o.Section.String(), "").
			Debug("sections.override.registered", "implemented", o.Implemented(), "components", len(o.Components))
	}
	return goerrors.Join(errs...)
}

// RequireImplemented reports every registered override that has no
// implementation. Hosts running the strict fallback policy call it at start
// so an unimplemented override never reaches a render.
func RequireImplemented(registry *Registry) error {
	if registry == nil {
		return ErrRegistryRequired
	}

	var errs []error
	for _, o := range registry.List() {
		if o.Implemented() {
			continue
		}
		errs = append(errs, sectionError(ErrOverrideUnimplemented, goerrors.CategoryValidation, textCodeUnimplemented, o.Section,
			fmt.Sprintf("section %q is overridden without an implementation", o.Section)))
	}
	return goerrors.Join(errs...)
}
