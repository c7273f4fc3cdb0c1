/*
Package spritelint is a library for linting the sprite sheets shipped with the
game before they reach the runtime.
*/
package spritelint

import (
	"github.com/bodgit/spritelint/sheet"
	"go.uber.org/zap"
)

// Number of dominant colors reported in debug diagnostics
const paletteSize = 4

type Validator struct {
	spec   sheet.Spec
	logger *zap.Logger
}

// New returns a Validator for sheets matching spec. A nil logger discards
// diagnostics.
func New(spec sheet.Spec, logger *zap.Logger) (*Validator, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Validator{
		spec:   spec,
		logger: logger,
	}, nil
}

// Spec returns the layout sheets are validated against
func (v *Validator) Spec() sheet.Spec {
	return v.spec
}
