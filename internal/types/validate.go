//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

var documentValidator = newDocumentValidator()

func newDocumentValidator() *validator.Validate {
	v := validator.New()
	// RegisterValidation only fails on an empty tag or a nil func
	_ = v.RegisterValidation("template_id", func(fl validator.FieldLevel) bool {
		return IsKnownTemplate(fl.Field().String())
	})
	return v
}

// Validate checks the invariants a normalized document must satisfy before it is persisted
func (d *ResumeDocument) Validate() error {
	return documentValidator.Struct(d)
}
