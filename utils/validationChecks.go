package utils

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var validate = validator.New()

// ValidateStruct runs the struct's validate tags. The returned error wraps
// validator.ValidationErrors.
func ValidateStruct(req interface{}, what string) error {
	if err := validate.Struct(req); err != nil {
		return errors.Wrapf(err, "invalid %s", what)
	}
	return nil
}
