package settings

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks cfg against its validate tags.
func Validate(cfg any) error {
	if err := validate.Struct(cfg); err != nil {
		return errors.Wrap(err, "invalid settings")
	}
	return nil
}
