package impl

import (
	"strings"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/go-playground/validator/v10"
)

// validate is safe for concurrent use and caches struct metadata.
var validate = validator.New(validator.WithRequiredStructEnabled())

// validateInput checks the validate tags of input. Failures wrap
// domainerrors.ErrValidation with the offending fields.
func validateInput(input any) error {
	return validationError(validate.Struct(input))
}

func validateVar(field any, tag string) error {
	return validationError(validate.Var(field, tag))
}

func validationError(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(domainerrors.ErrValidation, err.Error())
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Field() == "" {
			msgs = append(msgs, "failed on "+fe.Tag())

			continue
		}
		msgs = append(msgs, fe.Field()+" failed on "+fe.Tag())
	}

	return errors.Wrap(domainerrors.ErrValidation, strings.Join(msgs, "; "))
}
