package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"subhub-be/internal/pkg/apperrors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct-tag validation and translates the first failure
// into a ValidationError the error handler can map to a 400.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		fe := errs[0]
		field := strings.ToLower(fe.Field())
		return apperrors.NewValidation(field, fmt.Sprintf("failed on '%s' rule", fe.Tag()))
	}
	return apperrors.NewValidation("request", err.Error())
}
