package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/useraccounts/user-management/internal/core/domain"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
// The custom tags delegate to the domain validation rules so the handler and
// the service enforce exactly the same policy.
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	v := validator.New()

	_ = v.RegisterValidation("user_role", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseRole(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("user_name", func(fl validator.FieldLevel) bool {
		return domain.ValidateName("name", fl.Field().String()) == nil
	})
	_ = v.RegisterValidation("user_email", func(fl validator.FieldLevel) bool {
		return domain.ValidateEmail(fl.Field().String()) == nil
	})
	_ = v.RegisterValidation("user_password", func(fl validator.FieldLevel) bool {
		return domain.ValidatePassword(fl.Field().String()) == nil
	})

	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return fmt.Errorf("%s", strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "user_role":
		return fmt.Sprintf("%s must be one of %v", field, domain.Roles)
	case "user_name":
		return field + " must be 2-32 alphanumeric characters with '.', '_' or '-' separators"
	case "user_email":
		return field + " must be a valid email address"
	case "user_password":
		return field + " must be 4-16 characters with a digit, an uppercase, a lowercase and a special character"
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
