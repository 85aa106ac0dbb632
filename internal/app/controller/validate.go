package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"taskdesk/internal/core/domain"
)

// newValidate builds the validator shared by the controllers: the stock tag
// set plus the RFC-lite email rule and not-blank (required rejects only the
// zero value, not whitespace).
func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("rfcemail", func(fl validator.FieldLevel) bool {
		return domain.ValidEmail(fl.Field().String())
	})
	return v
}

// checkInput runs tag validation and converts the first field error into the
// matching domain sentinel.
func checkInput(v *validator.Validate, in any) error {
	err := v.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return mapFieldError(verrs[0])
	}
	return fmt.Errorf("%w: %v", domain.ErrValidation, err)
}

func mapFieldError(fe validator.FieldError) error {
	switch fe.Field() {
	case "Username":
		return domain.ErrEmptyUsername
	case "Email":
		return fmt.Errorf("%w: %q", domain.ErrInvalidEmail, fe.Value())
	case "Role":
		return fmt.Errorf("%w: %q", domain.ErrInvalidRole, fe.Value())
	case "Name":
		return domain.ErrEmptyProjectName
	case "Title":
		return domain.ErrEmptyTitle
	case "Priority":
		return fmt.Errorf("%w: %v", domain.ErrInvalidPriority, fe.Value())
	case "Status":
		if strings.Contains(fe.StructNamespace(), "Project") {
			return fmt.Errorf("%w: %q", domain.ErrInvalidProjectStatus, fe.Value())
		}
		return fmt.Errorf("%w: %q", domain.ErrInvalidTaskStatus, fe.Value())
	}
	return fmt.Errorf("%w: field %s", domain.ErrValidation, fe.Field())
}
