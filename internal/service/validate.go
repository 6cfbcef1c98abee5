package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/pkordes/nightlife-navigator/internal/domain"
)

var validate = validator.New()

// validateMember checks a member's name and slider ranges and returns a
// domain.ErrValidation naming the first offending field.
func validateMember(m domain.MemberPreference) error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("%w: member name is required", domain.ErrValidation)
	}
	if err := validate.Struct(m); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrValidation, fieldMessage(err))
	}
	return nil
}

// fieldMessage turns the first validator failure into a short message,
// e.g. "vibe must be at most 100".
func fieldMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	field := snakeCase(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}

// snakeCase converts a Go field name such as MaxWaitMinutes to max_wait_minutes.
func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
