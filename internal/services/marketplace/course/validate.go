package course

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	apperrors "github.com/omkumar23112003/course-selling-app/internal/platform/errors"
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return IsCategory(fl.Field().String())
	})
	_ = v.RegisterValidation("level", func(fl validator.FieldLevel) bool {
		return IsLevel(fl.Field().String())
	})
	return v
}

// validateCourse reports the first invalid field as an INVALID_ARGUMENT
// error carrying the JSON field name.
func validateCourse(v *validator.Validate, c Course) error {
	err := v.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		first := fieldErrs[0]
		return apperrors.WithMetadata(
			apperrors.CodeInvalidArgument,
			"course "+first.Field()+" failed "+first.Tag()+" validation",
			map[string]string{"Field": first.Field()},
		)
	}
	return apperrors.Wrap(apperrors.CodeInvalidArgument, "validate course", err)
}
