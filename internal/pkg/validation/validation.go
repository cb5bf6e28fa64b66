package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Detail flattens a gin binding error into one human-readable message for
// the {"detail": ...} error shape.
func Detail(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request body"
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s %s", strings.ToLower(fe.Field()), tagMessage(fe.Tag())))
	}
	return strings.Join(parts, "; ")
}

func tagMessage(tag string) string {
	switch tag {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min":
		return "is too short"
	default:
		return "is invalid"
	}
}
