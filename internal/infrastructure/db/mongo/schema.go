package mongo

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/InnocentBoy-007/Restaurant-fullstack/internal/core/domain"
)

// documentValidator checks documents against their collection schema before
// any write. Field names in messages are the stored (bson) names.
var documentValidator = newDocumentValidator()

func newDocumentValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("bson"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// validateDocument returns a KindSchemaViolation error describing every
// failing field, or nil.
func validateDocument(doc any) error {
	err := documentValidator.Struct(doc)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return domain.Wrap(domain.KindSchemaViolation, "invalid document", err)
	}

	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, schemaFieldError(fe))
	}
	return domain.ErrSchemaViolation.WithMessage(strings.Join(msgs, "; "))
}

func schemaFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "gte":
		return fmt.Sprintf("%s must be >= %s", fe.Field(), fe.Param())
	case "email":
		return fe.Field() + " must be a valid email"
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}
