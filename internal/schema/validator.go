// Package schema validates résumé documents against field-level rules.
package schema

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/rcalaglez/icv-lite/internal/model"
)

// Result is the outcome of validating a document. When Valid is false,
// FieldErrors maps dotted field paths (array indices as path segments,
// e.g. "work.0.startDate") to user-facing messages.
type Result struct {
	Valid       bool
	FieldErrors map[string]string
}

// Validator checks documents against the résumé schema. It is pure and
// safe for reuse across forms.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with json-tag field naming.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// Validate checks the whole document. An empty or absent array is always
// valid; present elements are validated against their own sub-schema.
func (v *Validator) Validate(doc model.Document) Result {
	err := v.validate.Struct(doc)
	if err == nil {
		return Result{Valid: true}
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// Struct input cannot produce an InvalidValidationError.
		panic(err)
	}

	fieldErrors := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fieldErrors[fieldPath(fe.Namespace())] = message(fe)
	}
	return Result{Valid: false, FieldErrors: fieldErrors}
}

// fieldPath converts a validator namespace ("Document.work[0].name") into
// the dotted path form used everywhere else ("work.0.name").
func fieldPath(ns string) string {
	if _, rest, found := strings.Cut(ns, "."); found {
		ns = rest
	}
	ns = strings.ReplaceAll(ns, "[", ".")
	ns = strings.ReplaceAll(ns, "]", "")
	return ns
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Campo requerido"
	case "email":
		return "Email inválido"
	case "url":
		return "URL inválida"
	default:
		return "Valor inválido"
	}
}
