package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/sooquk/sooquk-dashboard/internal/pkg/errors"
)

// Translator is the subset of the i18n catalog used for field messages.
type Translator interface {
	T(locale, key string, args ...any) string
}

// New returns a validator reporting fields by their json name.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Struct validates s and converts failures into apperrors.FieldErrors keyed by json field.
// Messages are message keys; Localize turns them into text.
func Struct(v *validator.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return apperrors.FieldErrors{"_": "validation.invalid"}
	}

	out := apperrors.FieldErrors{}
	for _, fe := range ve {
		key := "validation." + fe.Tag()
		if fe.Param() != "" {
			key += "|" + fe.Param()
		}
		out[fe.Field()] = key
	}
	return out
}

// Localize renders FieldErrors message keys in the given locale.
func Localize(tr Translator, locale string, fields apperrors.FieldErrors) map[string]string {
	out := make(map[string]string, len(fields))
	for field, key := range fields {
		out[field] = message(tr, locale, key)
	}
	return out
}

func message(tr Translator, locale, key string) string {
	tag, param, _ := strings.Cut(key, "|")
	if !strings.HasPrefix(tag, "validation.") {
		return key
	}

	switch tag {
	case "validation.required", "validation.email", "validation.url", "validation.alphanum",
		"validation.hexcolor", "validation.invalid":
		return tr.T(locale, tag)
	case "validation.min", "validation.max", "validation.len", "validation.gt", "validation.gte",
		"validation.lt", "validation.lte":
		return tr.T(locale, tag, param)
	case "validation.oneof":
		return tr.T(locale, tag, strings.ReplaceAll(param, " ", ", "))
	case "validation.gtfield":
		return tr.T(locale, tag, tr.T(locale, "column."+toSnake(param)))
	default:
		return tr.T(locale, "validation.invalid")
	}
}

func toSnake(s string) string {
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
