package schema

import (
	"context"
	"encoding/json"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/fnlab/domainfn"
)

// validate is shared by every struct schema. Field names in reported
// issues follow the json tag when one is present.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// StructSchema validates untrusted values into a tagged struct T.
type StructSchema[T any] struct{}

// Struct builds a schema for the struct type T. Parsing coerces the
// raw value into T and then applies the type's `validate` tags; every
// violation becomes one SchemaError, in the order the validator
// reports them.
func Struct[T any]() *StructSchema[T] {
	return &StructSchema[T]{}
}

// Parse implements domainfn.Schema.
func (s *StructSchema[T]) Parse(ctx context.Context, value any) (T, []domainfn.SchemaError) {
	out, issues := coerce[T](value)
	if len(issues) > 0 {
		return out, issues
	}
	if err := validate.StructCtx(ctx, &out); err != nil {
		return out, translate(err)
	}
	return out, nil
}

// coerce converts an arbitrary untrusted value into T through its
// JSON form. A nil value is treated as an empty structure so that
// required-field violations surface through validation rather than as
// a decode failure.
func coerce[T any](value any) (T, []domainfn.SchemaError) {
	var out T
	var raw []byte
	switch v := value.(type) {
	case nil:
		return out, nil
	case json.RawMessage:
		raw = v
	case []byte:
		raw = v
	default:
		b, err := json.Marshal(value)
		if err != nil {
			return out, []domainfn.SchemaError{{Message: "is not a representable value"}}
		}
		raw = b
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, decodeIssue(err)
	}
	return out, nil
}

func decodeIssue(err error) []domainfn.SchemaError {
	if typeErr, ok := err.(*json.UnmarshalTypeError); ok {
		var path []string
		if typeErr.Field != "" {
			path = strings.Split(typeErr.Field, ".")
		}
		return []domainfn.SchemaError{{
			Path:    path,
			Message: "must be of type " + typeErr.Type.String(),
		}}
	}
	return []domainfn.SchemaError{{Message: "is not a valid structure"}}
}

// translate converts validator errors into SchemaErrors, order
// preserved. Paths drop the root type segment of the namespace.
func translate(err error) []domainfn.SchemaError {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []domainfn.SchemaError{{Message: err.Error()}}
	}
	issues := make([]domainfn.SchemaError, 0, len(verrs))
	for _, fe := range verrs {
		issues = append(issues, domainfn.SchemaError{
			Path:    fieldPath(fe),
			Message: message(fe),
		})
	}
	return issues
}

func fieldPath(fe validator.FieldError) []string {
	segments := strings.Split(fe.Namespace(), ".")
	if len(segments) > 1 {
		segments = segments[1:]
	}
	return segments
}
