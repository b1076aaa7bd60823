// Package validation valida DTOs de request con go-playground/validator y traduce
// las violaciones al formato {path, message} que consume el frontend.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"pet-events/internal/errdef"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func get() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Usamos el nombre json del campo como path (titulo, descripcion, ...).
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// Struct valida v y devuelve *errdef.ValidationError con todas las violaciones, o nil.
func Struct(v any) error {
	err := get().Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &errdef.ValidationError{}
	for _, fe := range verrs {
		out.Add(fe.Field(), message(fe))
	}
	return out.OrNil()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "max":
		return fmt.Sprintf("Hasta %s caracteres solamente.", fe.Param())
	case "required":
		return "Campo requerido."
	case "base64", "datauri":
		return "Imagen inválida."
	default:
		return fmt.Sprintf("Valor inválido (%s).", fe.Tag())
	}
}
