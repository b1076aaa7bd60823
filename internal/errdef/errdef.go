package errdef

import (
	"errors"
	"fmt"
	"strings"
)

// NewNotFound representa un recurso inexistente o no visible para quien lo pide.
// No distinguimos "no existe" de "no es tuyo".
func NewNotFound(format string, a ...any) error {
	return notFound{fmt.Errorf(format, a...)}
}

type notFound struct{ error }

func (e notFound) Unwrap() error { return e.error }

func IsNotFound(err error) bool {
	var e notFound
	return errors.As(err, &e)
}

func NewUnauthorized(format string, a ...any) error {
	return unauthorized{fmt.Errorf(format, a...)}
}

type unauthorized struct{ error }

func (e unauthorized) Unwrap() error { return e.error }

func IsUnauthorized(err error) bool {
	var e unauthorized
	return errors.As(err, &e)
}

// NewBadRequest se usa para cuerpos mal formados (json inválido, etc.).
func NewBadRequest(format string, a ...any) error {
	return badRequest{fmt.Errorf(format, a...)}
}

type badRequest struct{ error }

func (e badRequest) Unwrap() error { return e.error }

func IsBadRequest(err error) bool {
	var e badRequest
	return errors.As(err, &e)
}

// NewTooLarge es un body que supera el límite del endpoint.
func NewTooLarge(format string, a ...any) error {
	return tooLarge{fmt.Errorf(format, a...)}
}

type tooLarge struct{ error }

func (e tooLarge) Unwrap() error { return e.error }

func IsTooLarge(err error) bool {
	var e tooLarge
	return errors.As(err, &e)
}

// FieldError es una violación puntual sobre un campo.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ValidationError acumula todas las violaciones encontradas (no corta en la primera),
// así el cliente puede mostrar todos los errores juntos.
type ValidationError struct {
	Messages []FieldError `json:"messages"`
}

func (e *ValidationError) Add(path, message string) {
	e.Messages = append(e.Messages, FieldError{Path: path, Message: message})
}

func (e *ValidationError) Has(path string) bool {
	for _, m := range e.Messages {
		if m.Path == path {
			return true
		}
	}
	return false
}

func (e *ValidationError) Error() string {
	if len(e.Messages) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Messages))
	for _, m := range e.Messages {
		parts = append(parts, m.Path+": "+m.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// OrNil devuelve nil si no se acumuló ninguna violación.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Messages) == 0 {
		return nil
	}
	return e
}

func NewValidation(path, message string) error {
	v := &ValidationError{}
	v.Add(path, message)
	return v
}

func AsValidation(err error) (*ValidationError, bool) {
	var v *ValidationError
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
