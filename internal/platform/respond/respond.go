// Package respond junta los helpers de respuesta HTTP que antes estaban duplicados por módulo.
package respond

import (
	"errors"
	"io"
	"net/http"

	"pet-events/internal/errdef"
	"pet-events/internal/platform/logger"

	"github.com/goccy/go-json"
)

type errorBody struct {
	Error string `json:"error"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Decode lee el body JSON a dst. Un body cortado por http.MaxBytesReader es TooLarge;
// cualquier otro error es BadRequest.
func Decode(r *http.Request, dst any) error {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			return errdef.NewTooLarge("body exceeds %d bytes", mbe.Limit)
		}
		return errdef.NewBadRequest("read body: %v", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return errdef.NewBadRequest("invalid json: %v", err)
	}
	return nil
}

// Error traduce los errores del service a status HTTP.
// Solo se loguean los inesperados (500).
func Error(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	if v, ok := errdef.AsValidation(err); ok {
		JSON(w, http.StatusBadRequest, v)
		return
	}

	switch {
	case errdef.IsNotFound(err):
		JSON(w, http.StatusNotFound, errorBody{Error: "not found"})
	case errdef.IsUnauthorized(err):
		JSON(w, http.StatusUnauthorized, errorBody{Error: "unauthorized"})
	case errdef.IsTooLarge(err):
		JSON(w, http.StatusRequestEntityTooLarge, errorBody{Error: "request too large"})
	case errdef.IsBadRequest(err):
		JSON(w, http.StatusBadRequest, errorBody{Error: "invalid json"})
	default:
		if log != nil {
			log.Error("request failed", map[string]any{
				"method": r.Method,
				"path":   r.URL.Path,
				"err":    err.Error(),
			})
		}
		JSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}
