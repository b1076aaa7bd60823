package events

import (
	"strings"
	"time"
	"unicode/utf8"

	"pet-events/internal/errdef"
)

const (
	MaxTitleLen       = 256
	MaxDescriptionLen = 1024
)

// Formatos aceptados para fechaEvento cuando hay que interpretarla.
var eventDateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"02/01/2006",
}

// ParseEventDate interpreta fechaEvento con los formatos aceptados.
func ParseEventDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range eventDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// validatePatch revisa solo los campos presentes en el patch y acumula todas las violaciones.
func (s *Service) validatePatch(p Patch) error {
	v := &errdef.ValidationError{}

	if utf8.RuneCountInString(p.Title) > MaxTitleLen {
		v.Add("titulo", "Hasta 256 caracteres solamente.")
	}
	if utf8.RuneCountInString(p.Description) > MaxDescriptionLen {
		v.Add("descripcion", "Hasta 1024 caracteres solamente.")
	}

	if s.requireFutureDate && strings.TrimSpace(p.EventDate) != "" {
		d, ok := ParseEventDate(p.EventDate)
		switch {
		case !ok:
			v.Add("fechaEvento", "Fecha inválida.")
		case d.Before(startOfDay(s.now())):
			v.Add("fechaEvento", "La fecha debe ser posterior a la actual")
		}
	}

	return v.OrNil()
}

// validateRecord exige los campos obligatorios sobre el registro ya mergeado.
func validateRecord(e Event) error {
	v := &errdef.ValidationError{}

	if e.Title == "" {
		v.Add("titulo", "El título es requerido")
	}
	if e.Description == "" {
		v.Add("descripcion", "Añada una descripción al evento")
	}
	if e.EventDate == "" {
		v.Add("fechaEvento", "La fecha del evento es requerida")
	}
	if e.Venue == "" {
		v.Add("lugarEvento", "El lugar del evento es requerido")
	}

	return v.OrNil()
}

func validatePicture(imageID string) error {
	if strings.TrimSpace(imageID) == "" {
		return errdef.NewValidation("image", "Imagen inválida.")
	}
	return nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
