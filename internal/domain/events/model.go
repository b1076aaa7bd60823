package events

import "time"

// Event es un evento creado por un usuario (titulo, fecha, lugar y foto opcional).
type Event struct {
	ID      string
	OwnerID string

	Title       string
	Description string
	EventDate   string // tal cual lo manda el cliente (DD/MM/YYYY, YYYY-MM-DD o RFC3339)
	Venue       string

	Picture string // id de imagen, vacío si no tiene

	// SavedAt se re-estampa en cada guardado (en el wire sigue llamándose fechaCreacion).
	SavedAt time.Time

	Enabled bool
}

// Patch son los campos editables. Un campo vacío significa "no tocar".
type Patch struct {
	Title       string
	Description string
	EventDate   string
	Venue       string
}
