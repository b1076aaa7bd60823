package events

import "context"

// Query son los predicados de búsqueda. El service siempre los arma explícitos
// (dueño + habilitado); el repo no agrega filtros implícitos.
type Query struct {
	ID          string
	OwnerID     string
	OnlyEnabled bool
}

type Repository interface {
	Find(ctx context.Context, q Query) ([]Event, error)
	// FindOne devuelve un error errdef NotFound si nada coincide.
	FindOne(ctx context.Context, q Query) (Event, error)
	// Save inserta si e.ID está vacío (asignando id) o reemplaza el documento existente.
	Save(ctx context.Context, e Event) (Event, error)
}
