package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"pet-events/internal/domain/events"
	"pet-events/internal/errdef"

	"github.com/google/uuid"
)

const eventColumns = `
	id, titulo, descripcion, fecha_creacion,
	fecha_evento, lugar_evento, creador,
	enabled, picture
`

type EventsRepo struct {
	db *sql.DB
}

func NewEventsRepo(db *sql.DB) *EventsRepo {
	return &EventsRepo{db: db}
}

// where arma el WHERE con los predicados de q.
func where(q events.Query) (string, []any) {
	conds := make([]string, 0, 3)
	args := make([]any, 0, 2)

	if q.ID != "" {
		args = append(args, q.ID)
		conds = append(conds, fmt.Sprintf("id = $%d", len(args)))
	}
	if q.OwnerID != "" {
		args = append(args, q.OwnerID)
		conds = append(conds, fmt.Sprintf("creador = $%d", len(args)))
	}
	if q.OnlyEnabled {
		conds = append(conds, "enabled = TRUE")
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(s rowScanner) (events.Event, error) {
	var e events.Event
	err := s.Scan(
		&e.ID,
		&e.Title,
		&e.Description,
		&e.SavedAt,
		&e.EventDate,
		&e.Venue,
		&e.OwnerID,
		&e.Enabled,
		&e.Picture,
	)
	return e, err
}

func (r *EventsRepo) Find(ctx context.Context, q events.Query) ([]events.Event, error) {
	cond, args := where(q)

	rows, err := r.db.QueryContext(ctx, "SELECT "+eventColumns+" FROM eventos"+cond+" ORDER BY seq", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]events.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *EventsRepo) FindOne(ctx context.Context, q events.Query) (events.Event, error) {
	cond, args := where(q)

	row := r.db.QueryRowContext(ctx, "SELECT "+eventColumns+" FROM eventos"+cond+" LIMIT 1", args...)
	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return events.Event{}, errdef.NewNotFound("evento %q not found", q.ID)
		}
		return events.Event{}, err
	}
	return e, nil
}

// Save hace upsert por id. Sin id, genera uno nuevo.
func (r *EventsRepo) Save(ctx context.Context, e events.Event) (events.Event, error) {
	if strings.TrimSpace(e.ID) == "" {
		e.ID = uuid.NewString()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO eventos (`+eventColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT (id) DO UPDATE SET -- creador no se reasigna
			titulo         = EXCLUDED.titulo,
			descripcion    = EXCLUDED.descripcion,
			fecha_creacion = EXCLUDED.fecha_creacion,
			fecha_evento   = EXCLUDED.fecha_evento,
			lugar_evento   = EXCLUDED.lugar_evento,
			enabled        = EXCLUDED.enabled,
			picture        = EXCLUDED.picture
	`,
		e.ID,
		e.Title,
		e.Description,
		e.SavedAt,
		e.EventDate,
		e.Venue,
		e.OwnerID,
		e.Enabled,
		e.Picture,
	)
	if err != nil {
		return events.Event{}, err
	}
	return e, nil
}
