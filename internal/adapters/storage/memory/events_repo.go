package memory

import (
	"context"
	"sync"

	"pet-events/internal/domain/events"
	"pet-events/internal/errdef"

	"github.com/google/uuid"
)

type eventRepo struct {
	mu    sync.RWMutex
	byID  map[string]events.Event
	order []string // orden de inserción, es el "orden natural" del store
}

func NewEventRepo() events.Repository {
	return &eventRepo{
		byID: make(map[string]events.Event),
	}
}

func matches(e events.Event, q events.Query) bool {
	if q.ID != "" && e.ID != q.ID {
		return false
	}
	if q.OwnerID != "" && e.OwnerID != q.OwnerID {
		return false
	}
	if q.OnlyEnabled && !e.Enabled {
		return false
	}
	return true
}

func (r *eventRepo) Find(ctx context.Context, q events.Query) ([]events.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]events.Event, 0)
	for _, id := range r.order {
		if e := r.byID[id]; matches(e, q) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *eventRepo) FindOne(ctx context.Context, q events.Query) (events.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if q.ID != "" {
		if e, ok := r.byID[q.ID]; ok && matches(e, q) {
			return e, nil
		}
		return events.Event{}, errdef.NewNotFound("evento %q not found", q.ID)
	}

	for _, id := range r.order {
		if e := r.byID[id]; matches(e, q) {
			return e, nil
		}
	}
	return events.Event{}, errdef.NewNotFound("evento not found")
}

func (r *eventRepo) Save(ctx context.Context, e events.Event) (events.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if _, exists := r.byID[e.ID]; !exists {
		r.order = append(r.order, e.ID)
	}
	r.byID[e.ID] = e
	return e, nil
}
