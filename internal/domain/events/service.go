package events

import (
	"context"
	"strings"
	"time"

	"pet-events/internal/errdef"
)

type Options struct {
	// RequireFutureDate rechaza fechaEvento anteriores a hoy.
	RequireFutureDate bool
}

type Service struct {
	repo Repository
	now  func() time.Time

	requireFutureDate bool
}

func NewService(repo Repository, opts Options) *Service {
	return &Service{
		repo:              repo,
		now:               time.Now,
		requireFutureDate: opts.RequireFutureDate,
	}
}

// FindByOwner lista los eventos habilitados del usuario. Nunca devuelve nil.
func (s *Service) FindByOwner(ctx context.Context, ownerID string) ([]Event, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return []Event{}, nil
	}

	out, err := s.repo.Find(ctx, Query{OwnerID: ownerID, OnlyEnabled: true})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []Event{}
	}
	return out, nil
}

// FindByID busca un evento del usuario. Si no es suyo o está borrado es NotFound.
func (s *Service) FindByID(ctx context.Context, ownerID, eventID string) (Event, error) {
	ownerID = strings.TrimSpace(ownerID)
	eventID = strings.TrimSpace(eventID)
	if ownerID == "" || eventID == "" {
		return Event{}, errdef.NewNotFound("evento %q not found", eventID)
	}

	return s.repo.FindOne(ctx, Query{
		ID:          eventID,
		OwnerID:     ownerID,
		OnlyEnabled: true,
	})
}

// Reconcile crea (eventID vacío) o actualiza un evento.
// Solo se pisan los campos presentes en el patch.
func (s *Service) Reconcile(ctx context.Context, eventID, ownerID string, p Patch) (Event, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return Event{}, errdef.NewUnauthorized("owner required")
	}

	var current Event
	if strings.TrimSpace(eventID) != "" {
		found, err := s.FindByID(ctx, ownerID, eventID)
		if err != nil {
			return Event{}, err
		}
		current = found
	} else {
		current = Event{
			OwnerID: ownerID,
			Enabled: true,
		}
	}

	p = trimPatch(p)
	if err := s.validatePatch(p); err != nil {
		return Event{}, err
	}

	applyPatch(&current, p)

	if err := validateRecord(current); err != nil {
		return Event{}, err
	}

	return s.save(ctx, current)
}

// Remove hace soft delete. Un segundo Remove sobre el mismo id da NotFound.
func (s *Service) Remove(ctx context.Context, ownerID, eventID string) error {
	e, err := s.FindByID(ctx, ownerID, eventID)
	if err != nil {
		return err
	}

	e.Enabled = false
	_, err = s.save(ctx, e)
	return err
}

// UpdatePicture asocia una imagen ya guardada al evento, sin tocar el resto.
func (s *Service) UpdatePicture(ctx context.Context, ownerID, eventID, imageID string) (Event, error) {
	e, err := s.FindByID(ctx, ownerID, eventID)
	if err != nil {
		return Event{}, err
	}
	if err := validatePicture(imageID); err != nil {
		return Event{}, err
	}

	e.Picture = strings.TrimSpace(imageID)
	return s.save(ctx, e)
}

// save estampa SavedAt y persiste. Es el único lugar donde se toca SavedAt.
func (s *Service) save(ctx context.Context, e Event) (Event, error) {
	e.SavedAt = s.now()
	return s.repo.Save(ctx, e)
}

func trimPatch(p Patch) Patch {
	return Patch{
		Title:       strings.TrimSpace(p.Title),
		Description: strings.TrimSpace(p.Description),
		EventDate:   strings.TrimSpace(p.EventDate),
		Venue:       strings.TrimSpace(p.Venue),
	}
}

func applyPatch(e *Event, p Patch) {
	if p.Title != "" {
		e.Title = p.Title
	}
	if p.Description != "" {
		e.Description = p.Description
	}
	if p.EventDate != "" {
		e.EventDate = p.EventDate
	}
	if p.Venue != "" {
		e.Venue = p.Venue
	}
}
