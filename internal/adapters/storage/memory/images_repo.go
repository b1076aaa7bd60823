package memory

import (
	"context"
	"sync"

	"pet-events/internal/domain/images"
	"pet-events/internal/errdef"

	"github.com/google/uuid"
)

type imageRepo struct {
	mu   sync.RWMutex
	byID map[string]images.Image
}

func NewImageRepo() images.Repository {
	return &imageRepo{
		byID: make(map[string]images.Image),
	}
}

func (r *imageRepo) Create(ctx context.Context, img images.Image) (images.Image, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if img.ID == "" {
		img.ID = uuid.NewString()
	}
	// copia para que el caller no pueda mutar lo guardado
	img.Data = append([]byte(nil), img.Data...)
	r.byID[img.ID] = img
	return img, nil
}

func (r *imageRepo) GetByID(ctx context.Context, id string) (images.Image, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	img, ok := r.byID[id]
	if !ok {
		return images.Image{}, errdef.NewNotFound("image %q not found", id)
	}
	return img, nil
}
