package images

import "context"

type Repository interface {
	// Create guarda la imagen y asigna id si viene vacío.
	Create(ctx context.Context, img Image) (Image, error)
	// GetByID devuelve errdef NotFound si no existe.
	GetByID(ctx context.Context, id string) (Image, error)
}
