package images

import (
	"context"
	"encoding/base64"
	"strings"
	"time"

	"pet-events/internal/errdef"
	"pet-events/internal/platform/metrics"

	"github.com/gabriel-vasile/mimetype"
)

const DefaultMaxBytes = 5 << 20 // 5MB

// envelopeBytes cubre el prefijo data URL y el JSON que envuelve la imagen.
const envelopeBytes = 4 << 10

type Service struct {
	repo     Repository
	maxBytes int64
	now      func() time.Time
}

func NewService(repo Repository, maxBytes int64) *Service {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Service{
		repo:     repo,
		maxBytes: maxBytes,
		now:      time.Now,
	}
}

// Create decodifica la imagen (base64 plano o data URL) y la guarda.
// Cualquier problema con el contenido es un error de validación sobre "image".
func (s *Service) Create(ctx context.Context, raw string) (Image, error) {
	data, err := decode(raw)
	if err != nil || len(data) == 0 {
		return Image{}, errdef.NewValidation("image", "Imagen inválida.")
	}
	if int64(len(data)) > s.maxBytes {
		return Image{}, errdef.NewValidation("image", "La imagen es demasiado grande.")
	}

	ct := mimetype.Detect(data).String()
	if !strings.HasPrefix(ct, "image/") {
		return Image{}, errdef.NewValidation("image", "Imagen inválida.")
	}

	img, err := s.repo.Create(ctx, Image{
		ContentType: ct,
		Data:        data,
		CreatedAt:   s.now(),
	})
	if err != nil {
		return Image{}, err
	}

	metrics.ImagesStoredBytes.Add(float64(img.Size()))
	return img, nil
}

// MaxRequestBytes es el tope del body de un upload: la imagen más grande aceptada
// en base64 más el envoltorio.
func (s *Service) MaxRequestBytes() int64 {
	return int64(base64.StdEncoding.EncodedLen(int(s.maxBytes))) + envelopeBytes
}

func (s *Service) GetByID(ctx context.Context, id string) (Image, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Image{}, errdef.NewNotFound("image not found")
	}
	return s.repo.GetByID(ctx, id)
}

// decode acepta "data:image/png;base64,AAAA" o "AAAA".
func decode(raw string) ([]byte, error) {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "data:") {
		if i := strings.Index(raw, ","); i >= 0 {
			raw = raw[i+1:]
		}
	}
	if b, err := base64.StdEncoding.DecodeString(raw); err == nil {
		return b, nil
	}
	return base64.RawStdEncoding.DecodeString(raw)
}
