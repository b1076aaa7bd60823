package images

import (
	"net/http"
	"strconv"

	"pet-events/internal/platform/logger"
	"pet-events/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta GET /v1/image/{imageID}. Va fuera del grupo autenticado
// porque el frontend la usa directo en <img src>.
func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Get("/v1/image/{imageID}", getImageHandler(svc, log))
}

// getImageHandler godoc
// @Summary Obtener imagen
// @Description Devuelve los bytes de una imagen subida (foto de un evento).
// @Tags images
// @Produce image/png
// @Produce image/jpeg
// @Param imageID path string true "ID de la imagen"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string "not found"
// @Router /v1/image/{imageID} [get]
func getImageHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		img, err := svc.GetByID(r.Context(), chi.URLParam(r, "imageID"))
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}

		w.Header().Set("Content-Type", img.ContentType)
		w.Header().Set("Content-Length", strconv.FormatInt(img.Size(), 10))
		w.Header().Set("Cache-Control", "private, max-age=86400")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(img.Data)
	}
}
