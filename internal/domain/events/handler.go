package events

import (
	"net/http"
	"strings"
	"time"

	"pet-events/internal/domain/images"
	"pet-events/internal/errdef"
	"pet-events/internal/middleware"
	"pet-events/internal/platform/logger"
	"pet-events/internal/platform/respond"
	"pet-events/internal/platform/validation"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta las rutas de eventos. r ya debe exigir usuario logueado.
func RegisterRoutes(r chi.Router, svc *Service, imagesSvc *images.Service, log logger.Logger) {
	// /v1/eventos es el path histórico; el frontend usa /v1/evento.
	for _, base := range []string{"/v1/evento", "/v1/eventos"} {
		r.Get(base, listEventosHandler(svc, log))
		r.Post(base, createEventoHandler(svc, log))
	}

	r.Route("/v1/evento/{eventoID}", func(er chi.Router) {
		er.Get("/", getEventoHandler(svc, log))
		er.Post("/", updateEventoHandler(svc, log))
		er.Delete("/", removeEventoHandler(svc, log))

		er.Get("/picture", getPictureHandler(svc, log))
		er.Post("/picture", updatePictureHandler(svc, imagesSvc, log))
	})
}

// eventoRequest es el cuerpo para crear o actualizar un evento.
// Los campos vacíos no se modifican.
type eventoRequest struct {
	Titulo      string `json:"titulo" validate:"max=256"`
	Descripcion string `json:"descripcion" validate:"max=1024"`
	FechaEvento string `json:"fechaEvento"`
	LugarEvento string `json:"lugarEvento"`
}

// maxEventoBodyBytes alcanza de sobra para titulo + descripcion en UTF-8.
const maxEventoBodyBytes = 64 << 10

// trimmed recorta espacios antes de validar, igual que hace el service al guardar.
func (req eventoRequest) trimmed() eventoRequest {
	return eventoRequest{
		Titulo:      strings.TrimSpace(req.Titulo),
		Descripcion: strings.TrimSpace(req.Descripcion),
		FechaEvento: strings.TrimSpace(req.FechaEvento),
		LugarEvento: strings.TrimSpace(req.LugarEvento),
	}
}

func (req eventoRequest) patch() Patch {
	return Patch{
		Title:       req.Titulo,
		Description: req.Descripcion,
		EventDate:   req.FechaEvento,
		Venue:       req.LugarEvento,
	}
}

// eventoSummary es el item del listado.
type eventoSummary struct {
	ID          string `json:"id"`
	Titulo      string `json:"titulo"`
	Descripcion string `json:"descripcion"`
	FechaEvento string `json:"fechaEvento"`
	LugarEvento string `json:"lugarEvento"`
	Picture     string `json:"picture,omitempty"`
}

// eventoResponse es la proyección completa de un evento.
type eventoResponse struct {
	ID            string    `json:"id"`
	Titulo        string    `json:"titulo"`
	Descripcion   string    `json:"descripcion"`
	FechaCreacion time.Time `json:"fechaCreacion"`
	FechaEvento   string    `json:"fechaEvento"`
	LugarEvento   string    `json:"lugarEvento"`
	Creador       string    `json:"creador"`
	Picture       string    `json:"picture"`
}

type idResponse struct {
	ID string `json:"id"`
}

type pictureRequest struct {
	Image string `json:"image" validate:"required"`
}

type pictureResponse struct {
	Picture string `json:"picture"`
}

// listEventosHandler godoc
// @Summary Listar eventos
// @Description Lista los eventos habilitados del usuario actual.
// @Tags eventos
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Success 200 {array} eventoSummary
// @Failure 401 {object} map[string]string "unauthorized"
// @Router /v1/evento [get]
func listEventosHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.FindByOwner(r.Context(), middleware.UserID(r.Context()))
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}

		out := make([]eventoSummary, 0, len(items))
		for _, e := range items {
			out = append(out, toSummary(e))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

// createEventoHandler godoc
// @Summary Crear evento
// @Description Crea un evento cuyo creador es el usuario actual. Devuelve el id asignado.
// @Tags eventos
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body eventoRequest true "Datos del evento"
// @Success 200 {object} idResponse
// @Failure 400 {object} errdef.ValidationError "errores por campo"
// @Failure 401 {object} map[string]string "unauthorized"
// @Router /v1/evento [post]
func createEventoHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := decodeEvento(w, r)
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}

		e, err := svc.Reconcile(r.Context(), "", middleware.UserID(r.Context()), req.patch())
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}

		log.Info("evento creado", map[string]any{"evento_id": e.ID, "user_id": e.OwnerID})
		respond.JSON(w, http.StatusOK, idResponse{ID: e.ID})
	}
}

// getEventoHandler godoc
// @Summary Buscar evento
// @Description Busca un evento del usuario actual por id. Un evento de otro usuario o eliminado da 404.
// @Tags eventos
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param eventoID path string true "ID del evento"
// @Success 200 {object} eventoResponse
// @Failure 401 {object} map[string]string "unauthorized"
// @Failure 404 {object} map[string]string "not found"
// @Router /v1/evento/{eventoID} [get]
func getEventoHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e, err := svc.FindByID(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "eventoID"))
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}
		respond.JSON(w, http.StatusOK, toResponse(e))
	}
}

// updateEventoHandler godoc
// @Summary Actualizar evento
// @Description Actualiza los campos enviados de un evento del usuario actual; los que no vienen se conservan.
// @Tags eventos
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param eventoID path string true "ID del evento"
// @Param payload body eventoRequest true "Campos a actualizar"
// @Success 200 {object} eventoResponse
// @Failure 400 {object} errdef.ValidationError "errores por campo"
// @Failure 401 {object} map[string]string "unauthorized"
// @Failure 404 {object} map[string]string "not found"
// @Router /v1/evento/{eventoID} [post]
func updateEventoHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := decodeEvento(w, r)
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}

		e, err := svc.Reconcile(r.Context(), chi.URLParam(r, "eventoID"), middleware.UserID(r.Context()), req.patch())
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}
		respond.JSON(w, http.StatusOK, toResponse(e))
	}
}

// removeEventoHandler godoc
// @Summary Eliminar evento
// @Description Elimina (soft delete) un evento del usuario actual.
// @Tags eventos
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param eventoID path string true "ID del evento"
// @Success 200
// @Failure 401 {object} map[string]string "unauthorized"
// @Failure 404 {object} map[string]string "not found"
// @Router /v1/evento/{eventoID} [delete]
func removeEventoHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventoID := chi.URLParam(r, "eventoID")
		if err := svc.Remove(r.Context(), middleware.UserID(r.Context()), eventoID); err != nil {
			respond.Error(w, r, log, err)
			return
		}

		log.Info("evento eliminado", map[string]any{"evento_id": eventoID})
		w.WriteHeader(http.StatusOK)
	}
}

// getPictureHandler godoc
// @Summary Foto del evento
// @Description Devuelve el id de la imagen asociada al evento (vacío si no tiene).
// @Tags eventos
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param eventoID path string true "ID del evento"
// @Success 200 {object} pictureResponse
// @Failure 404 {object} map[string]string "not found"
// @Router /v1/evento/{eventoID}/picture [get]
func getPictureHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e, err := svc.FindByID(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "eventoID"))
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}
		respond.JSON(w, http.StatusOK, pictureResponse{Picture: e.Picture})
	}
}

// updatePictureHandler godoc
// @Summary Subir foto del evento
// @Description Guarda la imagen (base64 o data URL) y la asocia al evento. Devuelve el id de la imagen.
// @Tags eventos
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param eventoID path string true "ID del evento"
// @Param payload body pictureRequest true "Imagen en base64"
// @Success 200 {object} idResponse
// @Failure 400 {object} errdef.ValidationError "imagen inválida"
// @Failure 404 {object} map[string]string "not found"
// @Router /v1/evento/{eventoID}/picture [post]
func updatePictureHandler(svc *Service, imagesSvc *images.Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.UserID(r.Context())
		eventoID := chi.URLParam(r, "eventoID")

		// Primero el evento, para no dejar imágenes huérfanas.
		if _, err := svc.FindByID(r.Context(), userID, eventoID); err != nil {
			respond.Error(w, r, log, err)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, imagesSvc.MaxRequestBytes())

		var req pictureRequest
		if err := decodeValid(r, &req); err != nil {
			if errdef.IsTooLarge(err) {
				err = errdef.NewValidation("image", "La imagen es demasiado grande.")
			}
			respond.Error(w, r, log, err)
			return
		}

		img, err := imagesSvc.Create(r.Context(), req.Image)
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}

		if _, err := svc.UpdatePicture(r.Context(), userID, eventoID, img.ID); err != nil {
			respond.Error(w, r, log, err)
			return
		}

		respond.JSON(w, http.StatusOK, idResponse{ID: img.ID})
	}
}

func decodeEvento(w http.ResponseWriter, r *http.Request) (eventoRequest, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxEventoBodyBytes)

	var req eventoRequest
	if err := respond.Decode(r, &req); err != nil {
		return eventoRequest{}, err
	}
	req = req.trimmed()
	if err := validation.Struct(req); err != nil {
		return eventoRequest{}, err
	}
	return req, nil
}

func decodeValid(r *http.Request, dst any) error {
	if err := respond.Decode(r, dst); err != nil {
		return err
	}
	return validation.Struct(dst)
}

func toSummary(e Event) eventoSummary {
	return eventoSummary{
		ID:          e.ID,
		Titulo:      e.Title,
		Descripcion: e.Description,
		FechaEvento: e.EventDate,
		LugarEvento: e.Venue,
		Picture:     e.Picture,
	}
}

func toResponse(e Event) eventoResponse {
	return eventoResponse{
		ID:            e.ID,
		Titulo:        e.Title,
		Descripcion:   e.Description,
		FechaCreacion: e.SavedAt,
		FechaEvento:   e.EventDate,
		LugarEvento:   e.Venue,
		Creador:       e.OwnerID,
		Picture:       e.Picture,
	}
}
