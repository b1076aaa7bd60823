package router

import (
	"net/http"

	mem "pet-events/internal/adapters/storage/memory"
	_ "pet-events/internal/docs"
	"pet-events/internal/domain/events"
	"pet-events/internal/domain/images"
	"pet-events/internal/middleware"
	"pet-events/internal/platform/logger"
	"pet-events/internal/platform/metrics"
	"pet-events/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcionales: si vienen nil, in-memory.
	Events events.Repository
	Images images.Repository

	Logger logger.Logger

	RequireFutureDate bool
	ImageMaxBytes     int64 // 0 => images.DefaultMaxBytes
	CORSOrigins       []string
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	eventRepo := opts.Events
	if eventRepo == nil {
		eventRepo = mem.NewEventRepo()
	}
	imageRepo := opts.Images
	if imageRepo == nil {
		imageRepo = mem.NewImageRepo()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.DebugUserHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	// AuthContext va antes que RequestLog para que el log vea el user_id.
	r.Use(middleware.AuthContext(opts.AuthVerifier))
	r.Use(middleware.RequestLog(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Services por módulo
	eventsSvc := events.NewService(eventRepo, events.Options{RequireFutureDate: opts.RequireFutureDate})
	imagesSvc := images.NewService(imageRepo, opts.ImageMaxBytes)

	// Rutas por módulo
	images.RegisterRoutes(r, imagesSvc, log)

	r.Group(func(pr chi.Router) {
		pr.Use(middleware.RequireUser)
		events.RegisterRoutes(pr, eventsSvc, imagesSvc, log)
	})

	return r
}
