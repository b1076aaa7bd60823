package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pet_events_http_requests_total",
			Help: "Total de requests HTTP por método, ruta y status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pet_events_http_request_duration_seconds",
			Help:    "Duración de requests HTTP en segundos",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// ImagesStoredBytes suma los bytes de imágenes aceptadas.
	ImagesStoredBytes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pet_events_images_stored_bytes_total",
			Help: "Bytes de imágenes guardadas",
		},
	)
)

func Handler() http.Handler {
	return promhttp.Handler()
}
