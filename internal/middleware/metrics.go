package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis command errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "photorank_redis_error_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// PhotosUploaded counts successfully stored photos.
	PhotosUploaded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "photorank_photos_uploaded_total",
		Help: "Total number of photos uploaded",
	})

	// RatingsRecorded counts successfully appended ratings.
	RatingsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "photorank_ratings_recorded_total",
		Help: "Total number of photo ratings recorded",
	})
)

// InitMetrics creates the Prometheus HTTP middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware wraps the Prometheus middleware as a Fiber handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
