package api

import (
	"net/http"

	"github.com/GYRAG/beetkar-hub/api/resources"
	"github.com/GYRAG/beetkar-hub/internal/service"
	"github.com/gorilla/mux"
)

type Router struct {
	router    *mux.Router
	resources *resources.Resources
}

func NewRouter(svc *service.Service) *Router {
	r := &Router{
		router:    mux.NewRouter(),
		resources: resources.NewResources(svc),
	}

	r.setupRoutes()
	return r
}

func (r *Router) setupRoutes() {
	readings := r.resources.Readings

	// Sensor data
	r.router.HandleFunc("/api/sensor-data", readings.IngestReading).Methods(http.MethodPost)
	r.router.HandleFunc("/api/sensor-data/latest", readings.GetLatestReading).Methods(http.MethodGet)
	r.router.HandleFunc("/api/sensor-data/history", readings.GetHistory).Methods(http.MethodGet)

	// Liveness
	r.router.HandleFunc("/health", readings.HealthCheck).Methods(http.MethodGet)
	r.router.HandleFunc("/", readings.HealthCheck).Methods(http.MethodGet)

	// Everything else, including known paths with the wrong method,
	// answers with the generic not-found envelope.
	r.router.NotFoundHandler = http.HandlerFunc(readings.NotFound)
	r.router.MethodNotAllowedHandler = http.HandlerFunc(readings.NotFound)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}
