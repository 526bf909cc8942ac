package router

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/raddit-dev/raddit/internal/middleware"
	"github.com/raddit-dev/raddit/internal/setup"
)

// New creates and configures a new mux router with all the routes.
func New(deps *setup.Dependencies) *mux.Router {
	r := mux.NewRouter()

	// Enable gzip compression for all responses
	r.Use(handlers.CompressHandler)

	// setup CORS for browser clients
	r.Use(handlers.CORS(
		handlers.AllowedOrigins([]string{"http://localhost:3000"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	))

	r.Use(middleware.RequestId)
	r.Use(middleware.Metrics)

	// Add a wildcard OPTIONS handler to avoid 404s for preflight requests
	r.Methods("OPTIONS").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	h := deps.Handler

	r.HandleFunc("/health", h.Health).Methods("GET")
	r.HandleFunc("/ready", h.Ready).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	v1 := r.PathPrefix("/v1").Subrouter()
	// Every request carries a user: a decoded token or the anonymous fallback.
	v1.Use(deps.AuthMiddleware.WithUser())

	v1.HandleFunc("/threads", h.ListThreads).Methods("GET")
	v1.HandleFunc("/threads", h.CreateThread).Methods("POST")
	v1.HandleFunc("/threads/{thread}", h.GetThread).Methods("GET")
	v1.HandleFunc("/threads/{thread}", h.DeleteThread).Methods("DELETE")
	v1.HandleFunc("/threads/{thread}/lock", h.ToggleThreadLock).Methods("POST")
	v1.HandleFunc("/threads/{thread}/comments", h.ListComments).Methods("GET")
	v1.HandleFunc("/threads/{thread}/comments", h.CreateComment).Methods("POST")
	v1.HandleFunc("/comments/{comment}/visibility", h.ToggleCommentVisibility).Methods("POST")
	v1.HandleFunc("/tags", h.ListTags).Methods("GET")

	return r
}
