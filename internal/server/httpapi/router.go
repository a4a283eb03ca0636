package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter builds the API routes behind CORS, request-id and access-log
// middleware.
func NewRouter(users Users, l logging.Logger, allowedOrigins []string) http.Handler {
	h := NewHandler(users, l)

	r := mux.NewRouter()
	r.Use(requestID, accessLog(l))

	r.HandleFunc("/users", h.CreateUser).Methods(http.MethodPost)
	r.HandleFunc("/login", h.Login).Methods(http.MethodPost)

	protected := r.PathPrefix("/users").Subrouter()
	protected.Use(bearerAuth(users))
	protected.HandleFunc("/{id:[0-9]+}", h.GetUser).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: true,
	})

	return c.Handler(r)
}
