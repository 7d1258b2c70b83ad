package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/riandyrn/otelchi"
	"github.com/rs/cors"
)

func New(serviceName string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		Debug:            false,
	}).Handler)

	r.Use(RequestID())

	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))

	return r
}

// RequestID makes sure that every request carries an X-Request-ID,
// generating one when the caller did not supply it.
func RequestID() func(http.Handler) http.Handler {
	headerName := http.CanonicalHeaderKey("X-Request-ID")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(headerName)
			if requestID == "" {
				requestID = uuid.NewString()
				r.Header.Set(headerName, requestID)
			}

			w.Header().Set(headerName, requestID)

			next.ServeHTTP(w, r)
		})
	}
}
