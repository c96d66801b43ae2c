package http

import (
	"net/http"

	"github.com/MKhiriev/meds-gateway/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.root)
		r.Get("/health", h.health)
		r.Get("/version", h.getServerVersion)

		r.Get("/greet", h.greetByQuery)
		r.Post("/greet", h.greetByBody)

		r.Get("/math", h.mathIndex)
		r.Post("/math/add", h.mathAdd)
		r.Post("/math/multiply", h.mathMultiply)
	})

	// routes with HTTP Basic authorization
	router.Group(func(r chi.Router) {
		r.Use(h.basicAuth)
		r.Get("/meds", h.getMedications)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}
