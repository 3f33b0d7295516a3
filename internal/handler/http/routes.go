package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/token", h.login)
		r.Post("/api/accounts", h.registerAccount)
		r.Get("/api/accounts", h.listAccounts)
		r.Get("/api/accounts/{id}", h.getAccount)
	})

	// routes requiring an authenticated principal
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Put("/api/accounts/{id}", h.updateAccount)
		r.Delete("/api/accounts/{id}", h.deleteAccount)

		r.Post("/api/records", h.createRecord)
		r.Get("/api/records", h.listRecords)
		r.Get("/api/records/{id}", h.getRecord)
		r.Put("/api/records/{id}", h.updateRecord)
		r.Delete("/api/records/{id}", h.deleteRecord)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
