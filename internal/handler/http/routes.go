package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/", h.index)

	// every other route needs the application key
	router.Group(func(r chi.Router) {
		r.Use(h.withAppKey)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.register)
			r.Post("/login", h.login)
			r.Post("/check", h.check)
			r.Post("/activate/{user}", h.activate)
		})

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/properties", h.listProperties)
			r.Post("/properties", h.createProperty)
			r.Put("/properties/{property}", h.updateProperty)
			r.Delete("/properties/{property}", h.deleteProperty)

			r.With(h.admin).Post("/users", h.createUser)
			r.Route("/users/{user}", func(r chi.Router) {
				r.Put("/", h.updateUser)
				r.Delete("/", h.softDeleteUser)
				r.Get("/notifications", h.userNotifications)
				r.Get("/properties", h.userProperties)

				r.With(h.admin).Post("/admin", h.toggleAdmin)
				r.With(h.admin).Delete("/destroy", h.destroyUser)
			})
		})
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	return router
}
