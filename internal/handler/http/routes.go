package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withRequestID, h.withLogging)

	router.Route("/users", func(r chi.Router) {
		r.Get("/", h.listUsers)
		r.Post("/", h.createUser)
		r.Get("/{id}", h.getUser)
		r.Put("/{id}", h.updateUser)
		r.Delete("/{id}", h.deleteUser)
	})

	router.Route("/channels", func(r chi.Router) {
		r.Get("/", h.listChannels)
		r.Post("/", h.createChannel)
		r.Get("/{id}", h.getChannel)
		r.Put("/{id}", h.updateChannel)
		r.Delete("/{id}", h.deleteChannel)
	})

	router.Route("/user-channels", func(r chi.Router) {
		r.Get("/", h.listUserChannels)
		r.Post("/", h.createUserChannel)
		r.Get("/{id}", h.getUserChannel)
		r.Put("/{id}", h.updateUserChannel)
		r.Delete("/{id}", h.deleteUserChannel)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))
	router.NotFound(notFound)

	return router
}
