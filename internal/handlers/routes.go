package handlers

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Routes builds the full API surface. The path casing matches the SPA client
// exactly.
func (h *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)

		r.Group(func(r chi.Router) {
			r.Use(h.AuthMiddleware)
			r.Get("/me", h.Me)
			r.Get("/logout", h.Logout)
		})
	})

	router.Route("/api/task", func(r chi.Router) {
		r.Use(h.AuthMiddleware)
		r.Post("/createTask", h.CreateTask)
		r.Get("/getTask", h.GetTasks)
		r.Patch("/updateTask/{id}", h.UpdateTask)
		r.Delete("/deleteTask/{id}", h.DeleteTask)
	})

	router.Route("/api/admin", func(r chi.Router) {
		r.Use(h.AuthMiddleware)
		r.Use(h.AdminOnly)
		r.Get("/users", h.AdminListUsers)
	})

	return router
}
