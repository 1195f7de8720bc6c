package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/hpc-dispatch/internal/transport/middleware"
)

// Handlers groups everything NewRouter mounts.
type Handlers struct {
	System   *SystemHandler
	Dispatch *DispatchHandler
	Shelf    *ShelfHandler
	Report   *ReportHandler
}

// NewRouter mounts the API. global wraps every route; auth guards all but
// the system endpoints.
func NewRouter(h Handlers, global, auth middleware.Middleware) http.Handler {
	r := chi.NewRouter()
	r.Use(global)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
	})

	r.Get("/", h.System.Root)
	r.Get("/plug", h.System.Plug)
	r.Get("/health", h.System.Health)
	r.Get("/live", h.System.Live)
	r.Get("/ready", h.System.Ready)

	r.Group(func(r chi.Router) {
		r.Use(auth)

		r.Route("/dispatches", func(r chi.Router) {
			r.Post("/", h.Dispatch.Create)
			r.Get("/", h.Report.List)
			r.Get("/stats/my", h.Report.MyStats)
			r.Get("/stats/system", h.Report.SystemStats)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Dispatch.Get)
				r.Put("/", h.Dispatch.Update)
				r.Delete("/", h.Dispatch.Delete)
				r.Post("/send", h.Dispatch.Send)
				r.Put("/status", h.Dispatch.UpdateStatus)
				r.Post("/comments", h.Dispatch.Comment)
				r.Post("/forward", h.Dispatch.Forward)
			})
		})

		r.Route("/shelves", func(r chi.Router) {
			r.Post("/", h.Shelf.Create)
			r.Get("/", h.Shelf.List)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Shelf.Get)
				r.Put("/", h.Shelf.Update)
				r.Delete("/", h.Shelf.Delete)
				r.Post("/dispatches/{dispatchID}", h.Shelf.AddDispatch)
				r.Delete("/dispatches/{dispatchID}", h.Shelf.RemoveDispatch)
			})
		})

		r.With(middleware.RequireAdmin).Get("/admin/dispatches", h.Report.AdminList)
	})

	return r
}
