package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"KanbanWebService/middleware"
)

// RouterOptions carries the middleware dependencies. Nil fields switch the
// matching feature off.
type RouterOptions struct {
	Limiter  *rate.Limiter
	Metrics  *middleware.Metrics
	Gatherer prometheus.Gatherer
}

// Routes builds the router. CORS runs before routing so OPTIONS is answered
// on every path.
func (h *Handler) Routes(opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(h.log))
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Handler)
	}
	r.Use(middleware.Recoverer(h.log))
	r.Use(middleware.CORS)
	r.Use(middleware.RateLimit(opts.Limiter))

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	r.Get("/tasks", h.ListTasks)
	r.Post("/tasks", h.CreateTask)
	r.Get("/tasks/{id}", h.GetTask)
	r.Patch("/tasks/{id}", h.UpdateTask)
	r.Delete("/tasks/{id}", h.DeleteTask)

	r.Get("/teams", h.ListTeams)
	r.Post("/teams", h.CreateTeam)
	r.Get("/teams/{id}", h.GetTeam)

	r.Get("/board", h.Board)
	r.Get("/healthz", h.Health)

	if opts.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}
	return r
}
