package httpserver

import (
	"net/http"
	"time"

	"chapter-app-go/internal/config"
	"chapter-app-go/internal/transport/httpserver/handler"
	appmw "chapter-app-go/internal/transport/httpserver/middleware"
	"chapter-app-go/pkg/logger"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires the HTTP surface. Every resource is reachable under its
// canonical /api path and under the legacy alias the first frontend used;
// both hit the same handler.
func NewRouter(cfg config.Config, handlers *handler.Handlers, log logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(appmw.NewRequestLogger(log))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(appmw.NewCORS(cfg.CORSAllowedOrigins))
	r.Use(appmw.NewMetrics())

	r.Get("/health", handlers.Health)
	r.Get("/api/health", handlers.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/users", handlers.CreateUser)
		r.Get("/users/{dni}", handlers.GetUser)
		r.Get("/chapters", handlers.ListChapters)

		r.Get("/tematicas", handlers.ListTopics)
		r.Post("/tematicas", handlers.CreateTopic)

		r.Post("/activities", handlers.CreateActivity)
		r.Get("/activities", handlers.ListActivities)
		r.Put("/activities/{id}", handlers.LinkActivity)
		r.Patch("/activities/{id}", handlers.PatchActivity)
	})

	// Legacy aliases, kept verbatim so old clients keep working.
	r.Post("/user", handlers.CreateUser)
	r.Get("/user/{dni}", handlers.GetUser)

	r.Get("/propuestas", handlers.ListTopics)
	r.Post("/propuestas", handlers.CreateTopic)

	r.Post("/actividades", handlers.CreateActivity)
	r.Get("/actividades", handlers.ListActivities)
	r.Put("/actividades/{id}", handlers.LinkActivity)
	r.Patch("/actividades/{id}", handlers.PatchActivity)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Not found"}`))
	})

	return r
}
