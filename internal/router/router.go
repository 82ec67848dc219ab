package router

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"pet-shelter/internal/adapters/metrics"
	mem "pet-shelter/internal/adapters/storage/memory"
	_ "pet-shelter/internal/docs"
	"pet-shelter/internal/domain/pets"
	"pet-shelter/internal/middleware"
	"pet-shelter/internal/platform/logger"
)

type Options struct {
	// Opcional: si no viene, in-memory.
	Repo pets.Repository

	// Opcionales: por defecto logger Nop y registry propio.
	Logger   logger.Logger
	Registry *prometheus.Registry
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	repo := opts.Repo
	if repo == nil {
		repo = mem.NewPetRepo()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	petsSvc := pets.NewService(repo)

	// Observers: log de cambios + métricas
	changeLog := log.With(map[string]any{"component": "pets"})
	petsSvc.Subscribe(pets.ObserverFunc(func(_ context.Context, c pets.Change) {
		changeLog.Info("pets changed", map[string]any{
			"op":     string(c.Op),
			"pet_id": c.ID,
			"rows":   c.Rows,
		})
	}))
	if m, err := metrics.NewPetsMetrics(reg); err == nil {
		petsSvc.Subscribe(m)
	} else {
		log.Warn("pets metrics disabled", map[string]any{"error": err.Error()})
	}

	pets.RegisterRoutes(r, petsSvc)

	return r
}
