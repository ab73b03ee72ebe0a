// internal/api/server.go
package api

import (
	"net/http"

	"welfare-moa/internal/cache"
	"welfare-moa/internal/catalog"
	"welfare-moa/internal/common/errors"
	"welfare-moa/internal/common/logger"
	"welfare-moa/internal/engine"
	"welfare-moa/internal/store"
	"welfare-moa/internal/survey"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server exposes the recommendation engine over HTTP. Cache and store
// are optional; when nil the service still answers, it just recomputes
// every request and keeps nothing.
type Server struct {
	engine   *engine.Engine
	catalog  *catalog.Store
	bank     *survey.Bank
	cache    *cache.ResultCache
	profiles *store.ProfileStore
	errors   *errors.ErrorHandler
	logger   logger.Logger
}

func NewServer(
	eng *engine.Engine,
	cat *catalog.Store,
	bank *survey.Bank,
	resultCache *cache.ResultCache,
	profiles *store.ProfileStore,
	log logger.Logger,
) *Server {
	return &Server{
		engine:   eng,
		catalog:  cat,
		bank:     bank,
		cache:    resultCache,
		profiles: profiles,
		errors:   errors.NewErrorHandler(log),
		logger:   log.WithFields(map[string]interface{}{"component": "api"}),
	}
}

// Router builds the chi router with all routes mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/recommendations", s.handleRecommendations)
		r.Post("/responses/validate", s.handleValidateResponses)
		r.Get("/programs", s.handlePrograms)
		r.Get("/programs/{id}", s.handleProgram)
		r.Get("/questions", s.handleQuestions)
	})

	return r
}
