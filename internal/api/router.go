package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/echovoice/echovoice/internal/api/handlers"
	"github.com/echovoice/echovoice/internal/api/middleware"
	"github.com/echovoice/echovoice/internal/cache"
	"github.com/echovoice/echovoice/internal/config"
	"github.com/echovoice/echovoice/internal/tts"
)

type Router struct {
	mux         *chi.Mux
	cfg         *config.Config
	svc         *tts.Service
	audioCache  *cache.AudioCache
	redis       *redis.Client
	engineReady func() bool
}

// NewRouter wires the synthesis service and its collaborators into route
// handlers. engineReady reports the synthesizer binary's availability for
// status reporting; pass nil when the engine has no meaningful probe.
func NewRouter(cfg *config.Config, svc *tts.Service, audioCache *cache.AudioCache, rdb *redis.Client, engineReady func() bool) *Router {
	return &Router{
		mux:         chi.NewRouter(),
		cfg:         cfg,
		svc:         svc,
		audioCache:  audioCache,
		redis:       rdb,
		engineReady: engineReady,
	}
}

func (rt *Router) Setup() http.Handler {
	r := rt.mux

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(rt.cfg.CORS.AllowedOrigins))

	rl := middleware.NewRateLimiter(100, 200)
	r.Use(rl.Limit)

	// Health endpoints
	health := handlers.NewHealthHandler(rt.redis)
	r.Get("/health", health.Health)
	r.Get("/healthz", health.Healthz)
	r.Get("/readyz", health.Readyz)

	speech := handlers.NewSpeechHandler(rt.svc, rt.audioCache)
	catalog := handlers.NewCatalogHandler(rt.svc.EngineName(), rt.engineReady)

	// OpenAI-compatible surface
	r.Route("/v1", func(r chi.Router) {
		r.Post("/audio/speech", speech.Create)
		r.Get("/models", catalog.Models)
		r.Get("/voices", catalog.Voices)
	})

	// Service-specific endpoints
	r.Route("/api", func(r chi.Router) {
		r.Get("/languages", catalog.Languages)
		r.Get("/status", catalog.Status)
	})

	r.NotFound(jsonError(http.StatusNotFound, "Endpoint not found"))
	r.MethodNotAllowed(jsonError(http.StatusMethodNotAllowed, "Method not allowed"))

	return r
}

func jsonError(status int, msg string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(`{"error":"` + msg + `"}`))
	}
}
