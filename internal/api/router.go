package api

import (
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/protocol7/claudebook/internal/config"
	"github.com/protocol7/claudebook/internal/handlers"
	"github.com/protocol7/claudebook/pkg/httputil"
)

// RouterDependencies holds the dependencies required by the router setup.
type RouterDependencies struct {
	MessageHandlers *handlers.MessageHandlers
	Config          *config.Config
}

// NewRouter creates and configures the main Chi router for the application.
func NewRouter(deps RouterDependencies) *chi.Mux {
	r := chi.NewRouter()

	// --- Base Middleware Stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(Recoverer) // recover panics into the JSON 500 envelope

	// --- CORS Configuration ---
	// The API is meant for a local browser client, so origins stay open.
	// OPTIONS passes through to AllowOptions, which answers any path.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:     []string{"*"},
		AllowedMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:     []string{"Content-Type"},
		OptionsPassthrough: true,
	}))
	r.Use(AllowOptions)

	// Every unmatched (method, path) combination is a 404 error envelope.
	r.NotFound(handleNotFound)
	r.MethodNotAllowed(handleNotFound)

	// --- Message Routes ---
	r.Get("/messages", deps.MessageHandlers.HandleListMessages)
	r.Post("/messages", deps.MessageHandlers.HandleCreateMessage)
	r.Delete("/messages", deps.MessageHandlers.HandleClearMessages)
	// id must be strictly numeric; anything else falls through to 404.
	r.Delete("/messages/{id:[0-9]+}", deps.MessageHandlers.HandleDeleteMessage)

	// --- Static Assets ---
	if deps.Config != nil && deps.Config.StaticDir != "" {
		staticDir := deps.Config.StaticDir
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			http.ServeFile(w, req, filepath.Join(staticDir, "index.html"))
		})
		fileServer := http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir)))
		r.Get("/static/*", fileServer.ServeHTTP)
	}

	return r
}

func handleNotFound(w http.ResponseWriter, r *http.Request) {
	httputil.RespondError(w, http.StatusNotFound, "Not found")
}
