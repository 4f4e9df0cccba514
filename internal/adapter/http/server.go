package adapthttp

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"nutriplan/internal/app"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	recs        *app.RecommendationService
	catalog     *app.CatalogService
	authSvc     *app.AuthService
	oidcConfig  OIDCConfig
	tools       http.Handler
	webDir      string
	corsOrigins []string
	disableAuth bool
	forwardAuth bool
}

// New creates a Server wired to the given application services. An empty
// webDir serves the API only.
func New(recs *app.RecommendationService, cat *app.CatalogService, authSvc *app.AuthService, webDir string) *Server {
	return &Server{recs: recs, catalog: cat, authSvc: authSvc, webDir: webDir}
}

// WithoutAuth disables authentication. Every request runs as the local user.
func (s *Server) WithoutAuth() *Server {
	s.disableAuth = true
	return s
}

// WithForwardAuth trusts the Remote-User header. Only enable it behind a
// proxy that strips the header from client requests.
func (s *Server) WithForwardAuth() *Server {
	s.forwardAuth = true
	return s
}

// WithOIDC enables single sign-on through the given provider.
func (s *Server) WithOIDC(cfg OIDCConfig) *Server {
	s.oidcConfig = cfg
	return s
}

// WithCORS allows cross-origin requests from origins. An empty list keeps
// the API same-origin only.
func (s *Server) WithCORS(origins []string) *Server {
	s.corsOrigins = origins
	return s
}

// WithTools mounts a tool-call endpoint at /mcp. The handler checks the
// method itself.
func (s *Server) WithTools(h http.Handler) *Server {
	s.tools = h
	return s
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	// Keep unmatched API requests away from the SPA fallback.
	api.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, errors.New("not found"))
	})
	route(api, "/health", http.MethodGet, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	}))

	route(api, "/calculate", http.MethodPost, s.optionalUser(http.HandlerFunc(s.handleCalculate)))
	route(api, "/recommendations/recent", http.MethodGet, s.authMiddleware(http.HandlerFunc(s.handleRecommendationsRecent)))
	route(api, "/recommendations/undo-last", http.MethodPost, s.authMiddleware(http.HandlerFunc(s.handleRecommendationsUndoLast)))

	route(api, "/diets", http.MethodGet, http.HandlerFunc(s.handleDiets))
	route(api, "/diets/{goal}", http.MethodGet, http.HandlerFunc(s.handleDiet))
	route(api, "/foods", http.MethodGet, http.HandlerFunc(s.handleFoods))
	route(api, "/foods/{category}", http.MethodGet, http.HandlerFunc(s.handleFoodCategory))

	route(api, "/auth/setup", http.MethodPost, http.HandlerFunc(s.handleSetupUser))
	route(api, "/auth/login", http.MethodPost, http.HandlerFunc(s.handleLogin))
	route(api, "/auth/logout", http.MethodPost, http.HandlerFunc(s.handleLogout))
	route(api, "/auth/config", http.MethodGet, http.HandlerFunc(s.handleConfig))
	route(api, "/auth/sso/login", http.MethodGet, http.HandlerFunc(s.handleSSOLogin))
	route(api, "/auth/sso/callback", http.MethodGet, http.HandlerFunc(s.handleSSOCallback))

	if s.tools != nil {
		r.Handle("/mcp", s.tools)
	}

	if s.webDir != "" {
		r.PathPrefix("/").Handler(spaFromDisk(s.webDir))
	} else {
		r.NotFoundHandler = api.NotFoundHandler
	}

	var h http.Handler = withNoCache(r)
	if len(s.corsOrigins) > 0 {
		h = cors.New(cors.Options{
			AllowedOrigins:   s.corsOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders:   []string{"Content-Type", "Authorization"},
			AllowCredentials: true,
		}).Handler(h)
	}
	return s.loggingMiddleware(h)
}

// route registers h for method on path and answers every other method with
// 405. Without the second registration mux lets a later catch-all claim the
// request and the method mismatch is lost.
func route(r *mux.Router, path, method string, h http.Handler) {
	r.Handle(path, h).Methods(method)
	r.Handle(path, methodNotAllowed)
}

var methodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
})
