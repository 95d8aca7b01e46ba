package main

import (
	"net/http"
	"strings"

	"yt-dashboard/internal/auth"
	"yt-dashboard/internal/config"
	"yt-dashboard/internal/stats"
)

type server struct {
	cfg      *config.Config
	sessions *auth.Sessions
	store    *stats.CachedStore
}

func (s *server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	// Public endpoints
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /login", s.handleLoginPage)
	mux.HandleFunc("POST /login", s.handleLogin)
	mux.HandleFunc("POST /logout", s.handleLogout)

	// Protected dashboard + read-only JSON APIs
	mux.HandleFunc("GET /", s.requireAuth(s.handleDashboard))
	mux.HandleFunc("GET /api/dashboard/overview", s.requireAuth(s.handleOverview))
	mux.HandleFunc("GET /api/dashboard/history", s.requireAuth(s.handleHistory))
	mux.HandleFunc("GET /api/dashboard/videos", s.requireAuth(s.handleVideos))
	mux.HandleFunc("POST /api/dashboard/refresh", s.requireAuth(s.handleRefresh))

	return mux
}

// requireAuth wraps a handler so unauthenticated page requests redirect to
// /login and unauthenticated API requests get a JSON 401.
func (s *server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := auth.GetSessionToken(r)
		if !s.sessions.Valid(token) {
			if strings.HasPrefix(r.URL.Path, "/api/") {
				jsonErr(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next(w, r)
	}
}
