// Package api serves the simulation to the external UI collaborator over
// HTTP. GET endpoints are public (read-only observation). POST endpoints
// mutate the run and require a bearer token when one is configured.
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/talgya/lifesim/internal/sim"
)

// Server exposes one simulation instance. The sim itself assumes a single
// caller, so every mutating handler runs under one coarse lock.
type Server struct {
	Sim      *sim.Sim
	Port     int
	AdminKey string // Bearer token for POST endpoints. Empty = POSTs are open (local play).

	mu sync.Mutex
}

// Handler builds the route table. Exposed separately so tests can drive the
// API without binding a port.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Read-only observation.
	mux.HandleFunc("/api/v1/status", s.handleStatus)
	mux.HandleFunc("/api/v1/decisions", s.handleDecisions)
	mux.HandleFunc("/api/v1/notices", s.handleNotices)
	mux.HandleFunc("/api/v1/achievements", s.handleAchievements)

	// Play surface.
	mux.HandleFunc("/api/v1/decision", s.adminOnly(s.handleApplyDecision))
	mux.HandleFunc("/api/v1/notice/ack", s.adminOnly(s.handleAckNotice))
	mux.HandleFunc("/api/v1/advance", s.adminOnly(s.handleAdvance))

	return corsMiddleware(mux)
}

// Start begins serving the HTTP API in a goroutine.
func (s *Server) Start() {
	addr := fmt.Sprintf(":%d", s.Port)
	slog.Info("HTTP API starting", "addr", addr, "auth", s.AdminKey != "")

	handler := s.Handler()

	go func() {
		if err := http.ListenAndServe(addr, handler); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()
}

// corsMiddleware allows browser frontends. Localhost dev servers are always
// allowed; extend via CORS_ORIGINS (comma-separated).
func corsMiddleware(next http.Handler) http.Handler {
	allowed := map[string]bool{
		"http://localhost:5173": true,
		"http://localhost:3000": true,
	}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		for _, origin := range strings.Split(env, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				allowed[origin] = true
			}
		}
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if allowed[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) checkBearerToken(r *http.Request) bool {
	auth := r.Header.Get("Authorization")
	return strings.HasPrefix(auth, "Bearer ") && strings.TrimPrefix(auth, "Bearer ") == s.AdminKey
}

// adminOnly requires bearer auth on POSTs when a key is configured.
func (s *Server) adminOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if s.AdminKey != "" && !s.checkBearerToken(r) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	snap := s.Sim.Snapshot()
	pending := s.Sim.Notices.PendingCount()
	s.mu.Unlock()

	writeJSON(w, map[string]any{
		"snapshot":        snap,
		"pending_notices": pending,
	})
}

func (s *Server) handleDecisions(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	views := s.Sim.Decisions()
	s.mu.Unlock()
	writeJSON(w, map[string]any{"decisions": views})
}

func (s *Server) handleNotices(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	pending := s.Sim.Notices.Pending()
	s.mu.Unlock()
	writeJSON(w, map[string]any{"notices": pending})
}

func (s *Server) handleAchievements(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	got := s.Sim.Achievements()
	s.mu.Unlock()
	writeJSON(w, map[string]any{"achievements": got})
}

// handleApplyDecision applies one decision by category and name.
// POST {"category": "...", "name": "..."}
func (s *Server) handleApplyDecision(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Category string `json:"category"`
		Name     string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.Sim.Find(req.Category, req.Name)
	if !ok {
		http.Error(w, "unknown decision", http.StatusNotFound)
		return
	}
	if !s.Sim.Available(d) {
		http.Error(w, "decision not available", http.StatusConflict)
		return
	}
	s.Sim.ApplyDecision(d, true)
	writeJSON(w, map[string]any{"success": true, "snapshot": s.Sim.Snapshot()})
}

// handleAckNotice pops the highest-priority pending notice and resolves it
// with the user's choice. POST {"accept": true}
func (s *Server) handleAckNotice(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Accept bool `json:"accept"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.Sim.Notices.Pop()
	if !ok {
		http.Error(w, "no pending notices", http.StatusNotFound)
		return
	}
	// Resolve coerces non-cancelable notices to accept.
	s.Sim.Resolve(n, req.Accept)
	writeJSON(w, map[string]any{"success": true, "notice": n.Title})
}

// handleAdvance lets the caller pass idle time without taking a decision.
// POST {"days": 1}
func (s *Server) handleAdvance(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Days float64 `json:"days"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Days <= 0 {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.Sim.AdvanceTime(req.Days, false, false)
	writeJSON(w, map[string]any{"success": true, "snapshot": s.Sim.Snapshot()})
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(data)
}
