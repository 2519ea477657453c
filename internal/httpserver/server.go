// internal/httpserver/server.go
//
// Read-only HTTP browser for recorded Hangman sessions.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health".
//   - Session endpoints: GET /sessions, GET /sessions/{n}, GET /stats.
//
// Notes:
//   - Nothing here starts or mutates a game; sessions come from the log store.
//   - CORS allows a single configured origin, GET only.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/record"
	"github.com/robalobadob/hangman/internal/store"
)

// Server bundles router and session log store.
type Server struct {
	r      *chi.Mux
	store  store.Store
	origin string
}

// New constructs a Server, installs middleware, and registers routes.
// origin is the allowed CORS origin; empty disables the CORS headers.
func New(st store.Store, origin string) *Server {
	s := &Server{r: chi.NewRouter(), store: st, origin: origin}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(s.cors)

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"hangman-logs","endpoints":["/health","/sessions","/sessions/{n}","/stats"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.r.Get("/sessions", s.handleList)
	s.r.Get("/sessions/{n}", s.handleGet)
	s.r.Get("/stats", s.handleStats)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors allows read-only access from the configured origin.
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.origin != "" {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", s.origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ----------------------------- sessions ------------------------------------

// sessionRow is one line of GET /sessions.
type sessionRow struct {
	Number    int    `json:"number"`
	Category  string `json:"category"`
	Word      string `json:"word"`
	Result    string `json:"result"`
	Score     int    `json:"score"`
	Attempts  int    `json:"attempts"`
	Timestamp string `json:"timestamp"`
}

func toRow(e store.Entry) sessionRow {
	return sessionRow{
		Number:    e.Number,
		Category:  e.Fields["Category"],
		Word:      e.Fields["Word"],
		Result:    e.Result(),
		Score:     atoi(e.Fields["Score"]),
		Attempts:  atoi(e.Fields["Attempts used"]),
		Timestamp: e.Fields["Timestamp"],
	}
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	entries, err := s.store.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("list sessions")
		writeError(w, http.StatusInternalServerError, "list_failed")
		return
	}
	out := make([]sessionRow, 0, len(entries))
	for _, e := range entries {
		out = append(out, toRow(e))
	}
	_ = json.NewEncoder(w).Encode(out)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(chi.URLParam(r, "n"))
	if err != nil || n < 1 {
		writeError(w, http.StatusBadRequest, "bad_number")
		return
	}
	e, err := s.store.Get(r.Context(), n)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	if err != nil {
		log.Error().Err(err).Int("number", n).Msg("get session")
		writeError(w, http.StatusInternalServerError, "read_failed")
		return
	}
	_ = json.NewEncoder(w).Encode(struct {
		sessionRow
		Text string `json:"text"`
	}{toRow(e), e.Text})
}

// Stats is the body of GET /stats.
type Stats struct {
	Sessions   int `json:"sessions"`
	Wins       int `json:"wins"`
	Losses     int `json:"losses"`
	TotalScore int `json:"totalScore"`
	BestScore  int `json:"bestScore"`
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	entries, err := s.store.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("list sessions")
		writeError(w, http.StatusInternalServerError, "list_failed")
		return
	}
	_ = json.NewEncoder(w).Encode(Aggregate(entries))
}

// Aggregate totals wins, losses and scores over recorded sessions.
func Aggregate(entries []store.Entry) Stats {
	var st Stats
	for _, e := range entries {
		st.Sessions++
		if e.Result() == string(record.ResultWin) {
			st.Wins++
		} else {
			st.Losses++
		}
		sc := atoi(e.Fields["Score"])
		st.TotalScore += sc
		st.BestScore = max(st.BestScore, sc)
	}
	return st
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
