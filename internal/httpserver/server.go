// internal/httpserver/server.go
//
// HTTP server wiring for the phrasematch backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health".
//   - Translation endpoint: POST /translate (provider call + history save).
//   - History endpoints: GET/DELETE /history, /history/find, /history/search.
//   - Game endpoints: mounted in routes_game.go.
//
// Notes:
//   - CORS is origin-aware and credentials-enabled.
//   - Provider failures surface as 500 (dependency failure); history saves
//     after a successful translation are best-effort.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/tmarinova/phrasematch/internal/game"
	"github.com/tmarinova/phrasematch/internal/history"
	"github.com/tmarinova/phrasematch/internal/store"
	"github.com/tmarinova/phrasematch/internal/translate"
)

// Server bundles router, history store, translation provider, and the
// in-memory round registry.
type Server struct {
	r          *chi.Mux
	history    history.Store
	snapshots  *history.Snapshotter
	translator translate.Translator
	rounds     store.Store
	gameCfg    game.Config
}

// New constructs a Server, installs middleware, and registers routes.
// cfg carries the round timing; tests shrink the delays.
func New(hist history.Store, tr translate.Translator, rounds store.Store, cfg game.Config) *Server {
	s := &Server{
		r:          chi.NewRouter(),
		history:    hist,
		snapshots:  history.NewSnapshotter(hist),
		translator: tr,
		rounds:     rounds,
		gameCfg:    cfg,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(corsFromEnv)                     // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"phrasematch","endpoints":["/health","POST /translate","GET /history","POST /game/new","POST /game/select"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	// Translation + history
	s.r.Post("/translate", s.handleTranslate)
	s.r.Get("/history", s.handleHistory)
	s.r.Delete("/history", s.handleClearHistory)
	s.r.Get("/history/find", s.handleFind)
	s.r.Get("/history/search", s.handleSearch)

	// Matching game
	s.mountGame(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
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

// corsFromEnv enables credentialed CORS for a single origin.
// Uses CLIENT_ORIGIN env var; defaults to http://localhost:5173.
func corsFromEnv(next http.Handler) http.Handler {
	origin := os.Getenv("CLIENT_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,DELETE,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ---------------------------- TRANSLATION ----------------------------------

// translateReq/Res payloads for POST /translate.
type translateReq struct {
	Text string `json:"text"`
	From string `json:"from"`
	To   string `json:"to"`
}
type translateRes struct {
	ID      int64  `json:"id,omitempty"`
	Input   string `json:"input"`
	Output  string `json:"output"`
	LangIn  string `json:"langIn"`
	LangOut string `json:"langOut"`
}

// handleTranslate calls the provider and stores the result.
// History persistence is best-effort: a failed save logs a warning but does
// not fail a request that already produced a translation.
func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	var req translateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	req.Text = strings.TrimSpace(req.Text)
	if req.Text == "" || req.From == "" || req.To == "" {
		http.Error(w, `{"error":"text, from and to are required"}`, http.StatusBadRequest)
		return
	}

	out, err := s.translator.Translate(r.Context(), req.Text, req.From, req.To)
	if err != nil {
		log.Error().Err(err).Str("from", req.From).Str("to", req.To).Msg("translation failed")
		http.Error(w, `{"error":"translation_failed"}`, http.StatusInternalServerError)
		return
	}

	rec := history.TranslationRecord{Input: req.Text, Output: out, LangIn: req.From, LangOut: req.To}
	id, err := s.history.Save(r.Context(), rec)
	if err != nil {
		log.Warn().Err(err).Msg("save translation")
	}

	_ = json.NewEncoder(w).Encode(translateRes{
		ID: id, Input: req.Text, Output: out, LangIn: req.From, LangOut: req.To,
	})
}

// ----------------------------- HISTORY -------------------------------------

// handleHistory returns the most recent records (default limit 50).
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := history.DefaultRecentLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			http.Error(w, `{"error":"invalid limit"}`, http.StatusBadRequest)
			return
		}
		limit = n
	}
	recs, err := s.history.Recent(r.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("load history")
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(recs)
}

// handleClearHistory deletes all stored translations.
func (s *Server) handleClearHistory(w http.ResponseWriter, r *http.Request) {
	if err := s.history.Clear(r.Context()); err != nil {
		log.Error().Err(err).Msg("clear history")
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// handleFind returns the record matching ?text= exactly, or 404.
func (s *Server) handleFind(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("text")
	if text == "" {
		http.Error(w, `{"error":"text is required"}`, http.StatusBadRequest)
		return
	}
	rec, err := s.history.FindByInput(r.Context(), text)
	if errors.Is(err, history.ErrNotFound) {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("find translation")
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(rec)
}

// handleSearch returns records containing ?q= in input or output.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		http.Error(w, `{"error":"q is required"}`, http.StatusBadRequest)
		return
	}
	recs, err := s.history.Search(r.Context(), q)
	if err != nil {
		log.Error().Err(err).Msg("search history")
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(recs)
}
