// internal/httpserver/routes_game.go
//
// HTTP routes for the matching game.
// Exposes four endpoints under /game:
//   - POST /game/new      → seed a round from a fresh history snapshot
//   - GET  /game/{id}     → current round view
//   - POST /game/select   → select one card
//   - POST /game/reset    → discard a round, rebuild from a fresh snapshot
//
// Rounds live in the in-memory registry; the history store is only ever
// read (once per round start and again on reset). Too little stored history
// surfaces as a disabled board, never as a request error.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/tmarinova/phrasematch/internal/game"
	"github.com/tmarinova/phrasematch/internal/history"
	"github.com/tmarinova/phrasematch/internal/store"
)

// insufficientDataRes is returned when the history cannot seed a round.
// Delivered with status 200: the client renders a disabled board and a
// message, it is not a request error.
type insufficientDataRes struct {
	State   string `json:"state"` // always "insufficient_data"
	Message string `json:"message"`
}

// mountGame registers all /game routes.
func (s *Server) mountGame(r chi.Router) {
	r.Route("/game", func(r chi.Router) {
		r.Post("/new", s.handleNewRound)
		r.Get("/{id}", s.handleRoundView)
		r.Post("/select", s.handleSelect)
		r.Post("/reset", s.handleReset)
	})
}

// buildRound takes a fresh history snapshot and constructs a round from it.
// Returns (nil, nil) after writing the insufficient-data response.
func (s *Server) buildRound(w http.ResponseWriter, r *http.Request) (*game.Round, error) {
	records := s.snapshots.Snapshot(r.Context(), history.DefaultRecentLimit)
	pairs, err := game.SelectPairs(records)
	if errors.Is(err, game.ErrInsufficientData) {
		_ = json.NewEncoder(w).Encode(insufficientDataRes{
			State:   "insufficient_data",
			Message: "not enough words stored to build a round",
		})
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	cfg := s.gameCfg
	if cfg.OnWin == nil {
		cfg.OnWin = func(roundID string) {
			log.Info().Str("roundId", roundID).Msg("round won")
		}
	}
	round := game.NewRound(pairs, cfg)
	if err := s.rounds.Save(r.Context(), round); err != nil {
		round.Stop()
		return nil, err
	}
	return round, nil
}

// handleNewRound starts a round from the most recent translations.
func (s *Server) handleNewRound(w http.ResponseWriter, r *http.Request) {
	round, err := s.buildRound(w, r)
	if err != nil {
		log.Error().Err(err).Msg("build round")
		http.Error(w, `{"error":"round_failed"}`, http.StatusInternalServerError)
		return
	}
	if round == nil {
		return // insufficient data, response already written
	}
	_ = json.NewEncoder(w).Encode(round.View())
}

// handleRoundView returns the current state of a round.
func (s *Server) handleRoundView(w http.ResponseWriter, r *http.Request) {
	round, err := s.rounds.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	_ = json.NewEncoder(w).Encode(round.View())
}

// selectReq/Res payloads for POST /game/select.
type selectReq struct {
	RoundID string `json:"roundId"`
	CardID  string `json:"cardId"`
}
type selectRes struct {
	Result string         `json:"result"` // ignored|revealed|matched|mismatch|won
	Round  game.RoundView `json:"round"`
}

// handleSelect applies one card selection to a round.
// Invalid selections (locked board, matched card, repeated card) are
// reported as result "ignored", not as errors.
func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	var req selectReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	round, err := s.rounds.Get(r.Context(), req.RoundID)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	res, err := round.Select(req.CardID)
	if errors.Is(err, game.ErrUnknownCard) {
		http.Error(w, `{"error":"unknown_card"}`, http.StatusBadRequest)
		return
	}
	_ = json.NewEncoder(w).Encode(selectRes{Result: res.String(), Round: round.View()})
}

// resetReq payload for POST /game/reset.
type resetReq struct {
	RoundID string `json:"roundId"`
}

// handleReset discards a round and rebuilds one from a fresh snapshot.
// The old round is stopped first so stale timers cannot fire into a
// replaced board.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	var req resetReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	old, err := s.rounds.Get(r.Context(), req.RoundID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		http.Error(w, `{"error":"registry_error"}`, http.StatusInternalServerError)
		return
	}
	if old != nil {
		old.Stop()
		_ = s.rounds.Delete(r.Context(), old.ID())
	}

	round, err := s.buildRound(w, r)
	if err != nil {
		log.Error().Err(err).Msg("rebuild round")
		http.Error(w, `{"error":"round_failed"}`, http.StatusInternalServerError)
		return
	}
	if round == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(round.View())
}
