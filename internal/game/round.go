// internal/game/round.go
//
// Round state machine for the matching game.
// Responsibilities:
//   - Hold the one mutable Round object: cards, selection slots, lock flag,
//     matched count, win flag.
//   - Gate all mutation through named transitions under a mutex (handler
//     calls and timer callbacks are the only triggers).
//   - Own cancellable timer handles for the three delays: initial reveal,
//     first-selection auto-hide, mismatch resolution.
//
// Invariants:
//   - At most two cards are Revealed at any instant (the two selection slots).
//   - A Matched card never leaves Matched.
//   - locked is true only between a second selection and its resolution.
//   - A stopped round ignores every trigger, including late-firing timers.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"
	"time"
)

// ErrUnknownCard is returned for a selection naming no card on the board.
var ErrUnknownCard = errors.New("game: unknown card id")

// Reference delays from the original interaction design.
const (
	defaultRevealDelay   = 4000 * time.Millisecond
	defaultAutoHideDelay = 2000 * time.Millisecond
	defaultMismatchDelay = 500 * time.Millisecond
)

// Config carries the round timing knobs and the optional win callback.
// Zero-value delays fall back to the defaults.
type Config struct {
	RevealDelay   time.Duration // Initial → Hidden for the whole board
	AutoHideDelay time.Duration // unanswered first selection reverts
	MismatchDelay time.Duration // mismatched pair flips back
	OnWin         func(roundID string)
}

// DefaultConfig returns the reference timing configuration.
func DefaultConfig() Config {
	return Config{
		RevealDelay:   defaultRevealDelay,
		AutoHideDelay: defaultAutoHideDelay,
		MismatchDelay: defaultMismatchDelay,
	}
}

func (c Config) withDefaults() Config {
	if c.RevealDelay <= 0 {
		c.RevealDelay = defaultRevealDelay
	}
	if c.AutoHideDelay <= 0 {
		c.AutoHideDelay = defaultAutoHideDelay
	}
	if c.MismatchDelay <= 0 {
		c.MismatchDelay = defaultMismatchDelay
	}
	return c
}

// SelectResult describes what a selection did.
type SelectResult int

const (
	SelectIgnored  SelectResult = iota // no-op: locked board, matched card, repeat, pre-reveal
	SelectRevealed                     // card became the first or second revealed selection
	SelectMatched                      // second selection completed a pair
	SelectMismatch                     // second selection mismatched; resolution pending
	SelectWon                          // the match completed the round
)

// String returns the wire representation of a SelectResult.
func (sr SelectResult) String() string {
	switch sr {
	case SelectRevealed:
		return "revealed"
	case SelectMatched:
		return "matched"
	case SelectMismatch:
		return "mismatch"
	case SelectWon:
		return "won"
	default:
		return "ignored"
	}
}

// Round is one playthrough of the matching game, from board construction
// to Won or Stop. It is exclusively owned by its registry entry.
type Round struct {
	mu  sync.Mutex
	id  string
	cfg Config

	cards []*Card // display order, fixed at round start
	byID  map[string]*Card

	matchedCount int
	first        *Card
	second       *Card
	locked       bool
	started      bool // reveal delay elapsed, board interactive
	won          bool
	stopped      bool

	revealTimer   *time.Timer
	autoHideTimer *time.Timer
	mismatchTimer *time.Timer
}

// NewRound builds a board from pairs and starts the reveal countdown.
// All cards render in Initial state until the reveal delay elapses.
func NewRound(pairs []Pair, cfg Config) *Round {
	r := &Round{
		id:    roundID(),
		cfg:   cfg.withDefaults(),
		cards: BuildBoard(pairs),
		byID:  make(map[string]*Card, 2*len(pairs)),
	}
	for _, c := range r.cards {
		r.byID[c.ID] = c
	}
	r.revealTimer = time.AfterFunc(r.cfg.RevealDelay, r.hideAll)
	return r
}

// ID returns the round identifier.
func (r *Round) ID() string { return r.id }

// hideAll transitions every non-matched card to Hidden and opens the board.
// Fired once by the reveal timer.
func (r *Round) hideAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped || r.started {
		return
	}
	for _, c := range r.cards {
		if c.State == StateInitial {
			c.State = StateHidden
		}
	}
	r.started = true
	r.revealTimer = nil
}

// Select processes one card selection.
//
// No-op cases (SelectIgnored, nil error): board not yet interactive, board
// locked, card already matched, card is the current first selection.
// An id naming no card returns ErrUnknownCard.
func (r *Round) Select(cardID string) (SelectResult, error) {
	r.mu.Lock()
	res, err := r.selectLocked(cardID)
	onWin := r.cfg.OnWin
	id := r.id
	r.mu.Unlock()

	if res == SelectWon && onWin != nil {
		onWin(id)
	}
	return res, err
}

func (r *Round) selectLocked(cardID string) (SelectResult, error) {
	card, ok := r.byID[cardID]
	if !ok {
		return SelectIgnored, ErrUnknownCard
	}
	if r.stopped || !r.started || r.won || r.locked {
		return SelectIgnored, nil
	}
	if card.State == StateMatched || card == r.first {
		return SelectIgnored, nil
	}

	if r.first == nil {
		// First selection: reveal and arm the auto-hide countdown.
		r.stopTimer(&r.autoHideTimer)
		card.State = StateRevealed
		r.first = card
		r.autoHideTimer = time.AfterFunc(r.cfg.AutoHideDelay, func() { r.autoHide(card) })
		return SelectRevealed, nil
	}

	// Second selection supersedes the pending auto-hide.
	r.stopTimer(&r.autoHideTimer)
	card.State = StateRevealed
	r.second = card
	r.locked = true

	if r.first.PairID == card.PairID {
		return r.resolveMatchLocked(), nil
	}

	a, b := r.first, r.second
	r.mismatchTimer = time.AfterFunc(r.cfg.MismatchDelay, func() { r.resolveMismatch(a, b) })
	return SelectMismatch, nil
}

// resolveMatchLocked finalizes a matched pair: both cards become terminal,
// the slots clear, and the board unlocks immediately.
func (r *Round) resolveMatchLocked() SelectResult {
	r.first.State = StateMatched
	r.second.State = StateMatched
	r.matchedCount += 2
	r.first, r.second = nil, nil
	r.locked = false

	if r.matchedCount == len(r.cards) {
		r.won = true
		return SelectWon
	}
	return SelectMatched
}

// resolveMismatch flips a mismatched pair back to Hidden after the delay.
func (r *Round) resolveMismatch(a, b *Card) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped || r.first != a || r.second != b {
		return
	}
	a.State = StateHidden
	b.State = StateHidden
	r.first, r.second = nil, nil
	r.locked = false
	r.mismatchTimer = nil
}

// autoHide reverts an unanswered first selection back to Hidden.
// A second selection or a reset supersedes this timer; the slot check keeps
// a late firing from touching a newer selection.
func (r *Round) autoHide(card *Card) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped || r.first != card || r.second != nil {
		return
	}
	card.State = StateHidden
	r.first = nil
	r.autoHideTimer = nil
}

// Stop cancels all pending timers and inerts the round. Called on reset so
// a stale timer cannot mutate a replaced board.
func (r *Round) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopped = true
	r.stopTimer(&r.revealTimer)
	r.stopTimer(&r.autoHideTimer)
	r.stopTimer(&r.mismatchTimer)
}

// stopTimer cancels and clears a timer handle. Caller holds the mutex.
func (r *Round) stopTimer(t **time.Timer) {
	if *t != nil {
		(*t).Stop()
		*t = nil
	}
}

// Won reports whether the round reached the terminal win state.
func (r *Round) Won() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.won
}

// View returns the client-facing snapshot of the round.
func (r *Round) View() RoundView {
	r.mu.Lock()
	defer r.mu.Unlock()
	state := "playing"
	switch {
	case r.won:
		state = "won"
	case !r.started:
		state = "initial"
	}
	return RoundView{
		RoundID:      r.id,
		Cards:        buildCardViews(r.cards),
		MatchedCount: r.matchedCount,
		State:        state,
	}
}

// roundID returns a compact 16-hex-char identifier.
// Collisions are extremely unlikely given crypto/rand entropy.
func roundID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
