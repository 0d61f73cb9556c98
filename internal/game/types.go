// internal/game/types.go
//
// Core type definitions for the matching-game engine.
// Defines:
//   - CardState: lifecycle of a single card (initial/hidden/revealed/matched).
//   - Side: which half of a translation pair a card shows.
//   - Pair: one (input phrase, translated phrase) matching unit.
//   - Card: one clickable tile representing one side of a Pair.

package game

import "fmt"

// CardState represents the current state of a card.
//
// Lifecycle:
//   - Initial:  content visible but unclickable (pre-round memorize phase).
//   - Hidden:   content cleared, clickable.
//   - Revealed: content shown as a pending selection.
//   - Matched:  terminal; the card can never be selected again.
type CardState int

const (
	StateInitial CardState = iota
	StateHidden
	StateRevealed
	StateMatched
)

// String returns the string representation of a CardState.
func (cs CardState) String() string {
	switch cs {
	case StateInitial:
		return "initial"
	case StateHidden:
		return "hidden"
	case StateRevealed:
		return "revealed"
	case StateMatched:
		return "matched"
	default:
		return "unknown"
	}
}

// Side identifies which half of a pair a card carries.
type Side string

const (
	SideInput  Side = "input"
	SideOutput Side = "output"
)

// Pair is one matching unit drawn from stored translation history.
// Lifetime is a single round; pairs are rebuilt on every reset.
type Pair struct {
	PairID int    // index within the round (0..k-1)
	Input  string // source-language phrase
	Output string // translated phrase
}

// Card represents a single tile on the board.
// Exactly two cards share a PairID, one per side.
type Card struct {
	ID      string // "<side>-<pairId>", e.g. "input-2"
	PairID  int
	Side    Side
	Content string
	State   CardState
}

// CardID builds the canonical card identifier for a side/pair combination.
func CardID(side Side, pairID int) string {
	return fmt.Sprintf("%s-%d", side, pairID)
}
