// internal/game/board.go
//
// Board construction and the client-facing view types.
// BuildBoard emits two cards per pair (one per side) in a uniform random
// display order; views withhold card content while the card is hidden.

package game

import "math/rand"

// BuildBoard constructs the card sequence for a round.
// For each pair i it emits "input-i" and "output-i", then applies a uniform
// permutation to the whole sequence. All cards start in state Initial.
func BuildBoard(pairs []Pair) []*Card {
	cards := make([]*Card, 0, 2*len(pairs))
	for _, p := range pairs {
		cards = append(cards,
			&Card{ID: CardID(SideInput, p.PairID), PairID: p.PairID, Side: SideInput, Content: p.Input, State: StateInitial},
			&Card{ID: CardID(SideOutput, p.PairID), PairID: p.PairID, Side: SideOutput, Content: p.Output, State: StateInitial},
		)
	}
	rand.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return cards
}

// CardView is the client-facing representation of a card.
// Content is only included while the card face is visible (initial,
// revealed, matched); hidden cards expose nothing to match against.
type CardView struct {
	ID      string `json:"id"`
	Content string `json:"content,omitempty"`
	State   string `json:"state"`
}

// RoundView is the full round state returned to the client.
type RoundView struct {
	RoundID      string     `json:"roundId"`
	Cards        []CardView `json:"cards"`
	MatchedCount int        `json:"matchedCount"`
	State        string     `json:"state"` // "initial" | "playing" | "won"
}

// buildCardViews constructs the client-facing card list in display order.
func buildCardViews(cards []*Card) []CardView {
	views := make([]CardView, len(cards))
	for i, c := range cards {
		cv := CardView{ID: c.ID, State: c.State.String()}
		if c.State != StateHidden {
			cv.Content = c.Content
		}
		views[i] = cv
	}
	return views
}
