package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testPairs(k int) []Pair {
	pairs := make([]Pair, k)
	for i := range pairs {
		pairs[i] = Pair{PairID: i, Input: "in-" + string(rune('a'+i)), Output: "out-" + string(rune('a'+i))}
	}
	return pairs
}

func TestBuildBoard_TwoCardsPerPair(t *testing.T) {
	for _, k := range []int{3, 4, 6} {
		cards := BuildBoard(testPairs(k))
		assert.Len(t, cards, 2*k)

		bySide := map[int]map[Side]*Card{}
		for _, c := range cards {
			assert.Equal(t, StateInitial, c.State)
			assert.Equal(t, CardID(c.Side, c.PairID), c.ID)
			if bySide[c.PairID] == nil {
				bySide[c.PairID] = map[Side]*Card{}
			}
			assert.Nil(t, bySide[c.PairID][c.Side], "duplicate card %s", c.ID)
			bySide[c.PairID][c.Side] = c
		}

		for i := 0; i < k; i++ {
			in := bySide[i][SideInput]
			out := bySide[i][SideOutput]
			assert.NotNil(t, in, "missing input card for pair %d", i)
			assert.NotNil(t, out, "missing output card for pair %d", i)
			assert.Equal(t, "in-"+string(rune('a'+i)), in.Content)
			assert.Equal(t, "out-"+string(rune('a'+i)), out.Content)
		}
	}
}

func TestBuildCardViews_HiddenCardsWithholdContent(t *testing.T) {
	cards := BuildBoard(testPairs(3))
	cards[0].State = StateHidden
	cards[1].State = StateRevealed
	cards[2].State = StateMatched

	views := buildCardViews(cards)
	assert.Len(t, views, 6)

	assert.Equal(t, "hidden", views[0].State)
	assert.Empty(t, views[0].Content)

	assert.Equal(t, "revealed", views[1].State)
	assert.Equal(t, cards[1].Content, views[1].Content)

	assert.Equal(t, "matched", views[2].State)
	assert.Equal(t, cards[2].Content, views[2].Content)

	// Initial cards render their content (memorize phase).
	assert.Equal(t, "initial", views[3].State)
	assert.Equal(t, cards[3].Content, views[3].Content)
}
