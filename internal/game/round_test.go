package game

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fastConfig keeps round timers short enough for tests while leaving wide
// margins between a timer firing and the assertion that observes it.
func fastConfig() Config {
	return Config{
		RevealDelay:   10 * time.Millisecond,
		AutoHideDelay: 80 * time.Millisecond,
		MismatchDelay: 40 * time.Millisecond,
	}
}

// startedRound builds a k-pair round and waits until the reveal delay has
// elapsed and the board is interactive.
func startedRound(t *testing.T, k int, cfg Config) *Round {
	t.Helper()
	r := NewRound(testPairs(k), cfg)
	t.Cleanup(r.Stop)

	deadline := time.Now().Add(2 * time.Second)
	for r.View().State == "initial" {
		if time.Now().After(deadline) {
			t.Fatal("round never left initial state")
		}
		time.Sleep(2 * time.Millisecond)
	}
	return r
}

func viewState(t *testing.T, r *Round, cardID string) string {
	t.Helper()
	for _, cv := range r.View().Cards {
		if cv.ID == cardID {
			return cv.State
		}
	}
	t.Fatalf("card %s not in view", cardID)
	return ""
}

func countRevealed(r *Round) int {
	n := 0
	for _, cv := range r.View().Cards {
		if cv.State == "revealed" {
			n++
		}
	}
	return n
}

func TestRound_RevealDelayGatesSelection(t *testing.T) {
	cfg := fastConfig()
	cfg.RevealDelay = 500 * time.Millisecond
	r := NewRound(testPairs(3), cfg)
	defer r.Stop()

	view := r.View()
	assert.Equal(t, "initial", view.State)
	for _, cv := range view.Cards {
		assert.Equal(t, "initial", cv.State)
		assert.NotEmpty(t, cv.Content) // memorize phase shows content
	}

	res, err := r.Select(CardID(SideInput, 0))
	assert.NoError(t, err)
	assert.Equal(t, SelectIgnored, res)
}

func TestRound_HideAllAfterRevealDelay(t *testing.T) {
	r := startedRound(t, 3, fastConfig())

	view := r.View()
	assert.Equal(t, "playing", view.State)
	for _, cv := range view.Cards {
		assert.Equal(t, "hidden", cv.State)
		assert.Empty(t, cv.Content)
	}
}

func TestRound_UnknownCard(t *testing.T) {
	r := startedRound(t, 3, fastConfig())
	res, err := r.Select("input-99")
	assert.ErrorIs(t, err, ErrUnknownCard)
	assert.Equal(t, SelectIgnored, res)
}

// Scenario: selecting both cards of the same pair yields a match.
func TestRound_MatchingPair(t *testing.T) {
	r := startedRound(t, 4, fastConfig())
	assert.Len(t, r.View().Cards, 8)

	res, err := r.Select("input-2")
	require.NoError(t, err)
	assert.Equal(t, SelectRevealed, res)
	assert.Equal(t, "revealed", viewState(t, r, "input-2"))

	res, err = r.Select("output-2")
	require.NoError(t, err)
	assert.Equal(t, SelectMatched, res)

	view := r.View()
	assert.Equal(t, 2, view.MatchedCount)
	assert.Equal(t, "matched", viewState(t, r, "input-2"))
	assert.Equal(t, "matched", viewState(t, r, "output-2"))
	assert.Equal(t, "playing", view.State)

	// Board unlocked immediately: a fresh first selection is accepted.
	res, err = r.Select("input-0")
	require.NoError(t, err)
	assert.Equal(t, SelectRevealed, res)

	// A matched card can never be selected again.
	res, err = r.Select("output-2")
	require.NoError(t, err)
	assert.Equal(t, SelectIgnored, res)
}

// Scenario: selecting cards from different pairs locks the board until the
// mismatch delay flips both back to hidden.
func TestRound_Mismatch(t *testing.T) {
	cfg := fastConfig()
	cfg.MismatchDelay = 150 * time.Millisecond
	r := startedRound(t, 4, cfg)

	_, err := r.Select("input-0")
	require.NoError(t, err)
	res, err := r.Select("output-1")
	require.NoError(t, err)
	assert.Equal(t, SelectMismatch, res)

	// Both revealed, board locked while resolution is pending.
	assert.Equal(t, 2, countRevealed(r))
	res, err = r.Select("input-2")
	require.NoError(t, err)
	assert.Equal(t, SelectIgnored, res)

	time.Sleep(500 * time.Millisecond)

	view := r.View()
	assert.Equal(t, 0, view.MatchedCount)
	assert.Equal(t, "hidden", viewState(t, r, "input-0"))
	assert.Equal(t, "hidden", viewState(t, r, "output-1"))
	assert.Equal(t, 0, countRevealed(r))

	// Slots cleared and board unlocked.
	res, err = r.Select("input-2")
	require.NoError(t, err)
	assert.Equal(t, SelectRevealed, res)
}

// Scenario: a lone first selection reverts to hidden once the auto-hide
// timer fires, with no match/mismatch resolution.
func TestRound_AutoHide(t *testing.T) {
	r := startedRound(t, 3, fastConfig())

	res, err := r.Select("input-0")
	require.NoError(t, err)
	assert.Equal(t, SelectRevealed, res)

	time.Sleep(300 * time.Millisecond)

	assert.Equal(t, "hidden", viewState(t, r, "input-0"))
	assert.Equal(t, 0, countRevealed(r))
	assert.Equal(t, 0, r.View().MatchedCount)

	// The cleared slot accepts a new first selection.
	res, err = r.Select("input-0")
	require.NoError(t, err)
	assert.Equal(t, SelectRevealed, res)
}

// Repeating the current first selection is a silent no-op and does not
// disturb the pending auto-hide slot.
func TestRound_RepeatFirstSelectionIgnored(t *testing.T) {
	r := startedRound(t, 3, fastConfig())

	_, err := r.Select("input-1")
	require.NoError(t, err)
	res, err := r.Select("input-1")
	require.NoError(t, err)
	assert.Equal(t, SelectIgnored, res)
	assert.Equal(t, 1, countRevealed(r))
}

func TestRound_WinExactlyOnce(t *testing.T) {
	var wins atomic.Int32
	cfg := fastConfig()
	cfg.OnWin = func(string) { wins.Add(1) }

	r := startedRound(t, 3, cfg)

	for i := 0; i < 3; i++ {
		res, err := r.Select(CardID(SideInput, i))
		require.NoError(t, err)
		require.Equal(t, SelectRevealed, res)

		res, err = r.Select(CardID(SideOutput, i))
		require.NoError(t, err)
		if i < 2 {
			require.Equal(t, SelectMatched, res)
		} else {
			require.Equal(t, SelectWon, res)
		}
	}

	assert.True(t, r.Won())
	view := r.View()
	assert.Equal(t, "won", view.State)
	assert.Equal(t, 6, view.MatchedCount)
	assert.Equal(t, int32(1), wins.Load())

	// Terminal: further selections are ignored and cannot re-win.
	res, err := r.Select("input-0")
	require.NoError(t, err)
	assert.Equal(t, SelectIgnored, res)
	assert.Equal(t, int32(1), wins.Load())
}

// Scenario: stopping a round cancels pending timers; a stale timer must not
// mutate the board afterwards.
func TestRound_StopCancelsPendingTimers(t *testing.T) {
	r := startedRound(t, 3, fastConfig())

	_, err := r.Select("input-0")
	require.NoError(t, err)
	assert.Equal(t, "revealed", viewState(t, r, "input-0"))

	r.Stop()
	time.Sleep(300 * time.Millisecond) // well past the auto-hide delay

	// The auto-hide timer was canceled: the card is frozen as revealed.
	assert.Equal(t, "revealed", viewState(t, r, "input-0"))

	// A stopped round ignores everything.
	res, err := r.Select("input-1")
	require.NoError(t, err)
	assert.Equal(t, SelectIgnored, res)
}

// Stopping before the reveal delay leaves the board inert in initial state.
func TestRound_StopBeforeReveal(t *testing.T) {
	cfg := fastConfig()
	cfg.RevealDelay = 50 * time.Millisecond
	r := NewRound(testPairs(3), cfg)

	r.Stop()
	time.Sleep(200 * time.Millisecond)

	assert.Equal(t, "initial", r.View().State)
}

func TestRound_RevealedNeverExceedsTwo(t *testing.T) {
	cfg := fastConfig()
	cfg.MismatchDelay = 150 * time.Millisecond
	r := startedRound(t, 4, cfg)

	// Drive a mismatch plus extra clicks while locked.
	_, _ = r.Select("input-0")
	_, _ = r.Select("output-1")
	_, _ = r.Select("input-2")
	_, _ = r.Select("output-3")
	assert.LessOrEqual(t, countRevealed(r), 2)
}
