// internal/game/pairs.go
//
// Pair selection: turns a history snapshot into the 3–6 pairs that seed one
// round. Deduplicates by input phrase (first occurrence wins) and draws a
// uniform random subset without replacement.

package game

import (
	"errors"
	"math/rand"

	"github.com/tmarinova/phrasematch/internal/history"
)

// ErrInsufficientData signals that fewer than MinPairs distinct input
// phrases are stored. The caller shows a "not enough words" message and
// disables the board; this is not a fatal condition.
var ErrInsufficientData = errors.New("game: not enough distinct phrases to build a round")

const (
	// MinPairs is the smallest playable round.
	MinPairs = 3
	// MaxPairs caps the board size.
	MaxPairs = 6
)

// SelectPairs deduplicates records by input (keeping the first occurrence
// per unique input) and samples between MinPairs and MaxPairs of them.
func SelectPairs(records []history.TranslationRecord) ([]Pair, error) {
	seen := make(map[string]bool, len(records))
	unique := make([]history.TranslationRecord, 0, len(records))
	for _, rec := range records {
		if seen[rec.Input] {
			continue
		}
		seen[rec.Input] = true
		unique = append(unique, rec)
	}

	if len(unique) < MinPairs {
		return nil, ErrInsufficientData
	}

	k := len(unique)
	if k > MaxPairs {
		k = MaxPairs
	}

	// Uniform sample without replacement: shuffle, take the first k.
	rand.Shuffle(len(unique), func(i, j int) {
		unique[i], unique[j] = unique[j], unique[i]
	})

	pairs := make([]Pair, k)
	for i := 0; i < k; i++ {
		pairs[i] = Pair{PairID: i, Input: unique[i].Input, Output: unique[i].Output}
	}
	return pairs, nil
}
