package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tmarinova/phrasematch/internal/history"
)

func records(inputs ...string) []history.TranslationRecord {
	out := make([]history.TranslationRecord, len(inputs))
	for i, in := range inputs {
		out[i] = history.TranslationRecord{
			ID:      int64(i + 1),
			Input:   in,
			Output:  "t:" + in,
			LangIn:  "en",
			LangOut: "de",
		}
	}
	return out
}

func TestSelectPairs_InsufficientData(t *testing.T) {
	tests := []struct {
		name    string
		records []history.TranslationRecord
	}{
		{"empty snapshot", nil},
		{"one record", records("hello")},
		{"two records", records("hello", "world")},
		{"duplicates collapse below minimum", records("hello", "hello", "world", "world", "hello")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pairs, err := SelectPairs(tt.records)
			assert.ErrorIs(t, err, ErrInsufficientData)
			assert.Nil(t, pairs)
		})
	}
}

func TestSelectPairs_Bounds(t *testing.T) {
	tests := []struct {
		name      string
		unique    int
		expectLen int
	}{
		{"minimum", 3, 3},
		{"mid", 4, 4},
		{"maximum", 6, 6},
		{"clamped above maximum", 10, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inputs := make([]string, tt.unique)
			for i := range inputs {
				inputs[i] = string(rune('a' + i))
			}
			pairs, err := SelectPairs(records(inputs...))
			assert.NoError(t, err)
			assert.Len(t, pairs, tt.expectLen)
		})
	}
}

func TestSelectPairs_DistinctInputsAndSequentialIDs(t *testing.T) {
	recs := records("a", "b", "c", "d", "e", "f", "g", "h")
	pairs, err := SelectPairs(recs)
	assert.NoError(t, err)

	seen := map[string]bool{}
	for i, p := range pairs {
		assert.Equal(t, i, p.PairID)
		assert.False(t, seen[p.Input], "duplicate input %q in result", p.Input)
		seen[p.Input] = true
		assert.Equal(t, "t:"+p.Input, p.Output)
	}
}

func TestSelectPairs_DedupKeepsFirstOccurrence(t *testing.T) {
	recs := records("a", "b", "c")
	// Same inputs again with different outputs; the first stored output wins.
	dupes := records("a", "b", "c")
	for i := range dupes {
		dupes[i].Output = "other"
	}
	pairs, err := SelectPairs(append(recs, dupes...))
	assert.NoError(t, err)
	assert.Len(t, pairs, 3)
	for _, p := range pairs {
		assert.Equal(t, "t:"+p.Input, p.Output)
	}
}
