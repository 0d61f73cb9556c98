// internal/testutil/mocks.go
//
// Shared testify mocks for the history store and the translation provider.

package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tmarinova/phrasematch/internal/history"
)

// MockHistoryStore is a mock for history.Store.
type MockHistoryStore struct {
	mock.Mock
}

func (m *MockHistoryStore) Save(ctx context.Context, rec history.TranslationRecord) (int64, error) {
	args := m.Called(ctx, rec)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockHistoryStore) Recent(ctx context.Context, n int) ([]history.TranslationRecord, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]history.TranslationRecord), args.Error(1)
}

func (m *MockHistoryStore) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockHistoryStore) FindByInput(ctx context.Context, text string) (*history.TranslationRecord, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*history.TranslationRecord), args.Error(1)
}

func (m *MockHistoryStore) Search(ctx context.Context, q string) ([]history.TranslationRecord, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]history.TranslationRecord), args.Error(1)
}

// MockTranslator is a mock for translate.Translator.
type MockTranslator struct {
	mock.Mock
}

func (m *MockTranslator) Translate(ctx context.Context, text, from, to string) (string, error) {
	args := m.Called(ctx, text, from, to)
	return args.String(0), args.Error(1)
}

// Records builds n distinct translation records for seeding game tests.
func Records(n int) []history.TranslationRecord {
	out := make([]history.TranslationRecord, n)
	for i := range out {
		out[i] = history.TranslationRecord{
			ID:      int64(i + 1),
			Input:   "word-" + string(rune('a'+i)),
			Output:  "wort-" + string(rune('a'+i)),
			LangIn:  "en",
			LangOut: "de",
		}
	}
	return out
}
