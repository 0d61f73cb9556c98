// internal/translate/translate.go
//
// Translation provider abstraction. The service delegates translation to a
// third-party API; provider errors pass through to the HTTP layer as
// dependency failures.

package translate

import (
	"context"
	"errors"
	"os"
)

// ErrEmptyText is returned for a blank translation request.
var ErrEmptyText = errors.New("translate: empty text")

// Translator turns text in one language into another.
type Translator interface {
	Translate(ctx context.Context, text, from, to string) (string, error)
}

// FromEnv builds the configured provider chain: the provider named by the
// TRANSLATOR env var ("mymemory" by default, "openai"), wrapped in a
// circuit breaker.
func FromEnv() Translator {
	var t Translator
	switch os.Getenv("TRANSLATOR") {
	case "openai":
		t = NewOpenAI(os.Getenv("OPENAI_API_KEY"))
	default:
		t = NewMyMemory(os.Getenv("MYMEMORY_BASE_URL"))
	}
	return NewBreaker(t)
}
