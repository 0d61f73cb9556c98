// internal/translate/mymemory.go
//
// MyMemory translation provider (https://mymemory.translated.net).
// A single unauthenticated GET per translation:
//   /get?q=<text>&langpair=<from>|<to>
// The body carries its own status code in responseStatus; anything but 200
// is an upstream failure even on an HTTP 200 response.

package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultMyMemoryBase = "https://api.mymemory.translated.net"

// MyMemory is the default translation provider.
type MyMemory struct {
	base   string
	client *http.Client
}

// NewMyMemory constructs a provider. An empty base falls back to the public
// API endpoint; tests point it at a local httptest server.
func NewMyMemory(base string) *MyMemory {
	if base == "" {
		base = defaultMyMemoryBase
	}
	return &MyMemory{
		base:   strings.TrimRight(base, "/"),
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// myMemoryResponse is the subset of the API body we consume.
type myMemoryResponse struct {
	ResponseData struct {
		TranslatedText string `json:"translatedText"`
	} `json:"responseData"`
	ResponseStatus  int    `json:"responseStatus"`
	ResponseDetails string `json:"responseDetails"`
}

// Translate performs one translation call.
func (m *MyMemory) Translate(ctx context.Context, text, from, to string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyText
	}

	q := url.Values{}
	q.Set("q", text)
	q.Set("langpair", from+"|"+to)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.base+"/get?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}
	resp, err := m.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("mymemory request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("mymemory: unexpected status %d", resp.StatusCode)
	}

	var body myMemoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("mymemory decode: %w", err)
	}
	if body.ResponseStatus != http.StatusOK {
		return "", fmt.Errorf("mymemory: %s (status %d)", body.ResponseDetails, body.ResponseStatus)
	}
	out := strings.TrimSpace(body.ResponseData.TranslatedText)
	if out == "" {
		return "", fmt.Errorf("mymemory: empty translation")
	}
	return out, nil
}
