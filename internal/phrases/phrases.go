// Package phrases loads the per-language phrase sets.
package phrases

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/verte-zerg/dailyquotes/internal/model"
)

//go:embed quotes.json
var defaultQuotes []byte

// Set maps a language to its phrases in source order.
type Set map[model.Language][]string

// For returns the phrases for lang, or nil.
func (s Set) For(lang model.Language) []string {
	return s[lang]
}

// Load reads a phrase set from src: the embedded default when empty, an
// http(s) URL, or a local file. On failure it returns an empty Set alongside
// the error so callers can carry on without phrases.
func Load(ctx context.Context, src string) (Set, error) {
	data, err := read(ctx, src)
	if err != nil {
		return Set{}, err
	}
	set, err := Decode(data)
	if err != nil {
		return Set{}, fmt.Errorf("failed to decode quotes from %s: %w", describe(src), err)
	}
	return set, nil
}

// Decode parses `{ "en": [...], "ru": [...] }`. A language whose value is not
// an array of strings is left empty; blank phrases are dropped.
func Decode(data []byte) (Set, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	set := Set{}
	for _, lang := range model.Languages {
		msg, ok := raw[string(lang)]
		if !ok {
			continue
		}
		var list []string
		if err := json.Unmarshal(msg, &list); err != nil {
			continue
		}
		set[lang] = Filter(list, NotBlank)
	}
	return set, nil
}

func read(ctx context.Context, src string) ([]byte, error) {
	switch {
	case src == "":
		return bytes.Clone(defaultQuotes), nil
	case strings.HasPrefix(src, "http://"), strings.HasPrefix(src, "https://"):
		return fetch(ctx, src)
	default:
		data, err := os.ReadFile(src)
		if err != nil {
			return nil, fmt.Errorf("failed to read quotes: %w", err)
		}
		return data, nil
	}
}

func fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected quotes status: %s", resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read quotes response: %w", err)
	}
	return data, nil
}

func describe(src string) string {
	if src == "" {
		return "embedded quotes"
	}
	return src
}
