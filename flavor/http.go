package flavor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

// EnvURL names the environment variable holding a remote generator
// endpoint. When unset the local script generator is used instead.
const EnvURL = "INKDUEL_FLAVOR_URL"

// HTTP posts the report as JSON to a hosted generator and expects
// {"line": "..."} back.
type HTTP struct {
	URL    string
	Client *http.Client
}

func NewHTTP(url string) *HTTP {
	return &HTTP{
		URL:    url,
		Client: &http.Client{Timeout: 5 * time.Second},
	}
}

func (h *HTTP) Line(ctx context.Context, r Report) (string, error) {
	payload := map[string]any{
		"winner":          r.WinnerName,
		"winner_style":    r.WinnerStyle,
		"loser":           r.LoserName,
		"loser_style":     r.LoserStyle,
		"winner_hp":       r.WinnerHP,
		"winner_max_hp":   r.WinnerMaxHP,
		"elapsed_seconds": r.ElapsedSeconds,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("flavor: marshal report: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.URL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("flavor: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("flavor: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("flavor: endpoint returned %d", resp.StatusCode)
	}

	var out struct {
		Line string `json:"line"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("flavor: decode response: %w", err)
	}
	if out.Line == "" {
		return "", fmt.Errorf("flavor: endpoint returned an empty line")
	}
	return out.Line, nil
}

// FromEnv picks the remote generator when EnvURL is set, otherwise the
// local script. A script load failure degrades to the fixed fallback line.
func FromEnv() Generator {
	if url := os.Getenv(EnvURL); url != "" {
		return NewHTTP(url)
	}
	gen, err := NewScript()
	if err != nil {
		return Static(Fallback)
	}
	return gen
}
