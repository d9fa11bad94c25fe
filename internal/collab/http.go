package collab

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// HTTP plays a game on a practice host.
// The game is created lazily on the first Submit.
type HTTP struct {
	BaseURL string
	Mode    string // "random" or "daily"; empty means random
	Answer  string // optional fixed answer, for testing
	Client  *http.Client

	gameID string
	last   []string
}

// NewHTTP returns a client for the host at baseURL.
func NewHTTP(baseURL, mode string) *HTTP {
	return &HTTP{BaseURL: strings.TrimRight(baseURL, "/"), Mode: mode, Client: http.DefaultClient}
}

// GameID is the host's id for the current game, empty before the first guess.
func (h *HTTP) GameID() string { return h.gameID }

// Words implements play.WordSource via GET /words.
func (h *HTTP) Words(ctx context.Context) ([]string, error) {
	var res struct {
		Words []string `json:"words"`
	}
	if err := h.do(ctx, http.MethodGet, "/words", nil, &res); err != nil {
		return nil, err
	}
	return res.Words, nil
}

// Submit implements play.Host via POST /game/guess.
func (h *HTTP) Submit(ctx context.Context, guess string) error {
	if h.gameID == "" {
		var res struct {
			GameID string `json:"gameId"`
		}
		req := map[string]string{"mode": h.Mode, "answer": h.Answer}
		if err := h.do(ctx, http.MethodPost, "/game/new", req, &res); err != nil {
			return err
		}
		h.gameID = res.GameID
	}

	var res struct {
		Marks []string `json:"marks"`
		State string   `json:"state"`
	}
	req := map[string]string{"gameId": h.gameID, "guess": guess}
	if err := h.do(ctx, http.MethodPost, "/game/guess", req, &res); err != nil {
		return err
	}
	h.last = res.Marks
	return nil
}

// Feedback implements play.Host with the marks of the last accepted guess.
func (h *HTTP) Feedback(context.Context) ([]string, error) {
	if h.last == nil {
		return nil, errNoGuess
	}
	return h.last, nil
}

func (h *HTTP) do(ctx context.Context, method, path string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, h.BaseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.Client.Do(req)
	if err != nil {
		return fmt.Errorf("collab: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var e struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		return fmt.Errorf("collab: %s %s: %s: %s", method, path, resp.Status, e.Error)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("collab: decode %s: %w", path, err)
	}
	return nil
}
