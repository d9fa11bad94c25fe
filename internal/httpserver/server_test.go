package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/peter-ruse/wordle-solver/internal/daily"
	"github.com/peter-ruse/wordle-solver/internal/store"
	"github.com/peter-ruse/wordle-solver/internal/words"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var testWords = words.New([]string{"crane", "apple", "ankle", "angle"}, []string{"sassy"})

func newTestServer() *Server {
	return New(store.NewMemoryStore(), testWords, "test_salt")
}

func do(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(method, path, &buf))
	return rec
}

func newGame(t *testing.T, s *Server, req newGameReq) newGameRes {
	t.Helper()
	rec := do(t, s, http.MethodPost, "/game/new", req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var res newGameRes
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	require.NotEmpty(t, res.GameID)
	return res
}

func guess(t *testing.T, s *Server, id, word string) (*httptest.ResponseRecorder, guessRes) {
	t.Helper()
	rec := do(t, s, http.MethodPost, "/game/guess", guessReq{GameID: id, Guess: word})
	var res guessRes
	if rec.Code == http.StatusOK {
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	}
	return rec, res
}

func TestHealthAndWords(t *testing.T) {
	s := newTestServer()

	rec := do(t, s, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())

	rec = do(t, s, http.MethodGet, "/words", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"words":["angle","ankle","apple","crane","sassy"]}`, rec.Body.String())

	rec = do(t, s, http.MethodGet, "/debug/words", nil)
	assert.JSONEq(t, `{"answers":4,"allowed":5}`, rec.Body.String())

	rec = do(t, s, http.MethodGet, "/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGameFlow(t *testing.T) {
	s := newTestServer()
	id := newGame(t, s, newGameReq{Answer: "ankle"}).GameID

	rec, res := guess(t, s, id, "apple")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "playing", string(res.State))
	assert.Equal(t, `["correct","absent","absent","correct","correct"]`, mustJSON(t, res.Marks))

	rec, _ = guess(t, s, id, "zzzzz")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "not in word list")

	_, res = guess(t, s, id, "ankle")
	assert.Equal(t, "won", string(res.State))

	rec, _ = guess(t, s, id, "crane")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "game finished")

	rec, _ = guess(t, s, "missing", "crane")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, s, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `wordle_host_games_started_total{mode="random"} 1`)
	assert.Contains(t, body, `wordle_host_guesses_total{outcome="graded"} 2`)
	assert.Contains(t, body, `wordle_host_guesses_total{outcome="rejected"} 2`)
	assert.Contains(t, body, `wordle_host_games_finished_total{state="won"} 1`)
	assert.Contains(t, body, "wordle_host_games_stored 1")
}

func TestNewGameModes(t *testing.T) {
	s := newTestServer()
	s.now = func() time.Time { return time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC) }

	res := newGame(t, s, newGameReq{Mode: "daily", Answer: "crane"})
	assert.Equal(t, "2026-10-16", res.Date)

	want := daily.Answer(s.now(), "test_salt", testWords.Answers())
	_, g := guess(t, s, res.GameID, want)
	assert.Equal(t, "won", string(g.State), "daily answer ignores the requested one")

	rec := do(t, s, http.MethodPost, "/game/new", newGameReq{Mode: "hard"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, s, http.MethodPost, "/game/new", newGameReq{Answer: "qqqqq"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	bad := New(store.NewMemoryStore(), words.New([]string{"abc"}, nil), "test_salt")
	rec = do(t, bad, http.MethodPost, "/game/new", newGameReq{Mode: "daily"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid answer")

	rec = do(t, s, http.MethodPost, "/game/guess", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "bad_json"))
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}
