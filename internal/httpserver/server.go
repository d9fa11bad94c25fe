// internal/httpserver/server.go
//
// HTTP server wiring for the practice host: a local stand-in for the daily
// puzzle site that the solver can play against over HTTP.
// Responsibilities:
//   - Router + middleware (JSON, timeouts, panic recovery, request IDs, access log).
//   - Public endpoints: "/", "/health", "/words", "/debug/words", "/metrics".
//   - Game endpoints: POST /game/new, POST /game/guess.
//
// Games live in the in-memory store only; nothing outlives the process.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/peter-ruse/wordle-solver/internal/daily"
	"github.com/peter-ruse/wordle-solver/internal/game"
	"github.com/peter-ruse/wordle-solver/internal/store"
	"github.com/peter-ruse/wordle-solver/internal/words"
)

// Server bundles router, game store and word list.
type Server struct {
	r     *chi.Mux
	store store.Store
	words *words.List
	salt  string
	now   func() time.Time

	reg         *prometheus.Registry
	gamesTotal  *prometheus.CounterVec
	guessTotal  *prometheus.CounterVec
	finishTotal *prometheus.CounterVec
}

// New constructs a Server, installs middleware, and registers routes.
// salt seeds the daily answer selection.
func New(st store.Store, list *words.List, salt string) *Server {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	s := &Server{
		r:     chi.NewRouter(),
		store: st,
		words: list,
		salt:  salt,
		now:   time.Now,
		reg:   reg,
		gamesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "wordle_host_games_started_total",
			Help: "Games started, by mode.",
		}, []string{"mode"}),
		guessTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "wordle_host_guesses_total",
			Help: "Guesses received, by outcome.",
		}, []string{"outcome"}),
		finishTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "wordle_host_games_finished_total",
			Help: "Games finished, by state.",
		}, []string{"state"}),
	}
	f.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "wordle_host_games_stored",
		Help: "Games held in the store, finished or not.",
	}, func() float64 { return float64(st.Len()) })

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(accessLog)
	s.r.Use(jsonContentType)

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"wordle-host","endpoints":["/health","/words","POST /game/new","POST /game/guess","/metrics"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		a, g := s.words.Stats()
		_ = json.NewEncoder(w).Encode(map[string]int{"answers": a, "allowed": g})
	})
	s.r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	// --- puzzle ---
	s.r.Get("/words", s.handleWords)
	s.r.Post("/game/new", s.handleNewGame)
	s.r.Post("/game/guess", s.handleGuess)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})
	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the router (useful for tests and custom http.Server setups).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// accessLog writes one debug line per request.
func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("requestId", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

// jsonError writes err as a {"error": "..."} body.
func jsonError(w http.ResponseWriter, code int, err error) {
	b, _ := json.Marshal(map[string]string{"error": err.Error()})
	http.Error(w, string(b), code)
}

// ------------------------------ GAME ---------------------------------------

// handleWords returns the allowed guess list, the solver's initial source.
func (s *Server) handleWords(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(map[string][]string{"words": s.words.Allowed()})
}

// newGameReq/Res payloads for POST /game/new.
type newGameReq struct {
	Mode   string `json:"mode"`   // "random" (default) | "daily"
	Answer string `json:"answer"` // optional fixed answer (testing); ignored in daily mode
}
type newGameRes struct {
	GameID string `json:"gameId"`
	Date   string `json:"date,omitempty"` // daily mode only
}

// handleNewGame creates a new in-memory game.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	var res newGameRes
	answer := req.Answer
	switch req.Mode {
	case "", "random":
		req.Mode = "random"
		if answer != "" && !s.words.IsAllowed(answer) {
			http.Error(w, `{"error":"answer not in word list"}`, http.StatusBadRequest)
			return
		}
	case "daily":
		now := s.now()
		answer = daily.Answer(now, s.salt, s.words.Answers())
		res.Date = daily.DateKey(now)
	default:
		http.Error(w, `{"error":"unknown mode"}`, http.StatusBadRequest)
		return
	}

	g, err := game.New(answer, s.words)
	if err != nil {
		log.Error().Err(err).Str("mode", req.Mode).Msg("new game")
		jsonError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.store.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save game")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	s.gamesTotal.WithLabelValues(req.Mode).Inc()
	log.Info().Str("gameId", g.ID).Str("mode", req.Mode).Msg("game started")

	res.GameID = g.ID
	_ = json.NewEncoder(w).Encode(res)
}

// guessReq/Res payloads for POST /game/guess.
type guessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}
type guessRes struct {
	Marks []game.Mark `json:"marks"`
	State game.State  `json:"state"` // "playing" | "won" | "lost"
}

// handleGuess grades a guess against an in-memory game.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	g, err := s.store.Get(r.Context(), req.GameID)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	} else if err != nil {
		log.Error().Err(err).Str("gameId", req.GameID).Msg("load game")
		http.Error(w, `{"error":"load_failed"}`, http.StatusInternalServerError)
		return
	}

	marks, state, err := g.ApplyGuess(req.Guess, s.words)
	if err != nil {
		s.guessTotal.WithLabelValues("rejected").Inc()
		jsonError(w, http.StatusBadRequest, err)
		return
	}
	s.guessTotal.WithLabelValues("graded").Inc()

	if err := s.store.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Str("gameId", g.ID).Msg("save game")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	if state != game.StatePlaying {
		s.finishTotal.WithLabelValues(string(state)).Inc()
		log.Info().Str("gameId", g.ID).Str("state", string(state)).Int("guesses", len(g.Guesses)).Msg("game finished")
	}

	_ = json.NewEncoder(w).Encode(guessRes{Marks: marks, State: state})
}
