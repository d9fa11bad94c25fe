// internal/play/play.go
//
// Driver loop for one game: sample a guess, hand it to the host, read the
// graded tiles back, fold them into the constraint engine, repeat until a
// win or MaxRounds attempts.
//
// The host itself (a browser page, the practice server, an in-process game)
// sits behind two narrow interfaces. Every wait on it is bounded by
// Options.Timeout; expiry is fatal and never retried.

package play

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/peter-ruse/wordle-solver/internal/solver"
)

// DefaultTimeout bounds each wait on the host.
const DefaultTimeout = 10 * time.Second

// WordSource supplies the initial candidate list.
type WordSource interface {
	Words(ctx context.Context) ([]string, error)
}

// Host accepts guesses and grades them.
type Host interface {
	// Submit delivers guess and returns once the host accepted it.
	Submit(ctx context.Context, guess string) error
	// Feedback returns one tile state per position for the last guess,
	// only once every tile is graded.
	Feedback(ctx context.Context) ([]string, error)
}

// Options tunes a run. The zero value is usable.
type Options struct {
	Timeout time.Duration // per host wait; DefaultTimeout if zero
	Rand    *rand.Rand    // guess sampling; randomly seeded if nil
	Logger  *zerolog.Logger
}

// Round is one guess/feedback cycle.
type Round struct {
	N          int      `json:"n"`          // 1-based attempt index
	Candidates int      `json:"candidates"` // pool size the guess was drawn from
	Guess      string   `json:"guess"`
	Feedback   []string `json:"feedback"`
}

// Result is the transcript of a finished game.
type Result struct {
	Won    bool    `json:"won"`
	Rounds []Round `json:"rounds"`
}

// Attempts is the number of rounds played.
func (r *Result) Attempts() int { return len(r.Rounds) }

// Run plays one game. A fresh candidate store and engine are built per call,
// so concurrent runs share nothing.
func Run(ctx context.Context, src WordSource, host Host, opts Options) (*Result, error) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	logger := log.Logger
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	var dict []string
	err := bounded(ctx, timeout, "load words", func(ctx context.Context) (err error) {
		dict, err = src.Words(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	store := solver.NewCandidates(opts.Rand)
	if err := store.Load(dict); err != nil {
		return nil, fmt.Errorf("load candidates: %w", err)
	}
	engine := solver.NewEngine(store)
	logger.Info().Int("candidates", store.Size()).Msg("starting game")

	res := &Result{}
	for n := 1; n <= solver.MaxRounds; n++ {
		size := store.Size()
		guess, err := engine.Guess()
		if err != nil {
			return res, fmt.Errorf("attempt %d: %w", n, err)
		}
		logger.Info().Int("attempt", n).Int("candidates", size).Str("guess", guess).Msg("guessing")

		if err := bounded(ctx, timeout, "submit", func(ctx context.Context) error {
			return host.Submit(ctx, guess)
		}); err != nil {
			return res, fmt.Errorf("attempt %d: %w", n, err)
		}

		var raw []string
		if err := bounded(ctx, timeout, "feedback", func(ctx context.Context) (err error) {
			raw, err = host.Feedback(ctx)
			return err
		}); err != nil {
			return res, fmt.Errorf("attempt %d: %w", n, err)
		}
		res.Rounds = append(res.Rounds, Round{N: n, Candidates: size, Guess: guess, Feedback: raw})

		won, err := engine.Observe(guess, raw)
		if err != nil {
			return res, fmt.Errorf("attempt %d %q: %w", n, guess, err)
		}
		if won {
			res.Won = true
			logger.Info().Int("attempt", n).Str("answer", guess).Msg("solved")
			return res, nil
		}

		k := engine.Snapshot()
		logger.Debug().
			Int("attempt", n).
			Str("pattern", k.Pattern).
			Strs("excluded", k.Excluded[:]).
			Int("remaining", store.Size()).
			Msg("knowledge")
	}

	logger.Info().Int("attempts", solver.MaxRounds).Msg("out of attempts")
	return res, nil
}

// bounded runs fn under a deadline, mapping its expiry to
// solver.ErrCollaboratorTimeout. fn runs on its own goroutine so a
// collaborator that ignores its context still cannot hold the game past the
// deadline; its late result is discarded. Cancellation of the parent context
// is returned as is.
func bounded(ctx context.Context, timeout time.Duration, what string, fn func(context.Context) error) error {
	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- fn(cctx) }()

	var err error
	select {
	case err = <-done:
	case <-cctx.Done():
		err = cctx.Err()
	}
	if cctx.Err() != nil && ctx.Err() == nil {
		return fmt.Errorf("%s: %w after %s", what, solver.ErrCollaboratorTimeout, timeout)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	return nil
}
