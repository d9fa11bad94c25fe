// Package bench plays many independent solver games concurrently against
// in-process hosts and summarises the outcome.
package bench

import (
	"context"
	"fmt"
	"math/rand/v2"
	"runtime"
	"sort"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/peter-ruse/wordle-solver/internal/collab"
	"github.com/peter-ruse/wordle-solver/internal/play"
	"github.com/peter-ruse/wordle-solver/internal/solver"
	"github.com/peter-ruse/wordle-solver/internal/words"
)

// Options for a benchmark.
type Options struct {
	Games    int    // number of games; every answer once if zero
	Parallel int    // concurrent games; GOMAXPROCS if zero
	Seed     uint64 // base seed: game i samples with seed+i
}

// Summary aggregates finished games.
type Summary struct {
	Games     int                       `json:"games"`
	Wins      int                       `json:"wins"`
	Losses    int                       `json:"losses"`
	Histogram [solver.MaxRounds + 1]int `json:"histogram"` // wins by attempt count; [0] unused
	Failures  []string                  `json:"failures"`  // answers not solved, sorted
}

// MeanAttempts is the average attempt count over wins.
func (s Summary) MeanAttempts() float64 {
	if s.Wins == 0 {
		return 0
	}
	total := 0
	for n, c := range s.Histogram {
		total += n * c
	}
	return float64(total) / float64(s.Wins)
}

// Run plays the games. Answers cycle through list.Answers() in order, so a
// run is reproducible for a given seed. Any solver error aborts the run.
func Run(ctx context.Context, list *words.List, opts Options) (Summary, error) {
	answers := list.Answers()
	if len(answers) == 0 {
		return Summary{}, words.ErrEmpty
	}
	games := opts.Games
	if games <= 0 {
		games = len(answers)
	}
	parallel := opts.Parallel
	if parallel <= 0 {
		parallel = runtime.GOMAXPROCS(0)
	}

	var (
		mu  sync.Mutex
		sum = Summary{Games: games}
	)
	nop := zerolog.Nop()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i := 0; i < games; i++ {
		answer := answers[i%len(answers)]
		seed := opts.Seed + uint64(i)
		g.Go(func() error {
			host, err := collab.NewLocal(answer, list)
			if err != nil {
				return fmt.Errorf("game %q: %w", answer, err)
			}
			res, err := play.Run(ctx, host, host, play.Options{
				Rand:   rand.New(rand.NewPCG(seed, seed)),
				Logger: &nop,
			})
			if err != nil {
				return fmt.Errorf("game %q: %w", answer, err)
			}

			mu.Lock()
			defer mu.Unlock()
			if res.Won {
				sum.Wins++
				sum.Histogram[res.Attempts()]++
			} else {
				sum.Losses++
				sum.Failures = append(sum.Failures, answer)
			}
			return nil
		})
	}
	err := g.Wait()
	sort.Strings(sum.Failures)
	return sum, err
}
