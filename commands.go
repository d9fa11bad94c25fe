package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/peter-ruse/wordle-solver/internal/bench"
	"github.com/peter-ruse/wordle-solver/internal/collab"
	"github.com/peter-ruse/wordle-solver/internal/config"
	"github.com/peter-ruse/wordle-solver/internal/daily"
	"github.com/peter-ruse/wordle-solver/internal/httpserver"
	"github.com/peter-ruse/wordle-solver/internal/play"
	"github.com/peter-ruse/wordle-solver/internal/render"
	"github.com/peter-ruse/wordle-solver/internal/store"
	"github.com/peter-ruse/wordle-solver/internal/words"
)

// errNotSolved makes the exit status reflect a lost game.
var errNotSolved = errors.New("puzzle not solved")

func newRootCmd(cfg config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "wordle-solver",
		Short:         "Solves the daily five-letter word puzzle from tile feedback",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfg.AnswersFile, "answers", cfg.AnswersFile, "answer list file (default: embedded)")
	root.PersistentFlags().StringVar(&cfg.AllowedFile, "allowed", cfg.AllowedFile, "allowed guess list file (default: embedded)")
	root.PersistentFlags().Uint64Var(&cfg.Seed, "seed", cfg.Seed, "guess sampling seed, 0 for random")

	root.AddCommand(
		newSolveCmd(&cfg),
		newPlayCmd(&cfg),
		newServeCmd(&cfg),
		newBenchCmd(&cfg),
	)
	return root
}

func newSolveCmd(cfg *config.Config) *cobra.Command {
	var answer, wordsFile string
	var useDaily bool
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve an in-process puzzle",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := words.Load(cfg.AnswersFile, cfg.AllowedFile)
			if err != nil {
				return err
			}
			if useDaily {
				answer = daily.Answer(time.Now(), cfg.DailySalt, list.Answers())
			}
			host, err := collab.NewLocal(answer, list)
			if err != nil {
				return err
			}
			var src play.WordSource = host
			if wordsFile != "" {
				ws, err := readWordsFile(wordsFile)
				if err != nil {
					return err
				}
				src = collab.Static(ws)
			}
			res, err := play.Run(cmd.Context(), src, host, runOptions(cfg))
			if res != nil {
				printTranscript(cmd, res)
			}
			if err != nil {
				return err
			}
			if !res.Won {
				return fmt.Errorf("%w: answer was %q", errNotSolved, host.Answer())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&answer, "answer", "", "hidden answer (default: random)")
	cmd.Flags().BoolVar(&useDaily, "daily", false, "use today's daily answer")
	cmd.Flags().StringVar(&wordsFile, "words", "", "solver dictionary file (default: the allowed list)")
	cmd.MarkFlagsMutuallyExclusive("answer", "daily")
	return cmd
}

func newPlayCmd(cfg *config.Config) *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Solve a puzzle on a practice host over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			host := collab.NewHTTP(cfg.HostURL, mode)
			res, err := play.Run(cmd.Context(), host, host, runOptions(cfg))
			if res != nil {
				printTranscript(cmd, res)
			}
			if err != nil {
				return err
			}
			log.Info().Str("gameId", host.GameID()).Bool("won", res.Won).Msg("game over")
			if !res.Won {
				return errNotSolved
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&cfg.HostURL, "url", cfg.HostURL, "practice host base URL")
	cmd.Flags().StringVar(&mode, "mode", "random", "puzzle mode: random or daily")
	cmd.Flags().DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "bound on each host wait")
	return cmd
}

func newServeCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the practice host",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := words.Load(cfg.AnswersFile, cfg.AllowedFile)
			if err != nil {
				return err
			}
			srv := httpserver.New(store.NewMemoryStore(), list, cfg.DailySalt)
			a, g := list.Stats()
			log.Info().Str("port", cfg.Port).Int("answers", a).Int("allowed", g).Msg("starting practice host")
			return srv.Start(":" + cfg.Port)
		},
	}
	cmd.Flags().StringVar(&cfg.Port, "port", cfg.Port, "listen port")
	return cmd
}

func newBenchCmd(cfg *config.Config) *cobra.Command {
	var opts bench.Options
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Play many independent games concurrently and report the win rate",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := words.Load(cfg.AnswersFile, cfg.AllowedFile)
			if err != nil {
				return err
			}
			opts.Seed = cfg.Seed
			start := time.Now()
			sum, err := bench.Run(cmd.Context(), list, opts)
			if err != nil {
				return err
			}
			log.Info().
				Int("games", sum.Games).
				Int("wins", sum.Wins).
				Int("losses", sum.Losses).
				Float64("meanAttempts", sum.MeanAttempts()).
				Ints("histogram", sum.Histogram[1:]).
				Strs("failures", sum.Failures).
				Dur("elapsed", time.Since(start)).
				Msg("benchmark finished")
			return nil
		},
	}
	cmd.Flags().IntVar(&opts.Games, "games", 0, "games to play (default: every answer once)")
	cmd.Flags().IntVar(&opts.Parallel, "parallel", 0, "concurrent games (default: GOMAXPROCS)")
	return cmd
}

func runOptions(cfg *config.Config) play.Options {
	opts := play.Options{Timeout: cfg.Timeout}
	if cfg.Seed != 0 {
		opts.Rand = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	}
	return opts
}

// printTranscript colours the tiles only when writing to a terminal.
func printTranscript(cmd *cobra.Command, res *play.Result) {
	out := cmd.OutOrStdout()
	f, ok := out.(*os.File)
	plain := !ok || !isatty.IsTerminal(f.Fd())
	fmt.Fprintln(out, render.Transcript(res, plain))
}

func readWordsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return words.ReadLines(f)
}

// signalContext cancels on interrupt.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}
