// internal/game/engine.go
//
// Puzzle host engine for a single game: the thing the solver plays against
// when it is not driving the real website.
// Responsibilities:
//   - Create games with fixed dimensions (6x5).
//   - Validate and apply guesses (length, alphabetic, allowed list).
//   - Grade guesses with the two-pass Wordle algorithm.
//   - Track state transitions: playing → won/lost.

package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/peter-ruse/wordle-solver/internal/words"
)

const (
	defaultRows = 6
	defaultCols = 5
)

var (
	ErrFinished      = errors.New("game finished")
	ErrInvalid       = errors.New("invalid guess")
	ErrNotAllowed    = errors.New("not in word list")
	ErrInvalidAnswer = errors.New("invalid answer")
)

// New constructs a game over list.
// If answer is empty, a random answer is drawn from list.
// The answer must be defaultCols letters a–z.
func New(answer string, list *words.List) (*Game, error) {
	if answer == "" {
		answer = list.RandomAnswer()
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	if len(answer) != defaultCols || !isAlpha(answer) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAnswer, answer)
	}
	return &Game{
		ID:      uuid.NewString(),
		Answer:  answer,
		Rows:    defaultRows,
		Cols:    defaultCols,
		Guesses: []string{},
	}, nil
}

// ApplyGuess validates and grades a guess, mutating the game state.
// allowed may be nil to accept any well-formed word.
//
// Validation rules:
//   - Game must not be finished.
//   - Guess must be exactly g.Cols letters a–z.
//   - Guess must be in the allowed list.
//
// State transitions:
//   - All tiles correct → Finished, Won.
//   - Else guesses reach g.Rows → Finished (loss).
func (g *Game) ApplyGuess(guess string, allowed *words.List) ([]Mark, State, error) {
	if g.Finished {
		return nil, g.State(), ErrFinished
	}
	guess = strings.ToLower(strings.TrimSpace(guess))
	if len(guess) != g.Cols || !isAlpha(guess) {
		return nil, g.State(), ErrInvalid
	}
	if allowed != nil && !allowed.IsAllowed(guess) {
		return nil, g.State(), ErrNotAllowed
	}

	marks := Grade(g.Answer, guess)
	g.Guesses = append(g.Guesses, guess)

	if allCorrect(marks) {
		g.Finished, g.Won = true, true
	} else if len(g.Guesses) >= g.Rows {
		g.Finished = true
	}
	return marks, g.State(), nil
}

// State reports the game's lifecycle state.
func (g *Game) State() State {
	if g.Finished {
		if g.Won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}

// Grade implements the standard two-pass Wordle scoring.
//
// Pass 1: mark exact matches correct and count the remaining answer letters.
// Pass 2: left to right, a non-correct guess letter is present while unused
// answer occurrences remain, otherwise absent.
//
// answer and guess must be the same length of a–z; New and ApplyGuess
// enforce that for games.
func Grade(answer, guess string) []Mark {
	n := len(guess)
	res := make([]Mark, n)
	var counts [26]int

	for i := 0; i < n; i++ {
		if guess[i] == answer[i] {
			res[i] = MarkCorrect
		} else {
			counts[answer[i]-'a']++
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == MarkCorrect {
			continue
		}
		j := guess[i] - 'a'
		if counts[j] > 0 {
			res[i] = MarkPresent
			counts[j]--
		} else {
			res[i] = MarkAbsent
		}
	}
	return res
}

// Strings converts marks to their tile-state spelling.
func Strings(marks []Mark) []string {
	out := make([]string, len(marks))
	for i, m := range marks {
		out[i] = string(m)
	}
	return out
}

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// allCorrect returns true if every mark is MarkCorrect.
func allCorrect(m []Mark) bool {
	for _, x := range m {
		if x != MarkCorrect {
			return false
		}
	}
	return true
}
