// Package collab provides the hosts a solver run can play against.
//
//   - Local: an in-process game.Game, graded with the two-pass rule.
//   - HTTP:  the practice host's JSON API (internal/httpserver).
//   - Static: a fixed word list as the initial source.
package collab

import (
	"context"
	"errors"
	"sync"

	"github.com/peter-ruse/wordle-solver/internal/game"
	"github.com/peter-ruse/wordle-solver/internal/words"
)

// errNoGuess is returned when feedback is requested before any guess.
var errNoGuess = errors.New("collab: no guess submitted")

// Static serves a fixed word list.
type Static []string

// Words implements play.WordSource.
func (s Static) Words(context.Context) ([]string, error) { return s, nil }

// Local plays an in-process game.
type Local struct {
	list *words.List
	game *game.Game

	mu   sync.Mutex
	last []game.Mark
}

// NewLocal starts a game for answer over list; an empty answer is drawn
// at random from list.
func NewLocal(answer string, list *words.List) (*Local, error) {
	g, err := game.New(answer, list)
	if err != nil {
		return nil, err
	}
	return &Local{list: list, game: g}, nil
}

// Answer reveals the hidden word.
func (l *Local) Answer() string { return l.game.Answer }

// Words implements play.WordSource with the allowed guess list.
func (l *Local) Words(context.Context) ([]string, error) { return l.list.Allowed(), nil }

// Submit implements play.Host.
func (l *Local) Submit(ctx context.Context, guess string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	marks, _, err := l.game.ApplyGuess(guess, l.list)
	if err != nil {
		return err
	}
	l.last = marks
	return nil
}

// Feedback implements play.Host.
func (l *Local) Feedback(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.last == nil {
		return nil, errNoGuess
	}
	return game.Strings(l.last), nil
}
