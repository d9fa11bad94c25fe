package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peter-ruse/wordle-solver/internal/game"
	"github.com/peter-ruse/wordle-solver/internal/words"
)

const (
	C = Correct
	P = Present
	A = Absent
)

func newEngine(t *testing.T, dict ...string) *Engine {
	t.Helper()
	c := NewCandidates(seeded(1))
	require.NoError(t, c.Load(dict))
	return NewEngine(c)
}

func TestParseFeedback(t *testing.T) {
	fb, err := ParseFeedback([]string{"correct", " Present", "ABSENT", "absent", "correct"})
	require.NoError(t, err)
	assert.Equal(t, Feedback{C, P, A, A, C}, fb)
	assert.False(t, fb.Won())
	assert.True(t, Feedback{C, C, C, C, C}.Won())

	_, err = ParseFeedback([]string{"correct", "maybe", "absent", "absent", "correct"})
	assert.ErrorIs(t, err, ErrUnexpectedFeedback)

	_, err = ParseFeedback([]string{"correct"})
	assert.ErrorIs(t, err, ErrUnexpectedFeedback)

	_, err = ParseFeedback([]string{"correct", "tbd", "absent", "absent", "correct"})
	assert.ErrorIs(t, err, ErrUnexpectedFeedback, "pending tiles are not feedback")
}

func TestObserveWinNeedsNoFilter(t *testing.T) {
	e := newEngine(t, "apple", "angle", "ankle")
	won, err := e.Observe("apple", []string{"correct", "correct", "correct", "correct", "correct"})
	require.NoError(t, err)
	assert.True(t, won)
	assert.Equal(t, 3, e.Candidates().Size())
	assert.Equal(t, "apple", e.Snapshot().Pattern)
}

func TestRepeatedLetterWhollyAbsent(t *testing.T) {
	e := newEngine(t, "apple", "angle", "ankle")
	won, err := e.Observe("apple", game.Strings(game.Grade("ankle", "apple")))
	require.NoError(t, err)
	assert.False(t, won)

	k := e.Snapshot()
	assert.Equal(t, 0, k.Exact['p'])
	assert.Equal(t, "a??le", k.Pattern)
	// angle agrees with every fact learned so far; only apple is ruled out
	assert.Equal(t, []string{"angle", "ankle"}, e.Candidates().Words())

	_, err = e.Observe("angle", game.Strings(game.Grade("ankle", "angle")))
	require.NoError(t, err)
	assert.Equal(t, []string{"ankle"}, e.Candidates().Words())
}

func TestRepeatedLetterExactCount(t *testing.T) {
	e := newEngine(t, "glass", "sassy", "class")
	require.Equal(t, []game.Mark{game.MarkPresent, game.MarkPresent, game.MarkAbsent, game.MarkCorrect, game.MarkAbsent},
		game.Grade("glass", "sassy"))

	require.NoError(t, e.Update("sassy", Feedback{P, P, A, C, A}))
	k := e.Snapshot()
	assert.Equal(t, 2, k.Exact['s'])
	assert.NotContains(t, k.Min, byte('s'))
	assert.Equal(t, 1, k.Min['a'])

	assert.True(t, e.Matches("glass"))
	assert.True(t, e.Matches("class"))
	assert.False(t, e.Matches("asass"), "three s")
	assert.False(t, e.Matches("basis"), "letters at excluded positions")
}

func TestExactCountPrecedence(t *testing.T) {
	e := newEngine(t, "glass")
	require.NoError(t, e.Update("sassy", Feedback{P, P, A, C, A}))

	// all occurrences accounted: a minimum-count signal of one s
	require.NoError(t, e.Update("stuck", Feedback{P, A, A, A, A}))
	// one accounted, two rejected: would reset the exact count to one
	require.NoError(t, e.Update("sissy", Feedback{A, A, A, C, A}))

	k := e.Snapshot()
	assert.Equal(t, 2, k.Exact['s'])
	assert.NotContains(t, k.Min, byte('s'))
}

func TestMinimumCount(t *testing.T) {
	e := newEngine(t, "eerie")
	require.NoError(t, e.Update("geese", Feedback{A, C, P, A, C}))
	k := e.Snapshot()
	assert.Equal(t, 3, k.Min['e'])
	assert.NotContains(t, k.Exact, byte('e'))
	assert.True(t, e.Matches("eerie"))
	assert.False(t, e.Matches("geese"))

	// a later round with fewer accounted e's does not lower the bound
	e = newEngine(t, "level")
	require.NoError(t, e.Update("leech", Feedback{C, C, P, A, A}))
	require.NoError(t, e.Update("merit", Feedback{A, C, A, A, A}))
	k = e.Snapshot()
	assert.Equal(t, 2, k.Min['e'])
	assert.Equal(t, 1, k.Min['l'])
	assert.Equal(t, "le???", k.Pattern)
	assert.True(t, e.Matches("level"))
}

func TestPositionFix(t *testing.T) {
	e := newEngine(t, "apple", "angle", "ankle")
	require.NoError(t, e.Update("apple", Feedback{C, A, A, C, C}))
	require.NoError(t, e.Update("angle", Feedback{C, C, A, C, C}), "same letter again is a no-op")
	assert.Equal(t, "an?le", e.Snapshot().Pattern)

	before := e.Snapshot()
	err := e.Update("bngle", Feedback{C, C, A, C, C})
	assert.ErrorIs(t, err, ErrInconsistentFeedback)
	assert.Equal(t, before, e.Snapshot(), "a rejected round changes nothing")
}

func TestFixedLetterGradedAgain(t *testing.T) {
	for _, fb := range []Feedback{{P, C, A, C, C}, {A, C, A, C, C}} {
		t.Run(fb[0].String(), func(t *testing.T) {
			e := newEngine(t, "apple", "angle", "ankle")
			require.NoError(t, e.Update("apple", Feedback{C, A, A, C, C}))

			before := e.Snapshot()
			err := e.Update("angle", fb)
			assert.ErrorIs(t, err, ErrInconsistentFeedback)
			assert.NotErrorIs(t, err, ErrNoCandidates)
			assert.Equal(t, before, e.Snapshot())
			assert.Equal(t, 2, e.Candidates().Size())
		})
	}
}

func TestObserveErrors(t *testing.T) {
	e := newEngine(t, "apple", "angle", "ankle")

	_, err := e.Observe("apple", []string{"correct", "maybe", "absent", "correct", "correct"})
	assert.ErrorIs(t, err, ErrUnexpectedFeedback)
	assert.Equal(t, 3, e.Candidates().Size())

	// the answer is not in the dictionary
	_, err = e.Observe("apple", game.Strings(game.Grade("zebra", "apple")))
	assert.ErrorIs(t, err, ErrNoCandidates)

	assert.Error(t, e.Update("app", Feedback{}))
	assert.ErrorIs(t, e.Update("apple", Feedback{C, C, Symbol(9), C, C}), ErrUnexpectedFeedback)
}

// Plays full games against every answer in the embedded list, checking that
// the answer is never filtered out and that the set never grows.
func TestSoundAndMonotonic(t *testing.T) {
	list, err := words.Load("", "")
	require.NoError(t, err)
	dict := list.Answers()

	for n, answer := range dict {
		c := NewCandidates(seeded(uint64(n)))
		require.NoError(t, c.Load(dict))
		e := NewEngine(c)

		for round := 1; round <= MaxRounds; round++ {
			guess, err := e.Guess()
			require.NoError(t, err)

			before := c.Size()
			won, err := e.Observe(guess, game.Strings(game.Grade(answer, guess)))
			require.NoError(t, err, "answer %s guess %s", answer, guess)
			if won {
				require.Equal(t, answer, guess)
				break
			}
			require.LessOrEqual(t, c.Size(), before)
			require.Contains(t, c.Words(), answer)
			require.NotContains(t, c.Words(), guess)
		}
	}
}
