// internal/solver/engine.go
//
// Constraint Engine: folds each round of (guess, feedback) into accumulated
// knowledge and narrows the Candidate Store with it.
//
// Knowledge kept per game:
//   - fixed:    letter known correct at each position (0 = unknown).
//   - excluded: letters known not to sit at each position.
//   - minCount: lower bound on a letter's occurrences.
//   - exact:    a letter's occurrences, once any occurrence was graded absent.
//
// An absent grading only rejects that occurrence. The host marks an
// occurrence absent after the letter's correct/present occurrences are used
// up, so "absent" plus k accounted occurrences means exactly k in the answer.

package solver

import (
	"fmt"
	"strings"
)

const alphabet = 26

// Engine is the knowledge state of a single game. Create one per game.
type Engine struct {
	store *Candidates

	fixed    [WordLen]byte
	excluded [WordLen]uint32 // bit (letter-'a') set when excluded
	minCount [alphabet]int
	exact    [alphabet]int
	hasExact [alphabet]bool
}

// NewEngine returns an engine with no knowledge, narrowing store.
func NewEngine(store *Candidates) *Engine {
	return &Engine{store: store}
}

// Candidates exposes the store the engine narrows.
func (e *Engine) Candidates() *Candidates { return e.store }

// Guess samples the next guess from the surviving candidates.
func (e *Engine) Guess() (string, error) { return e.store.Sample() }

// Update folds one round of feedback into the knowledge.
// The round is validated first; on error nothing is changed.
func (e *Engine) Update(guess string, fb Feedback) error {
	if !validWord(guess) {
		return fmt.Errorf("solver: invalid guess %q", guess)
	}
	for i, s := range fb {
		if s > Correct {
			return fmt.Errorf("%w: position %d: %v", ErrUnexpectedFeedback, i+1, s)
		}
		if s == Correct && e.fixed[i] != 0 && e.fixed[i] != guess[i] {
			return fmt.Errorf("%w: position %d fixed as %q, graded correct for %q",
				ErrInconsistentFeedback, i+1, e.fixed[i], guess[i])
		}
		if s != Correct && e.fixed[i] == guess[i] {
			return fmt.Errorf("%w: position %d fixed as %q, graded %v",
				ErrInconsistentFeedback, i+1, e.fixed[i], s)
		}
	}

	var accounted, rejected [alphabet]int
	for i, s := range fb {
		l := guess[i] - 'a'
		if s.accounted() {
			accounted[l]++
		} else {
			rejected[l]++
		}

		if s == Correct {
			e.fixed[i] = guess[i]
		} else {
			e.excluded[i] |= 1 << l
		}
	}

	for l := 0; l < alphabet; l++ {
		if accounted[l]+rejected[l] == 0 || e.hasExact[l] {
			continue
		}
		if rejected[l] > 0 {
			e.exact[l], e.hasExact[l] = accounted[l], true
		} else if accounted[l] > e.minCount[l] {
			e.minCount[l] = accounted[l]
		}
	}
	return nil
}

// Matches is the filter predicate: w satisfies every count, exclusion and
// position fact learned so far.
func (e *Engine) Matches(w string) bool {
	if len(w) != WordLen {
		return false
	}
	var counts [alphabet]int
	for i := 0; i < WordLen; i++ {
		c := w[i]
		if c < 'a' || c > 'z' {
			return false
		}
		if e.fixed[i] != 0 && c != e.fixed[i] {
			return false
		}
		if e.excluded[i]&(1<<(c-'a')) != 0 {
			return false
		}
		counts[c-'a']++
	}
	for l := 0; l < alphabet; l++ {
		if e.hasExact[l] {
			if counts[l] != e.exact[l] {
				return false
			}
		} else if counts[l] < e.minCount[l] {
			return false
		}
	}
	return true
}

// Filter narrows the Candidate Store to the words that still match.
func (e *Engine) Filter() error { return e.store.Filter(e.Matches) }

// Observe parses raw host feedback for guess, updates the knowledge and,
// unless the round was won, filters the candidates.
func (e *Engine) Observe(guess string, raw []string) (won bool, err error) {
	fb, err := ParseFeedback(raw)
	if err != nil {
		return false, err
	}
	if err := e.Update(guess, fb); err != nil {
		return false, err
	}
	if fb.Won() {
		return true, nil
	}
	return false, e.Filter()
}

// Knowledge is a point-in-time copy of what the engine has learned.
type Knowledge struct {
	Pattern  string          // fixed letters, '?' where unknown
	Excluded [WordLen]string // letters excluded per position, sorted
	Min      map[byte]int    // minimum counts, letters without an exact count
	Exact    map[byte]int    // exact counts
}

// Snapshot copies the current knowledge.
func (e *Engine) Snapshot() Knowledge {
	k := Knowledge{Min: map[byte]int{}, Exact: map[byte]int{}}
	var p strings.Builder
	for i := 0; i < WordLen; i++ {
		if e.fixed[i] == 0 {
			p.WriteByte('?')
		} else {
			p.WriteByte(e.fixed[i])
		}
		var ex strings.Builder
		for l := 0; l < alphabet; l++ {
			if e.excluded[i]&(1<<l) != 0 {
				ex.WriteByte(byte('a' + l))
			}
		}
		k.Excluded[i] = ex.String()
	}
	k.Pattern = p.String()
	for l := 0; l < alphabet; l++ {
		switch {
		case e.hasExact[l]:
			k.Exact[byte('a'+l)] = e.exact[l]
		case e.minCount[l] > 0:
			k.Min[byte('a'+l)] = e.minCount[l]
		}
	}
	return k
}
