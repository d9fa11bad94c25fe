// internal/solver/feedback.go
//
// Feedback symbols as read from the puzzle host. The wire spelling is the
// host's tile state ("correct", "present", "absent").

package solver

import (
	"fmt"
	"strings"
)

const (
	// WordLen is the only supported word length.
	WordLen = 5
	// MaxRounds is the number of attempts before the game is lost.
	MaxRounds = 6
)

// Symbol is the grading of one letter-position of a guess.
type Symbol uint8

const (
	Absent Symbol = iota
	Present
	Correct
)

// String returns the host spelling of the symbol.
func (s Symbol) String() string {
	switch s {
	case Correct:
		return "correct"
	case Present:
		return "present"
	case Absent:
		return "absent"
	}
	return fmt.Sprintf("Symbol(%d)", uint8(s))
}

// accounted reports whether the occurrence counts toward the letter's total.
func (s Symbol) accounted() bool { return s == Correct || s == Present }

// ParseSymbol maps a host tile state to a Symbol.
func ParseSymbol(raw string) (Symbol, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "correct":
		return Correct, nil
	case "present":
		return Present, nil
	case "absent":
		return Absent, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnexpectedFeedback, raw)
}

// Feedback is the graded result of one guess, one symbol per position.
type Feedback [WordLen]Symbol

// ParseFeedback parses exactly WordLen host tile states.
func ParseFeedback(raw []string) (Feedback, error) {
	var fb Feedback
	if len(raw) != WordLen {
		return fb, fmt.Errorf("%w: got %d symbols, want %d", ErrUnexpectedFeedback, len(raw), WordLen)
	}
	for i, r := range raw {
		s, err := ParseSymbol(r)
		if err != nil {
			return fb, fmt.Errorf("position %d: %w", i+1, err)
		}
		fb[i] = s
	}
	return fb, nil
}

// Won reports whether every position was graded Correct.
func (f Feedback) Won() bool {
	for _, s := range f {
		if s != Correct {
			return false
		}
	}
	return true
}

// Strings returns the host spelling of each symbol.
func (f Feedback) Strings() []string {
	out := make([]string, WordLen)
	for i, s := range f {
		out[i] = s.String()
	}
	return out
}
