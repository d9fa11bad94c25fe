// internal/words/words.go
//
// Word list management for the solver and the practice host.
//
// Responsibilities:
//   - Load answer and allowed guess lists from files or fall back to the
//     embedded defaults in the assets package.
//   - Keep lookup sets (answers only, answers ∪ allowed).
//   - Supply RandomAnswer, IsAllowed, IsAnswer and Stats.
//
// Load precedence (paths usually come from WORDS_ANSWERS_FILE and
// WORDS_ALLOWED_FILE):
//   1. Both paths set: answers from the first, allowed guesses from the second.
//   2. Only the allowed path set: that file serves as both lists.
//   3. Neither set: embedded answers.txt / allowed.txt.
//
// Lines are trimmed and lower-cased; blank lines and '#' comments are
// skipped. Entries are NOT length-checked here: the solver's Candidate Store
// rejects a malformed list as a whole instead of silently dropping words.

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"sort"
	"strings"

	"github.com/peter-ruse/wordle-solver/assets"
)

// ErrEmpty is returned when the answers list ends up empty.
var ErrEmpty = errors.New("words: answers list is empty")

// List is an immutable pair of answer and allowed-guess lists.
type List struct {
	answers    []string            // canonical answers, file order
	allowed    []string            // answers ∪ allowed, sorted
	answersSet map[string]struct{} // answers only
	allowedSet map[string]struct{} // answers ∪ allowed
}

// Load builds a List following the package precedence rules.
func Load(answersPath, allowedPath string) (*List, error) {
	var ansList, allowList []string
	var err error

	switch {
	case answersPath != "" && allowedPath != "":
		if ansList, err = readFile(answersPath); err != nil {
			return nil, err
		}
		if allowList, err = readFile(allowedPath); err != nil {
			return nil, err
		}

	case allowedPath != "":
		if allowList, err = readFile(allowedPath); err != nil {
			return nil, err
		}
		ansList = allowList

	default:
		if ansList, err = readEmbedded(assets.AnswersFile); err != nil {
			return nil, err
		}
		if allowList, err = readEmbedded(assets.AllowedFile); err != nil {
			return nil, err
		}
	}

	if len(ansList) == 0 {
		return nil, ErrEmpty
	}
	return New(ansList, allowList), nil
}

// New builds a List from in-memory slices. Answers are always allowed.
func New(answers, allowed []string) *List {
	l := &List{
		answers:    answers,
		answersSet: toSet(answers),
		allowedSet: toSet(answers),
	}
	for _, w := range allowed {
		l.allowedSet[w] = struct{}{}
	}
	l.allowed = make([]string, 0, len(l.allowedSet))
	for w := range l.allowedSet {
		l.allowed = append(l.allowed, w)
	}
	sort.Strings(l.allowed)
	return l
}

// ReadLines reads one word per line, lower-cased and trimmed,
// skipping blank lines and '#' comments.
func ReadLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.ToLower(strings.TrimSpace(sc.Text()))
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

func readFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: %w", err)
	}
	defer f.Close()
	return ReadLines(f)
}

func readEmbedded(name string) ([]string, error) {
	f, err := assets.FS.Open(name)
	if err != nil {
		return nil, fmt.Errorf("words: embedded %s: %w", name, err)
	}
	defer f.Close()
	return ReadLines(f)
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// Answers returns the canonical answer list.
func (l *List) Answers() []string { return l.answers }

// Allowed returns every valid guess (answers included), sorted.
func (l *List) Allowed() []string { return l.allowed }

// RandomAnswer returns a cryptographically random answer,
// or "" if the list has none.
func (l *List) RandomAnswer() string {
	if len(l.answers) == 0 {
		return ""
	}
	n, _ := rand.Int(rand.Reader, big.NewInt(int64(len(l.answers))))
	return l.answers[n.Int64()]
}

// IsAllowed reports whether w is a valid guess.
func (l *List) IsAllowed(w string) bool {
	_, ok := l.allowedSet[strings.ToLower(w)]
	return ok
}

// IsAnswer reports whether w is an answer word.
func (l *List) IsAnswer(w string) bool {
	_, ok := l.answersSet[strings.ToLower(w)]
	return ok
}

// Stats returns counts of loaded words: (answers, allowed).
func (l *List) Stats() (answersCount int, allowedCount int) {
	return len(l.answers), len(l.allowedSet)
}
