// internal/solver/candidates.go
//
// Candidate Store: the words still consistent with every round of feedback.
//
// The dictionary is loaded once into an immutable slice; the live set is a
// bit set over dictionary indices. Filtering only ever clears bits, so the
// set can narrow or stay the same but never grow.

package solver

import (
	"fmt"
	"math/rand/v2"

	"github.com/bits-and-blooms/bitset"
)

// Candidates holds the surviving words of one game.
type Candidates struct {
	words []string       // dictionary in load order, deduplicated
	live  *bitset.BitSet // indices into words still in play
	rng   *rand.Rand
}

// NewCandidates returns an empty store sampling from rng.
// A nil rng gets a randomly seeded source.
func NewCandidates(rng *rand.Rand) *Candidates {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Candidates{rng: rng, live: bitset.New(0)}
}

// Load replaces the store contents with words.
// Fails with ErrEmptySource when words is empty or any entry is not
// exactly WordLen lowercase letters; the store is left untouched then.
func (c *Candidates) Load(words []string) error {
	if len(words) == 0 {
		return fmt.Errorf("%w: no words", ErrEmptySource)
	}
	seen := make(map[string]struct{}, len(words))
	dict := make([]string, 0, len(words))
	for i, w := range words {
		if !validWord(w) {
			return fmt.Errorf("%w: entry %d %q is not a %d-letter lowercase word", ErrEmptySource, i+1, w, WordLen)
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		dict = append(dict, w)
	}

	live := bitset.New(uint(len(dict)))
	for i := range dict {
		live.Set(uint(i))
	}
	c.words, c.live = dict, live
	return nil
}

// Filter keeps only the candidates satisfying keep.
// If nothing would survive, it returns ErrNoCandidates and keeps the
// current set.
func (c *Candidates) Filter(keep func(string) bool) error {
	next := c.live.Clone()
	for i, ok := c.live.NextSet(0); ok; i, ok = c.live.NextSet(i + 1) {
		if !keep(c.words[i]) {
			next.Clear(i)
		}
	}
	if next.None() {
		return fmt.Errorf("%w: all %d candidates eliminated", ErrNoCandidates, c.live.Count())
	}
	c.live = next
	return nil
}

// Sample returns a uniformly random surviving candidate.
func (c *Candidates) Sample() (string, error) {
	n := c.live.Count()
	if n == 0 {
		return "", ErrNoCandidates
	}
	k := uint(c.rng.IntN(int(n)))
	i, _ := c.live.NextSet(0)
	for ; k > 0; k-- {
		i, _ = c.live.NextSet(i + 1)
	}
	return c.words[i], nil
}

// Size returns the number of surviving candidates.
func (c *Candidates) Size() int { return int(c.live.Count()) }

// Words returns the surviving candidates in load order.
func (c *Candidates) Words() []string {
	out := make([]string, 0, c.live.Count())
	for i, ok := c.live.NextSet(0); ok; i, ok = c.live.NextSet(i + 1) {
		out = append(out, c.words[i])
	}
	return out
}

// validWord checks that w is exactly WordLen bytes of a–z.
func validWord(w string) bool {
	if len(w) != WordLen {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}
