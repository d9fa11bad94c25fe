// internal/game/types.go
//
// Core type definitions for the puzzle host.
// Defines:
//   - Mark: per-letter grading of a guess, spelled like the host's tile state.
//   - Game: state for a single in-progress or finished game.

package game

// Mark represents the evaluation result for a single letter in a guess.
//   - "correct": letter is in the answer at this position.
//   - "present": letter is in the answer at another position.
//   - "absent":  no unaccounted occurrence of the letter is left in the answer.
type Mark string

const (
	MarkCorrect Mark = "correct"
	MarkPresent Mark = "present"
	MarkAbsent  Mark = "absent"
)

// State is the coarse lifecycle of a game.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Game holds the state of a single puzzle.
type Game struct {
	ID       string   // Unique game identifier.
	Answer   string   // The solution word (always lowercase).
	Rows     int      // Maximum number of guesses allowed (6).
	Cols     int      // Number of letters per word (5).
	Guesses  []string // Guesses made so far (lowercased).
	Finished bool     // True once the game is over (won or lost).
	Won      bool     // True if the game was finished with a win.
}
