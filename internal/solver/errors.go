// internal/solver/errors.go
//
// Failure taxonomy for a solver run. Every error is fatal for the game
// attempt: callers wrap them with context and propagate, matching with
// errors.Is.

package solver

import "errors"

var (
	// ErrEmptySource: the initial word list was empty or held a malformed entry.
	ErrEmptySource = errors.New("empty or malformed word source")

	// ErrNoCandidates: accumulated knowledge eliminated every candidate.
	ErrNoCandidates = errors.New("no candidates left")

	// ErrInconsistentFeedback: a fixed position was graded correct for another letter.
	ErrInconsistentFeedback = errors.New("inconsistent feedback")

	// ErrUnexpectedFeedback: a feedback symbol outside correct/present/absent.
	ErrUnexpectedFeedback = errors.New("unexpected feedback")

	// ErrCollaboratorTimeout: the host did not answer within the bounded wait.
	ErrCollaboratorTimeout = errors.New("collaborator timeout")
)
