package cleaning

import "hotel-portal/internal/pkg/errs"

// State of a room on the cleaning board.
type State string

const (
	StateIdle       State = "idle"
	StateInProgress State = "in-progress"
)

var ErrCleaningTransition = errs.Validation("This room cannot change to the requested cleaning state.")

// Start moves idle to in-progress.
func (s State) Start() (State, error) {
	if s != StateIdle && s != "" {
		return s, ErrCleaningTransition
	}
	return StateInProgress, nil
}

// Finish moves in-progress to idle.
func (s State) Finish() (State, error) {
	if s != StateInProgress {
		return s, ErrCleaningTransition
	}
	return StateIdle, nil
}

const (
	StartedMessage  = "Room cleaning started successfully!"
	FinishedMessage = "Room cleaning completed successfully!"
)
