package scheduling

import "errors"

var (
	ErrPatientNotFound  = errors.New("patient not found")
	ErrProviderNotFound = errors.New("provider not found")
	ErrSlotNotFound     = errors.New("slot not found")

	ErrProviderExists = errors.New("provider already exists")
	ErrSlotTaken      = errors.New("slot already taken")

	ErrQueueFull  = errors.New("routine queue is full")
	ErrQueueEmpty = errors.New("routine queue is empty")

	ErrNothingToServe = errors.New("nothing to serve")
	ErrNothingToUndo  = errors.New("nothing to undo")

	// ErrUndoStateDiverged is returned when the state an undo record
	// describes no longer matches the live structures, e.g. the booked
	// slot was served or cancelled since. No partial rollback happens.
	ErrUndoStateDiverged = errors.New("undo target no longer matches recorded state")
)
