package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase layers and the
// console shell. Everything here is recoverable: the shell reports the
// condition and re-prompts.
var (
	// Room errors
	ErrRoomNotFound    = errors.New("room not found")
	ErrRoomOccupied    = errors.New("room is already occupied")
	ErrRoomNotOccupied = errors.New("room is not occupied")
	ErrNoOccupiedRooms = errors.New("no occupied rooms")

	// Service errors
	ErrUnknownService = errors.New("unknown service")

	// Shell errors
	ErrInvalidMenuChoice = errors.New("invalid menu choice")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")
)
