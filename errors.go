package odge

import "errors"

var (
	// ErrAlreadyOwned is returned when opening a control or popup that is
	// already held by a container.
	ErrAlreadyOwned = errors.New("odge: already owned by a container")

	// ErrNotManaged is returned when closing a control or popup that no
	// container holds.
	ErrNotManaged = errors.New("odge: not managed by a container")

	// ErrNotFound is returned by container lookups and by Close for an
	// element the container does not hold.
	ErrNotFound = errors.New("odge: not found")

	// ErrOutOfRange is returned when a wheel is given an index outside its
	// options.
	ErrOutOfRange = errors.New("odge: index out of range")

	// ErrNoInput is returned by New when no input facade is given.
	ErrNoInput = errors.New("odge: input is required")
)
