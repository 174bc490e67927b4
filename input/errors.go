package input

import "errors"

var (
	// ErrUnknownCommand is returned when a command has neither key nor button
	// bindings. Callers can tell "not pressed" apart from "not wired up".
	ErrUnknownCommand = errors.New("input: unknown command")

	// ErrTooManyPlayers is returned when more player slots are requested than
	// the gamepad source supports.
	ErrTooManyPlayers = errors.New("input: player count exceeds device slots")

	// ErrInvalidPlayer is returned for a player index outside the configured slots.
	ErrInvalidPlayer = errors.New("input: invalid player index")

	// ErrClosed is returned by queries made after Input.Close.
	ErrClosed = errors.New("input: closed")
)
