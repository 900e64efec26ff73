// Package errors provides sentinel errors and error types for the cheese engine.
// It defines the rejection kinds of move and inspect requests, plus structured
// error types that preserve context while allowing error inspection with
// errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for rejected requests.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrOutOfBounds indicates a coordinate outside the 8x8 board.
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrSameCoordinate indicates a move whose source equals its target.
	ErrSameCoordinate = errors.New("source and target are the same square")

	// ErrEmptySquare indicates there is no piece at the queried square.
	ErrEmptySquare = errors.New("no piece at square")

	// ErrNotOwned indicates the piece belongs to the side not on move.
	ErrNotOwned = errors.New("piece not owned by side to move")

	// ErrIllegalMove indicates a target outside the piece's legal moves.
	ErrIllegalMove = errors.New("illegal move")

	// ErrMissingPromotionChoice indicates a pawn reached the last rank
	// without a promotion kind. Move reports it as an event; callers
	// may convert it to this error.
	ErrMissingPromotionChoice = errors.New("missing promotion choice")

	// ErrInvalidPromotionChoice indicates a promotion kind other than
	// Queen, Rook, Bishop or Knight.
	ErrInvalidPromotionChoice = errors.New("invalid promotion choice")

	// ErrInvalidSnapshot indicates a malformed position snapshot.
	ErrInvalidSnapshot = errors.New("invalid snapshot")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidCoordinate indicates a malformed algebraic square name.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrUnknownGame indicates a session lookup for a game that does not exist.
	ErrUnknownGame = errors.New("unknown game")

	// ErrGameExists indicates a session id that is already registered.
	ErrGameExists = errors.New("game already exists")

	// ErrGameOver indicates a move request after the game has ended.
	ErrGameOver = errors.New("game is over")

	// ErrParseFailure indicates a general move-script parsing error.
	ErrParseFailure = errors.New("parse failure")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps a rejection with the request that caused it. It
// implements the error interface and supports unwrapping via errors.Is()
// and errors.As().
type MoveError struct {
	Err    error  // The underlying sentinel
	Op     string // "move" or "inspect"
	Source string // Source square (or the inspected square)
	Target string // Target square, empty for inspect
	Game   string // Session game id (if known)
	Ply    int    // 1-based ply the request would have been (0 if unknown)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Game != "" {
		parts = append(parts, fmt.Sprintf("game %s", e.Game))
	}
	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}

	op := e.Op
	if op == "" {
		op = "move"
	}
	switch {
	case e.Source != "" && e.Target != "":
		parts = append(parts, fmt.Sprintf("%s %s-%s", op, e.Source, e.Target))
	case e.Source != "":
		parts = append(parts, fmt.Sprintf("%s %s", op, e.Source))
	default:
		parts = append(parts, op)
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a move-script parsing error with location context.
type ParseError struct {
	Err    error  // The underlying error
	File   string // Source file name
	Line   int    // Line number (1-based)
	Column int    // Column number (1-based)
	Got    string // The offending token
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.File != "" {
		loc := e.File
		if e.Line > 0 {
			loc += fmt.Sprintf(":%d", e.Line)
			if e.Column > 0 {
				loc += fmt.Sprintf(":%d", e.Column)
			}
		}
		parts = append(parts, loc)
	} else if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}

	if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether any error in err's chain matches target.
// It re-exports the standard library function so callers importing this
// package under the name errors keep access to it.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
