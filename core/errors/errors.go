// Package errors provides standardized error types and helpers for the ismlines codebase.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the line-identifier grammar and symbol tables
var (
	// ErrMalformed indicates an identifier that does not follow the
	// species_highlevels__lowlevels grammar
	ErrMalformed = errors.New("malformed identifier")
	// ErrUnknownSpecies indicates a species with no symbol-table entry
	ErrUnknownSpecies = errors.New("unknown species")
	// ErrUnknownLabel indicates a token key with no rendering template
	ErrUnknownLabel = errors.New("unknown label")
)

// MalformedError represents an identifier grammar violation with context
type MalformedError struct {
	Input  string // Identifier or segment that failed to parse
	Reason string // Human-readable description of the violation
	Err    error  // Underlying error, if any
}

func (e *MalformedError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("malformed identifier %q: %s", e.Input, e.Reason)
	}
	return fmt.Sprintf("malformed identifier: %s", e.Reason)
}

// Unwrap keeps ErrMalformed in the chain alongside any underlying error,
// so errors.Is(err, ErrMalformed) holds on every construction path.
func (e *MalformedError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrMalformed, e.Err}
	}
	return []error{ErrMalformed}
}

// UnknownSpeciesError represents a species missing from the symbol table
type UnknownSpeciesError struct {
	Species string // Species name as extracted from the identifier
	Err     error  // Underlying error, if any
}

func (e *UnknownSpeciesError) Error() string {
	return fmt.Sprintf("unknown species: %s", e.Species)
}

func (e *UnknownSpeciesError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrUnknownSpecies, e.Err}
	}
	return []error{ErrUnknownSpecies}
}

// UnknownLabelError represents a token key that tokenized successfully but
// has no rendering template in the active backend
type UnknownLabelError struct {
	Key     string // Token key (energy label, literal key, or electronic state)
	Backend string // Notation backend consulted, if known
	Err     error  // Underlying error, if any
}

func (e *UnknownLabelError) Error() string {
	if e.Backend != "" {
		return fmt.Sprintf("no %s template for label %q", e.Backend, e.Key)
	}
	return fmt.Sprintf("no template for label %q", e.Key)
}

func (e *UnknownLabelError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrUnknownLabel, e.Err}
	}
	return []error{ErrUnknownLabel}
}

// Helper functions for creating common errors

// NewMalformed creates a MalformedError
func NewMalformed(input, reason string) *MalformedError {
	return &MalformedError{
		Input:  input,
		Reason: reason,
	}
}

// NewUnknownSpecies creates an UnknownSpeciesError
func NewUnknownSpecies(species string) *UnknownSpeciesError {
	return &UnknownSpeciesError{
		Species: species,
	}
}

// NewUnknownLabel creates an UnknownLabelError
func NewUnknownLabel(key, backend string) *UnknownLabelError {
	return &UnknownLabelError{
		Key:     key,
		Backend: backend,
	}
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
