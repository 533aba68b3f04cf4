// Package errs declares the stable error kinds the engine can surface,
// wrapped with github.com/pkg/errors so callers retain a stack trace while
// still being able to test the kind with this package's Is.
package errs

import "github.com/pkg/errors"

// Kind identifies one of the error categories the engine can produce.
type Kind string

const (
	// KindValidation marks a malformed or out-of-range request.
	KindValidation Kind = "validation_error"
	// KindFilesystem marks a failure creating the audio directory or
	// committing the rendered file.
	KindFilesystem Kind = "filesystem_error"
	// KindLLMRefiner marks a network or decode failure in the optional LLM
	// refiner; callers degrade to the deterministic refiner and log a
	// warning rather than propagating this.
	KindLLMRefiner Kind = "llm_refiner_error"
)

// Error is a sentinel carrying a stable Kind alongside a human message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return string(e.Kind) + ": " + e.Message
}

// New builds an *Error of the given kind, wrapped so a stack trace is
// attached at the call site.
func New(kind Kind, message string) error {
	return errors.WithStack(&Error{Kind: kind, Message: message})
}

// Validation builds a KindValidation error.
func Validation(message string) error {
	return New(KindValidation, message)
}

// Filesystem wraps a lower-level error as a KindFilesystem error.
func Filesystem(cause error, message string) error {
	return New(KindFilesystem, message+": "+cause.Error())
}

// Is reports whether err carries the given Kind, unwrapping as needed.
func Is(err error, kind Kind) bool {
	var e *Error
	for err != nil {
		if as, ok := err.(*Error); ok {
			e = as
			break
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	if e == nil {
		return false
	}
	return e.Kind == kind
}
