package guard

import (
	stderrors "errors"
	"fmt"
)

// Error is an error value carrying a Class, a message, and up to two
// back-references: an explicit cause (set deliberately when one error is
// created from another) and an implicit context (the error that was being
// replaced when this one was created).
//
// Both back-references stay reachable through Unwrap, so errors.Is and
// errors.As see the full chain even when the context is suppressed for
// display.
//
// The zero value is usable but classless; construct errors through the
// methods on Class instead.
type Error struct {
	class       *Class
	message     string
	cause       error
	context     error
	hideContext bool
}

var _ error = (*Error)(nil)

// Error returns the string representation of the error.
// Format: "[NAME] message" or "[NAME] message: cause" if a cause is present.
// The implicit context is not part of this form; it appears in the verbose
// form rendered by %+v.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.className(), e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.className(), e.message)
}

// Message returns the bare message, without the class tag or cause.
func (e *Error) Message() string {
	return e.message
}

// Class returns the error's class, or nil for a classless error.
func (e *Error) Class() *Class {
	return e.class
}

// Cause returns the explicit cause, or nil if none was set.
func (e *Error) Cause() error {
	return e.cause
}

// Context returns the implicit context: the error that was in flight when
// this one replaced it. It returns nil if there was none.
func (e *Error) Context() error {
	return e.context
}

// ContextSuppressed reports whether the implicit context is hidden from
// verbose output. A suppressed context is still returned by Context and
// still reachable through Unwrap.
func (e *Error) ContextSuppressed() bool {
	return e.hideContext
}

// Unwrap returns the explicit cause if one is set, otherwise the implicit
// context. Suppression affects display only, never reachability.
func (e *Error) Unwrap() error {
	if e.cause != nil {
		return e.cause
	}
	return e.context
}

func (e *Error) className() string {
	if e.class == nil {
		return "UNKNOWN"
	}
	return e.class.name
}

// ClassOf returns the class of the first classed error on err's chain, as
// traversed by errors.As. It returns nil if err is nil or no error on the
// chain carries a class.
//
// Any error type with a `Class() *Class` method participates, so matching
// sees through fmt.Errorf("%w", ...) wrapping and errors.Join aggregation.
//
// Example:
//
//	if guard.ClassOf(err) == guard.ClassNotFound {
//	    // Handle not found
//	}
func ClassOf(err error) *Class {
	if err == nil {
		return nil
	}
	var classed interface{ Class() *Class }
	if stderrors.As(err, &classed) {
		return classed.Class()
	}
	return nil
}

// messageOf returns the text the wrapper treats as an error's message: the
// bare Message for an Error, the full Error() text for anything else.
func messageOf(err error) string {
	if e, ok := err.(*Error); ok {
		return e.Message()
	}
	return err.Error()
}
