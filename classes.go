package guard

import "fmt"

// Class represents an error kind in an explicit hierarchy.
// Classes are compared by identity, never by name: two classes created with
// the same name are unrelated. A class is immutable after construction, and
// its ancestry is the subclass relation every guard in this package
// matches against.
type Class struct {
	name   string
	parent *Class
}

// Builtin classes.
//
// The hierarchy mirrors the platform's error code catalog, with temporary
// conditions grouped under ClassTransient so a single rule can target all of
// them. Applications are expected to grow their own branches with Subclass.
var (
	// ClassFailure is the root of the builtin hierarchy. Every builtin
	// class is a subclass of it.
	ClassFailure = NewClass("FAILURE")

	// ClassConfig indicates a configuration error. This package reports its
	// own construction-time failures with it.
	ClassConfig = ClassFailure.Subclass("INVALID_CONFIGURATION")

	// ClassInvalid indicates the provided input is invalid or malformed.
	ClassInvalid = ClassFailure.Subclass("INVALID_INPUT")

	// ClassNotFound indicates a requested resource does not exist.
	ClassNotFound = ClassFailure.Subclass("NOT_FOUND")

	// ClassConflict indicates a resource state conflict that prevents the
	// operation.
	ClassConflict = ClassFailure.Subclass("CONFLICT")

	// ClassInternal indicates an internal system error occurred.
	ClassInternal = ClassFailure.Subclass("INTERNAL_ERROR")

	// ClassTransient groups temporary conditions where a retry may help.
	ClassTransient = ClassFailure.Subclass("TRANSIENT")

	// ClassTimeout indicates an operation exceeded its time limit.
	ClassTimeout = ClassTransient.Subclass("TIMEOUT")

	// ClassUnavailable indicates a service is temporarily unavailable.
	ClassUnavailable = ClassTransient.Subclass("SERVICE_UNAVAILABLE")

	// ClassRateLimit indicates a rate limit has been exceeded.
	ClassRateLimit = ClassTransient.Subclass("RATE_LIMIT_EXCEEDED")
)

// NewClass creates a new root class with no parent.
//
// Example:
//
//	ClassStorage := guard.NewClass("STORAGE")
func NewClass(name string) *Class {
	return &Class{name: name}
}

// Subclass creates a new class whose parent is the receiver.
// On a nil receiver it behaves like NewClass and produces a root.
//
// Example:
//
//	ClassStorageCorrupt := ClassStorage.Subclass("STORAGE_CORRUPT")
func (c *Class) Subclass(name string) *Class {
	return &Class{name: name, parent: c}
}

// Name returns the class name. It returns "" on a nil receiver.
func (c *Class) Name() string {
	if c == nil {
		return ""
	}
	return c.name
}

// Parent returns the parent class, or nil for a root class.
func (c *Class) Parent() *Class {
	if c == nil {
		return nil
	}
	return c.parent
}

// Is reports whether ancestor is the receiver or appears on the receiver's
// parent chain. This is the "is-a" relation used for all matching: an error
// classed as ClassTimeout matches a guard configured with ClassTransient.
//
// It returns false when either side is nil.
func (c *Class) Is(ancestor *Class) bool {
	if ancestor == nil {
		return false
	}
	for k := c; k != nil; k = k.parent {
		if k == ancestor {
			return true
		}
	}
	return false
}

// String returns the class name.
func (c *Class) String() string {
	return c.Name()
}

// New creates a new Error of this class with the given message.
//
// Example:
//
//	err := guard.ClassNotFound.New("project not found")
func (c *Class) New(message string) *Error {
	return &Error{class: c, message: message}
}

// Newf creates a new Error of this class with a formatted message.
//
// Example:
//
//	err := guard.ClassInvalid.Newf("name too long: %d characters (max %d)", len(name), maxLen)
func (c *Class) Newf(format string, args ...any) *Error {
	return &Error{class: c, message: fmt.Sprintf(format, args...)}
}

// Wrap creates a new Error of this class with err as its explicit cause.
// The cause is accessible via Unwrap and compatible with errors.Is and
// errors.As.
//
// A nil err behaves like New and yields an error with no cause; Wrap never
// returns nil.
//
// Example:
//
//	if err := fetch(ctx, url); err != nil {
//	    return guard.ClassUnavailable.Wrap(err, "failed to fetch manifest")
//	}
func (c *Class) Wrap(err error, message string) *Error {
	if err == nil {
		return c.New(message)
	}
	return &Error{class: c, message: message, cause: err}
}

// Wrapf creates a new Error of this class with a formatted message and err
// as its explicit cause. A nil err behaves like Newf.
func (c *Class) Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return c.Newf(format, args...)
	}
	return &Error{class: c, message: fmt.Sprintf(format, args...), cause: err}
}
