package guard

import "fmt"

// RaiseFunc always fails with a preconfigured error. It accepts and ignores
// arbitrary arguments so it can slot into callback signatures whose inputs
// are irrelevant to the failure.
type RaiseFunc func(args ...any) error

// Raiser creates a function that always returns a fresh Error of the given
// class and message. Each call constructs a new value, so no shared error
// escapes into multiple callers. A nil class defaults to ClassFailure.
//
// Example:
//
//	handlers["legacy"] = guard.Raiser(guard.ClassInvalid, "legacy endpoint removed")
func Raiser(class *Class, message string) RaiseFunc {
	if class == nil {
		class = ClassFailure
	}
	return func(...any) error {
		return class.New(message)
	}
}

// Raiserf is Raiser with a formatted message. The message is formatted
// once, at construction.
func Raiserf(class *Class, format string, args ...any) RaiseFunc {
	return Raiser(class, fmt.Sprintf(format, args...))
}
