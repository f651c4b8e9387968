package guard

import "strings"

// Guard is the scope primitive shared by Suppressor, Collector, and
// Wrapper: a policy applied to the error leaving a region of code.
//
// Guards activate two ways. The scoped form pairs with named returns:
//
//	func load(path string) (err error) {
//	    defer guard.Suppress(guard.ClassNotFound).Exit(&err)
//	    ...
//	}
//
// or runs a function directly with Do. The higher-order form, Decorate,
// wraps a function so the policy applies on every call.
//
// The interface is closed: only the three guard types in this package
// implement it.
type Guard interface {
	// Exit applies the guard's policy to *errp and writes the outcome
	// back. Intended for use with defer and a named return. A nil errp or
	// a nil *errp is a no-op: guards never fire without an error in
	// flight.
	Exit(errp *error)

	// Do runs fn and applies the guard's policy to its error.
	Do(fn func() error) error

	// decide applies the guard's policy to a single error. It returns nil
	// to swallow, err unchanged to propagate, or a replacement.
	decide(err error) error

	// decoratable returns nil when the guard may wrap functions, or the
	// configuration error explaining why it may not.
	decoratable() error
}

func guardExit(g Guard, errp *error) {
	if errp == nil || *errp == nil {
		return
	}
	*errp = g.decide(*errp)
}

func guardDo(g Guard, fn func() error) error {
	return g.decide(fn())
}

// Decorate wraps fn so that g's policy applies to the error of every call.
// The guard is captured by reference, not copied.
//
// It fails with a ClassConfig error when g cannot decorate: a Collector is
// scoped-only, since errors collected inside a decorated function would
// have no scope to report back to.
//
// Example:
//
//	fetch, err := guard.Decorate(guard.Suppress(guard.ClassNotFound), loadCache)
func Decorate(g Guard, fn func() error) (func() error, error) {
	if err := g.decoratable(); err != nil {
		return nil, err
	}
	return func() error {
		return g.decide(fn())
	}, nil
}

// Decorate1 wraps a value-returning fn so that g's policy applies on every
// call. The result distinguishes the three outcomes: success yields a
// present Value and a nil error, a swallowed error yields an absent Value
// and a nil error, and a propagated or replaced error yields an absent
// Value alongside it.
//
// Like Decorate, it fails with a ClassConfig error for guards that cannot
// decorate.
func Decorate1[T any](g Guard, fn func() (T, error)) (func() (Value[T], error), error) {
	if err := g.decoratable(); err != nil {
		return nil, err
	}
	return func() (Value[T], error) {
		return do1(g, fn)
	}, nil
}

// Do1 runs a value-returning fn under g's policy once, with the same
// outcome mapping as Decorate1. Unlike decoration it is a scoped
// activation, so every guard supports it, the Collector included.
func Do1[T any](g Guard, fn func() (T, error)) (Value[T], error) {
	return do1(g, fn)
}

func do1[T any](g Guard, fn func() (T, error)) (Value[T], error) {
	v, err := fn()
	if err == nil {
		return ValueOf(v), nil
	}
	if err = g.decide(err); err != nil {
		return NoValue[T](), err
	}
	return NoValue[T](), nil
}

// filterClasses returns a copy of classes with nil entries dropped, so a
// guard's configuration is fixed at construction.
func filterClasses(classes []*Class) []*Class {
	out := make([]*Class, 0, len(classes))
	for _, c := range classes {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

func classNames(classes []*Class) string {
	names := make([]string, len(classes))
	for i, c := range classes {
		names[i] = c.Name()
	}
	return strings.Join(names, ", ")
}
