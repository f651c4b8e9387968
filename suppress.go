package guard

// Suppressor swallows errors matching its classes and lets everything else
// propagate unchanged. It is stateless and immutable, so one Suppressor may
// be shared freely, concurrently included.
type Suppressor struct {
	classes []*Class
}

var _ Guard = (*Suppressor)(nil)

// Suppress creates a Suppressor for the given classes and their subclasses.
// With no classes it matches nothing and acts as a no-op guard. nil entries
// are ignored.
//
// Example:
//
//	func removeState(path string) (err error) {
//	    defer guard.Suppress(guard.ClassNotFound).Exit(&err)
//	    return remove(path)
//	}
func Suppress(classes ...*Class) *Suppressor {
	return &Suppressor{classes: filterClasses(classes)}
}

// Exit applies the suppression policy to *errp. See Guard.
func (s *Suppressor) Exit(errp *error) {
	guardExit(s, errp)
}

// Do runs fn, swallowing a matched error and propagating anything else.
func (s *Suppressor) Do(fn func() error) error {
	return guardDo(s, fn)
}

// Func returns fn wrapped so that the suppression policy applies on every
// call. It is the infallible form of Decorate for a Suppressor.
func (s *Suppressor) Func(fn func() error) func() error {
	return func() error {
		return s.decide(fn())
	}
}

// String returns a representation like "guard.Suppress(NOT_FOUND, TIMEOUT)".
func (s *Suppressor) String() string {
	return "guard.Suppress(" + classNames(s.classes) + ")"
}

func (s *Suppressor) decide(err error) error {
	if Matches(err, s.classes...) {
		return nil
	}
	return err
}

func (s *Suppressor) decoratable() error {
	return nil
}
