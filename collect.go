package guard

import (
	stderrors "errors"
	"fmt"
	"iter"
)

// Collector swallows errors matching its classes and appends them to an
// internal sequence for deferred handling; everything else propagates
// unchanged. A Collector is reusable: re-entering the same instance keeps
// accumulating, so a batch can collect everything that went wrong and deal
// with it once.
//
// A Collector is stateful and holds no locks. Share one across goroutines
// only with external synchronization; the usual pattern is one Collector
// per goroutine, merged afterwards via Err.
//
// Because the collection must outlive each activation to be useful, a
// Collector is scoped-only: Decorate and Decorate1 reject it with a
// ClassConfig error, and it has no Func method.
type Collector struct {
	classes   []*Class
	collected []error
}

var _ Guard = (*Collector)(nil)

// Collect creates a Collector for the given classes and their subclasses.
// With no classes it matches nothing and collects nothing. nil entries are
// ignored.
//
// Example:
//
//	errs := guard.Collect(guard.ClassInvalid)
//	for _, item := range batch {
//	    _ = errs.Do(func() error { return process(item) })
//	}
//	if err := errs.Err(); err != nil {
//	    return err
//	}
func Collect(classes ...*Class) *Collector {
	return &Collector{classes: filterClasses(classes)}
}

// Exit applies the collection policy to *errp. See Guard.
func (c *Collector) Exit(errp *error) {
	guardExit(c, errp)
}

// Do runs fn, collecting a matched error and propagating anything else.
func (c *Collector) Do(fn func() error) error {
	return guardDo(c, fn)
}

// Collected returns a copy of the collected errors in insertion order.
// Mutating the returned slice does not affect the Collector, and later
// collection does not affect slices already returned.
func (c *Collector) Collected() []error {
	out := make([]error, len(c.collected))
	copy(out, c.collected)
	return out
}

// All returns an iterator over the collected errors in insertion order.
// The iterator ranges over a snapshot taken when the loop starts, so
// collecting during iteration does not disturb it.
func (c *Collector) All() iter.Seq[error] {
	return func(yield func(error) bool) {
		for _, err := range c.Collected() {
			if !yield(err) {
				return
			}
		}
	}
}

// Len returns the number of errors collected so far.
func (c *Collector) Len() int {
	return len(c.collected)
}

// Err returns all collected errors joined into one, or nil when nothing has
// been collected. The result unwraps to the individual errors, so errors.Is
// and errors.As keep working against each of them.
func (c *Collector) Err() error {
	return stderrors.Join(c.collected...)
}

// String returns a representation like "guard.Collect(TIMEOUT) [2 collected]".
func (c *Collector) String() string {
	return fmt.Sprintf("guard.Collect(%s) [%d collected]", classNames(c.classes), len(c.collected))
}

func (c *Collector) decide(err error) error {
	if Matches(err, c.classes...) {
		c.collected = append(c.collected, err)
		return nil
	}
	return err
}

func (c *Collector) decoratable() error {
	return ClassConfig.New("collector cannot be used as a decorator; use Exit or Do")
}
