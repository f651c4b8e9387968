// Package guard provides composable guards that transform how errors leave
// a scope: suppress them, collect them for deferred handling, or replace
// them with errors of another kind while preserving the causal chain.
//
// Because Go has no exception class hierarchy, the package supplies one as
// data: an explicit error-kind taxonomy (Class) with single-parent ancestry,
// and a classed error type (Error) carrying an explicit cause and an
// implicit context as optional back-references. All matching is defined
// against the taxonomy, and it maintains full compatibility with the
// standard library errors package (errors.Is, errors.As, errors.Unwrap).
//
// # Features
//
//   - Error-kind taxonomy with ancestor-chain matching (a rule for a class
//     covers all of its subclasses)
//   - Suppressor: swallow matched errors, propagate the rest untouched
//   - Collector: accumulate matched errors across activations, report once
//   - Wrapper: replace matched errors by rule, with configurable message
//     derivation, explicit cause, and implicit context
//   - Raiser: build functions that always fail with a preconfigured error
//   - Scoped activation (defer g.Exit(&err), g.Do) and higher-order
//     activation (Decorate, Func) from the same guards
//   - Zero dependencies (Layer 0 library)
//
// # Quick Start
//
// Suppressing an expected error:
//
//	func removeState(path string) (err error) {
//	    defer guard.Suppress(guard.ClassNotFound).Exit(&err)
//	    return remove(path)
//	}
//
// Collecting across a batch:
//
//	errs := guard.Collect(guard.ClassInvalid)
//	for _, item := range batch {
//	    _ = errs.Do(func() error { return process(item) })
//	}
//	if err := errs.Err(); err != nil {
//	    return err
//	}
//
// Translating errors at a boundary:
//
//	w, err := guard.Wrap(guard.ClassTimeout, guard.ClassUnavailable,
//	    guard.WithPrefix("backend"))
//	if err != nil {
//	    return err
//	}
//	fetch := w.Func(fetchFromBackend)
//
// Failing a callback slot on purpose:
//
//	handlers["legacy"] = guard.Raiser(guard.ClassInvalid, "legacy endpoint removed")
//
// # Matching
//
// Every guard matches the same way: the error's class is resolved from its
// unwrap chain (the first classed error found wins, so matching sees
// through fmt.Errorf("%w", ...) and errors.Join), then compared against the
// guard's classes with the ancestor-chain "is-a" relation. Matching a class
// matches all of its subclasses.
//
// The Wrapper's rule list is ordered and the first matching rule wins.
// List a subclass rule before its ancestor's rule to keep it reachable;
// listing the ancestor first shadows the subclass rule.
//
// # Cause and Context
//
// A replacement error records the original twice: as its explicit cause
// (unless WithoutCause is used) and as its implicit context (always). Both
// stay reachable through Unwrap, so errors.Is and errors.As keep working
// against the original. WithSuppressContext hides the context from the
// verbose %+v rendering without removing it from the chain: suppression
// affects display, never reachability.
//
// # Configuration Errors
//
// Invalid configuration fails fast at construction or decoration time,
// never at error-handling time, and is reported as a classed error of
// ClassConfig:
//
//	if _, err := guard.Wrap(nil, guard.ClassInternal); err != nil {
//	    // guard.Matches(err, guard.ClassConfig) == true
//	}
//
// # Best Practices
//
//   - Suppress and wrap with the narrowest class that covers the case;
//     reach for ClassTransient-style branches, not ClassFailure
//   - Build one Wrapper per boundary and reuse it; wrappers are immutable
//   - Use one Collector per goroutine and merge with Err afterwards;
//     collectors hold no locks
//   - Prefer a fresh Raiser per configuration over sharing error values
//   - Log unhandled errors with %+v so the implicit context is not lost
package guard
