package guard

// Value holds the result of a guarded value-returning call, distinguishing
// "no value was produced" (the call failed and the guard swallowed the
// error) from a genuine zero value. The zero Value is the absent one.
type Value[T any] struct {
	val T
	ok  bool
}

// ValueOf returns a present Value holding v. A present Value may still hold
// T's zero value; presence and content are independent.
func ValueOf[T any](v T) Value[T] {
	return Value[T]{val: v, ok: true}
}

// NoValue returns the absent Value for T.
func NoValue[T any]() Value[T] {
	return Value[T]{}
}

// Get returns the held value and whether one is present.
func (v Value[T]) Get() (T, bool) {
	return v.val, v.ok
}

// Ok reports whether a value is present.
func (v Value[T]) Ok() bool {
	return v.ok
}

// Or returns the held value when present, otherwise fallback.
func (v Value[T]) Or(fallback T) T {
	if v.ok {
		return v.val
	}
	return fallback
}

// MustGet returns the held value and panics when none is present.
func (v Value[T]) MustGet() T {
	if !v.ok {
		panic("guard: no value present")
	}
	return v.val
}
