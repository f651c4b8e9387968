package guard

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSuppress_ExitSwallowsMatched(t *testing.T) {
	run := func() (err error) {
		defer Suppress(ClassNotFound).Exit(&err)
		return ClassNotFound.New("missing")
	}

	require.NoError(t, run())
}

func TestSuppress_ExitPropagatesUnmatched(t *testing.T) {
	orig := ClassConflict.New("busy")
	run := func() (err error) {
		defer Suppress(ClassNotFound).Exit(&err)
		return orig
	}

	got := run()
	require.Same(t, orig, got)
}

func TestSuppress_SubclassMatched(t *testing.T) {
	err := Suppress(ClassTransient).Do(func() error {
		return ClassTimeout.New("deadline exceeded")
	})

	require.NoError(t, err)
}

func TestSuppress_ForeignErrorPropagates(t *testing.T) {
	orig := stderrors.New("plain failure")
	got := Suppress(ClassFailure).Do(func() error { return orig })

	require.Same(t, orig, got)
}

func TestSuppress_WrappedErrorMatched(t *testing.T) {
	err := Suppress(ClassNotFound).Do(func() error {
		return ClassInternal.Wrap(ClassNotFound.New("missing"), "lookup failed")
	})

	// The outermost class decides: INTERNAL_ERROR is not NOT_FOUND.
	require.Error(t, err)
}

func TestSuppress_NoClasses(t *testing.T) {
	orig := ClassInvalid.New("bad input")
	got := Suppress().Do(func() error { return orig })

	require.Same(t, orig, got)
}

func TestSuppress_NilEntriesIgnored(t *testing.T) {
	err := Suppress(nil, ClassInvalid, nil).Do(func() error {
		return ClassInvalid.New("bad input")
	})

	require.NoError(t, err)
}

func TestSuppress_DoSuccess(t *testing.T) {
	require.NoError(t, Suppress(ClassFailure).Do(func() error { return nil }))
}

func TestSuppress_Func(t *testing.T) {
	calls := 0
	fn := Suppress(ClassRateLimit).Func(func() error {
		calls++
		if calls == 1 {
			return ClassRateLimit.New("throttled")
		}
		return ClassConflict.New("busy")
	})

	require.NoError(t, fn())
	require.Error(t, fn())
	require.Equal(t, 2, calls)
}

func TestSuppressor_String(t *testing.T) {
	require.Equal(t, "guard.Suppress(NOT_FOUND, TIMEOUT)", Suppress(ClassNotFound, ClassTimeout).String())
	require.Equal(t, "guard.Suppress()", Suppress().String())
}
