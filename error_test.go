package guard

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestError_Error(t *testing.T) {
	err := ClassNotFound.New("user not found")

	require.Equal(t, "[NOT_FOUND] user not found", err.Error())
}

func TestError_Error_WithCause(t *testing.T) {
	inner := ClassTimeout.New("deadline exceeded")
	err := ClassUnavailable.Wrap(inner, "backend gave up")

	require.Equal(t, "[SERVICE_UNAVAILABLE] backend gave up: [TIMEOUT] deadline exceeded", err.Error())
}

func TestError_Error_ZeroValue(t *testing.T) {
	var err Error

	require.Equal(t, "[UNKNOWN] ", err.Error())
	require.Nil(t, err.Class())
}

func TestError_Message(t *testing.T) {
	inner := stderrors.New("boom")
	err := ClassInternal.Wrap(inner, "operation failed")

	require.Equal(t, "operation failed", err.Message())
}

func TestError_Unwrap_Cause(t *testing.T) {
	inner := stderrors.New("boom")
	err := ClassInternal.Wrap(inner, "operation failed")

	require.Same(t, inner, stderrors.Unwrap(err))
}

func TestError_Unwrap_ContextWhenNoCause(t *testing.T) {
	orig := ClassTimeout.New("deadline exceeded")
	w, err := Wrap(ClassTimeout, ClassUnavailable, WithoutCause())
	require.NoError(t, err)

	replaced := w.decide(orig).(*Error)

	require.Nil(t, replaced.Cause())
	require.Same(t, orig, replaced.Context())
	require.Same(t, orig, stderrors.Unwrap(replaced))
}

func TestError_Unwrap_SuppressedContextStaysReachable(t *testing.T) {
	orig := ClassTimeout.New("deadline exceeded")
	w, err := Wrap(ClassTimeout, ClassUnavailable, WithoutCause(), WithSuppressContext())
	require.NoError(t, err)

	replaced := w.decide(orig).(*Error)

	require.True(t, replaced.ContextSuppressed())
	require.True(t, stderrors.Is(replaced, orig))
}

func TestError_ChainCompatibility(t *testing.T) {
	sentinel := stderrors.New("sentinel")
	mid := ClassInternal.Wrap(sentinel, "layer one")
	outer := ClassUnavailable.Wrap(mid, "layer two")

	require.True(t, stderrors.Is(outer, sentinel))
	require.True(t, stderrors.Is(outer, mid))

	var classed *Error
	require.True(t, stderrors.As(outer, &classed))
	require.Same(t, outer, classed)
}

func TestClassOf(t *testing.T) {
	err := ClassNotFound.New("missing")

	require.Same(t, ClassNotFound, ClassOf(err))
}

func TestClassOf_Nil(t *testing.T) {
	require.Nil(t, ClassOf(nil))
}

func TestClassOf_ForeignError(t *testing.T) {
	require.Nil(t, ClassOf(stderrors.New("plain")))
}

func TestClassOf_ThroughWrapping(t *testing.T) {
	inner := ClassTimeout.New("deadline exceeded")
	wrapped := fmt.Errorf("fetching manifest: %w", inner)

	require.Same(t, ClassTimeout, ClassOf(wrapped))
}

func TestClassOf_ThroughJoin(t *testing.T) {
	joined := stderrors.Join(stderrors.New("plain"), ClassInvalid.New("bad input"))

	require.Same(t, ClassInvalid, ClassOf(joined))
}

func TestClassOf_OutermostWins(t *testing.T) {
	inner := ClassTimeout.New("deadline exceeded")
	outer := ClassUnavailable.Wrap(inner, "backend gave up")

	require.Same(t, ClassUnavailable, ClassOf(outer))
}

func TestMessageOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"classed error yields bare message", ClassNotFound.New("missing"), "missing"},
		{"classed error with cause yields bare message", ClassInternal.Wrap(stderrors.New("boom"), "failed"), "failed"},
		{"foreign error yields full text", stderrors.New("plain failure"), "plain failure"},
		{"foreign wrapper yields full text", fmt.Errorf("reading: %w", ClassInvalid.New("bad")), "reading: [INVALID_INPUT] bad"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, messageOf(tt.err))
		})
	}
}
