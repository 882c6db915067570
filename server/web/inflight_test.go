package web

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInFlightGuard(t *testing.T) {
	guard := newInFlightGuard()

	require.True(t, guard.Begin("1:2"))
	require.False(t, guard.Begin("1:2"))

	// Other keys are unaffected.
	require.True(t, guard.Begin("1:3"))

	guard.End("1:2")
	require.True(t, guard.Begin("1:2"))
}
