package benchmark

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertResultInvariants(t *testing.T, res Result) {
	t.Helper()
	assert.LessOrEqual(t, res.MinTime, res.AverageTime)
	assert.LessOrEqual(t, res.AverageTime, res.MaxTime)
	assert.GreaterOrEqual(t, res.StdDev, 0.0)
	assert.GreaterOrEqual(t, res.Iterations, 1)
}

func TestRunControlledSleeps(t *testing.T) {
	delays := []time.Duration{1 * time.Millisecond, 2 * time.Millisecond, 3 * time.Millisecond}

	i := 0
	res := Run(func() {
		time.Sleep(delays[i])
		i++
	}, len(delays))

	require.Equal(t, 3, res.Iterations)

	// Sleeps guarantee at-least semantics; the upper tolerances absorb
	// scheduler jitter.
	assert.GreaterOrEqual(t, res.MinTime, 1.0)
	assert.GreaterOrEqual(t, res.MaxTime, 3.0)
	assert.InDelta(t, 2.0, res.AverageTime, 1.5)
	assert.InDelta(t, 0.816, res.StdDev, 0.8)
	assertResultInvariants(t, res)
}

func TestRunPreservesSubMillisecondLatency(t *testing.T) {
	res := Run(func() {
		time.Sleep(100 * time.Microsecond)
	}, 5)

	// A 100 µs op must read as a fractional millisecond, not zero.
	assert.Greater(t, res.MinTime, 0.0)
	assert.GreaterOrEqual(t, res.MinTime, 0.1)
	assertResultInvariants(t, res)
}

func TestRunSingleIteration(t *testing.T) {
	res := Run(func() { time.Sleep(time.Millisecond) }, 1)

	require.Equal(t, 1, res.Iterations)
	assert.Equal(t, res.MinTime, res.AverageTime)
	assert.Equal(t, res.MaxTime, res.AverageTime)
	assert.Equal(t, 0.0, res.StdDev)
}

func TestRunClampsIterationCount(t *testing.T) {
	res := Run(func() {}, 0)
	assert.Equal(t, 1, res.Iterations)
}

func TestRandomMessageLength(t *testing.T) {
	for _, size := range []int{1, 16, 1024} {
		msg := RandomMessage(size)
		assert.Len(t, msg, size)
	}
}

func TestRandomMessageNotRepeated(t *testing.T) {
	a := RandomMessage(64)
	b := RandomMessage(64)
	assert.False(t, bytes.Equal(a, b), "two 64-byte messages should differ")
}
