package page

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCounterBoundaries(t *testing.T) {
	c := NewCounter(108000, time.Second)

	require.Zero(t, c.Value(0))
	require.Zero(t, c.Value(-time.Millisecond))
	require.Equal(t, 108000.0, c.Value(time.Second))
	require.Equal(t, 108000.0, c.Value(5*time.Second))
	require.True(t, c.Done(time.Second))
	require.False(t, c.Done(999*time.Millisecond))
}

func TestCounterIsMonotone(t *testing.T) {
	c := NewCounter(8.6, 2*time.Second)

	prev := -1.0
	for elapsed := time.Duration(0); elapsed <= 2*time.Second; elapsed += 50 * time.Millisecond {
		v := c.Value(elapsed)
		require.GreaterOrEqual(t, v, prev)
		require.LessOrEqual(t, v, 8.6)
		prev = v
	}
}

func TestCounterDefaultsDuration(t *testing.T) {
	require.Equal(t, DefaultCounterDuration, NewCounter(1, 0).Duration)
}

func TestFormatMetric(t *testing.T) {
	cases := []struct {
		value  float64
		suffix string
		want   string
	}{
		{108000, "+", "108k+"},
		{20000, "+", "20k+"},
		{8.6, "m", "8.6m"},
		{10, "+ Years", "10+ Years"},
		{0, "", "0"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, FormatMetric(tc.value, tc.suffix))
	}
}

func TestCounterFormatHidesFractionsForIntegralTargets(t *testing.T) {
	c := NewCounter(10, time.Second)
	require.Regexp(t, `^\d+\+$`, c.Format(c.Value(300*time.Millisecond), "+"))
	require.Equal(t, "7+", c.Format(7.9, "+"))
	require.Equal(t, "10+", c.Format(c.Value(time.Second), "+"))

	frac := NewCounter(8.6, time.Second)
	require.Equal(t, "4.3m", frac.Format(4.3, "m"))
}
