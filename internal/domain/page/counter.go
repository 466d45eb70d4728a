package page

import (
	"math"
	"strconv"
	"time"
)

// DefaultCounterDuration is how long an impact counter takes to reach its
// target.
const DefaultCounterDuration = 2 * time.Second

// Counter animates a metric from zero to Target over Duration with an
// ease-out curve.
type Counter struct {
	Target   float64
	Duration time.Duration
}

// NewCounter returns a counter for target. A non-positive duration falls back
// to DefaultCounterDuration.
func NewCounter(target float64, duration time.Duration) Counter {
	if duration <= 0 {
		duration = DefaultCounterDuration
	}
	return Counter{Target: target, Duration: duration}
}

// Value returns the displayed value after elapsed. It is monotone, 0 at the
// start, and exactly Target once Duration has passed.
func (c Counter) Value(elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	if elapsed >= c.Duration {
		return c.Target
	}
	progress := float64(elapsed) / float64(c.Duration)
	eased := 1 - math.Pow(1-progress, 3)
	return c.Target * eased
}

// Done reports whether the animation has finished.
func (c Counter) Done(elapsed time.Duration) bool {
	return elapsed >= c.Duration
}

// FormatMetric renders a metric value the way the page shows it: thousands as
// "108k", fractional values with one decimal place.
func FormatMetric(value float64, suffix string) string {
	var s string
	switch {
	case value >= 1000:
		s = strconv.FormatFloat(math.Floor(value/1000), 'f', 0, 64) + "k"
	case value != math.Trunc(value):
		s = strconv.FormatFloat(value, 'f', 1, 64)
	default:
		s = strconv.FormatFloat(value, 'f', 0, 64)
	}
	return s + suffix
}

// Format renders an intermediate value v of the counter. Integral targets
// never show a fractional value.
func (c Counter) Format(v float64, suffix string) string {
	if c.Target == math.Trunc(c.Target) {
		v = math.Floor(v)
	}
	return FormatMetric(v, suffix)
}
