package core

import "math"

// Interval is a closed range [Min, Max] of ray parameters. An interval with
// Min > Max is empty.
type Interval struct {
	Min, Max float64
}

var (
	EmptyInterval    = Interval{Min: math.Inf(1), Max: math.Inf(-1)}
	UniverseInterval = Interval{Min: math.Inf(-1), Max: math.Inf(1)}
)

// NewInterval creates a new interval
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// Size returns Max - Min. Negative for empty intervals.
func (i Interval) Size() float64 {
	return i.Max - i.Min
}

// Contains reports whether v lies in [Min, Max]
func (i Interval) Contains(v float64) bool {
	return i.Min <= v && v <= i.Max
}

// Surrounds reports whether v lies in (Min, Max)
func (i Interval) Surrounds(v float64) bool {
	return i.Min < v && v < i.Max
}

// Clamp saturates v to [Min, Max]
func (i Interval) Clamp(v float64) float64 {
	if v < i.Min {
		return i.Min
	}
	if v > i.Max {
		return i.Max
	}
	return v
}

// IsEmpty reports whether the interval contains no values
func (i Interval) IsEmpty() bool {
	return i.Min > i.Max
}

// WithMax returns a copy of the interval with a new upper bound
func (i Interval) WithMax(max float64) Interval {
	return Interval{Min: i.Min, Max: max}
}

// Union returns the smallest interval enclosing both intervals
func (i Interval) Union(other Interval) Interval {
	return Interval{Min: math.Min(i.Min, other.Min), Max: math.Max(i.Max, other.Max)}
}
