package core

import "math"

// Interval is a scalar range. Membership is half-open: [Min, Max).
type Interval struct {
	Min, Max float64
}

// NewInterval creates an interval from its bounds
func NewInterval(minVal, maxVal float64) Interval {
	return Interval{Min: minVal, Max: maxVal}
}

// CombineIntervals returns the smallest interval enclosing both a and b
func CombineIntervals(a, b Interval) Interval {
	return Interval{Min: math.Min(a.Min, b.Min), Max: math.Max(a.Max, b.Max)}
}

// Size returns Max - Min
func (i Interval) Size() float64 {
	return i.Max - i.Min
}

// Contains reports whether Min <= x < Max
func (i Interval) Contains(x float64) bool {
	return x >= i.Min && x < i.Max
}

// Clamp limits x to [Min, Max]. NaN clamps to Min.
func (i Interval) Clamp(x float64) float64 {
	if !(x >= i.Min) {
		return i.Min
	}
	if x > i.Max {
		return i.Max
	}
	return x
}

// Expand grows the interval by delta, half on each side
func (i Interval) Expand(delta float64) Interval {
	padding := delta / 2
	return Interval{Min: i.Min - padding, Max: i.Max + padding}
}
