package utils

// CalculatePercentage returns consumed as a fraction of goal, clamped to
// [0, 1]. A zero or negative goal yields 0, never NaN or Inf.
func CalculatePercentage(consumed, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	p := consumed / goal
	if p > 1 {
		return 1
	}
	if p < 0 {
		return 0
	}
	return p
}
