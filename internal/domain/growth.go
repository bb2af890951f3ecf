package domain

// CalculateGrowth returns the percentage change from previous to current.
// A zero previous value saturates the result: 0 when current is also zero,
// otherwise +100. The saturated value stands in for an infinite increase
// and must not be read as a true ratio.
func CalculateGrowth(current, previous float64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}

	return (current - previous) / previous * 100
}
