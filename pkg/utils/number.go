package utils

import (
	"fmt"
	"math"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatCompactNumber renders large counts for metric cards: 1234567
// becomes "1.2M", 3400 becomes "3.4K", smaller values print as plain
// integers.
func FormatCompactNumber(n float64) string {
	switch {
	case n >= 1000000:
		return fmt.Sprintf("%.1fM", n/1000000)
	case n >= 1000:
		return fmt.Sprintf("%.1fK", n/1000)
	default:
		return fmt.Sprintf("%d", int64(n))
	}
}
