package utils

import "math"

// Rounding policy for displayed metrics: percentages carry one decimal,
// currency two, ratios three. Rounding is half away from zero.

func RoundWithOneDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*10) / 10
}

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

func RoundWithThreeDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*1000) / 1000
}
