package detectors

import "math"

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// populationStdDev divides by n, not n-1
func populationStdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	avg := mean(values)
	var squares float64
	for _, v := range values {
		diff := v - avg
		squares += diff * diff
	}
	return math.Sqrt(squares / float64(len(values)))
}

// percentOf returns part/whole*100 computed so that exact ratios stay exact, 0 when whole <= 0
func percentOf(part, whole int64) float64 {
	if whole <= 0 {
		return 0
	}
	return float64(part) * 100 / float64(whole)
}
