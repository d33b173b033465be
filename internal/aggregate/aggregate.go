// Package aggregate computes rating summaries for a store.
package aggregate

import "math"

// Summary is the derived (average, count) view over a store's ratings.
type Summary struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// Summarize returns the arithmetic mean of the given rating values, rounded
// to two decimal places with halves rounded away from zero, together with
// the count. An empty set yields {0, 0}, never NaN.
func Summarize(values []int) Summary {
	if len(values) == 0 {
		return Summary{}
	}
	total := 0
	for _, v := range values {
		total += v
	}
	return Summary{
		Average: Round2(float64(total) / float64(len(values))),
		Count:   len(values),
	}
}

// Round2 rounds to two decimal places, halves away from zero.
func Round2(f float64) float64 {
	return math.Round(f*100) / 100
}
