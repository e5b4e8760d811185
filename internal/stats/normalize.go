// Package stats is the aggregation and ranking core. Every function here is
// a pure fold over an in-memory snapshot already fetched from the store: no
// I/O, no mutation of the inputs, bounded time proportional to input size.
package stats

import "burgerlog/internal/models"

// Score normalizes a single rating to a value in [0,5]: the arithmetic mean
// of the five mandatory categories, extended to six when the optional fries
// score was supplied. Input validation is the caller's responsibility.
func Score(r models.Rating) float64 {
	sum := float64(r.Meat + r.Cheese + r.Juiciness + r.Bread + r.Sauce)
	n := 5.0
	if r.Fries != nil {
		sum += float64(*r.Fries)
		n++
	}
	return sum / n
}
