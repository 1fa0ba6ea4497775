// README: Common money value object used across modules.
package types

import "math"

// Money is a presentation-time amount in whole currency units. Pricing math
// stays in float64 internally; conversion here is the single place rounding
// happens.
type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// USD rounds v to the nearest whole dollar.
func USD(v float64) Money {
	return Money{Amount: int64(math.Round(v)), Currency: "USD"}
}
