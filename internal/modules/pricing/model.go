// README: Quote entities and the itemized cost breakdown.
package pricing

import (
	"skyquote/internal/modules/catalog"
	"skyquote/internal/types"
)

// Breakdown itemizes one quote's cost at full precision. Rounding happens
// only when amounts are rendered (see types.USD), so alternates don't
// accumulate rounding error.
type Breakdown struct {
	BillableNM         float64
	RatePerNM          float64
	BaseCost           float64 // billable nm × rate, doubled for round trips
	LandingFee         float64
	SegmentFee         float64
	LeadTimeMultiplier float64
	WeekendMultiplier  float64
	Subtotal           float64
	Taxes              float64
	Total              float64
}

// Quote is one aircraft option for a complete trip request.
type Quote struct {
	Aircraft        catalog.AircraftClass
	DistanceNM      float64
	FlightTimeHours float64 // one-way
	RoundTrip       bool
	Breakdown       Breakdown
}

// TotalMoney returns the presentation-rounded total.
func (q Quote) TotalMoney() types.Money {
	return types.USD(q.Breakdown.Total)
}
