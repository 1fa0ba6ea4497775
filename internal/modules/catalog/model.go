// README: Reference data entities: airports and aircraft classes.
package catalog

// Airport is immutable reference data keyed by IATA code.
type Airport struct {
	Code string  `json:"code"`
	City string  `json:"city"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// AircraftClass is immutable reference data describing one charter tier.
// Tier is an explicit ordinal; "bigger aircraft" steps along it rather than
// along raw capacity, since rate and speed need not co-vary with capacity.
type AircraftClass struct {
	Name          string  `json:"name"`
	Capacity      int     `json:"capacity"`
	Tier          int     `json:"tier"`
	CruiseSpeedKt float64 `json:"cruise_speed_kt"`
	RatePerNM     float64 `json:"rate_per_nm"`
	RangeNM       int     `json:"range_nm"`
	Amenities     string  `json:"amenities"`
}

// CanAccommodate reports whether the class fits the passenger count.
func (a AircraftClass) CanAccommodate(passengers int) bool {
	return passengers <= a.Capacity
}
