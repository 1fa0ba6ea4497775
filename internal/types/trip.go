package types

import "time"

// TripRequest is the slot set collected across a conversation. Zero values
// mean "not filled yet": empty string, zero time, zero passenger count.
type TripRequest struct {
	Origin        string    `json:"origin,omitempty"`
	Destination   string    `json:"destination,omitempty"`
	DepartureDate time.Time `json:"departure_date,omitempty"`
	ReturnDate    time.Time `json:"return_date,omitempty"`
	Passengers    int       `json:"passengers,omitempty"`
}

// Complete reports whether the request is eligible for pricing. A return
// date is never required; passenger count is defaulted to 1 on merge, so in
// practice only origin, destination and departure date gate completeness.
func (t TripRequest) Complete() bool {
	return t.Origin != "" && t.Destination != "" && !t.DepartureDate.IsZero() && t.Passengers > 0
}

// IsRoundTrip reports whether a return date is present.
func (t TripRequest) IsRoundTrip() bool {
	return !t.ReturnDate.IsZero()
}

// EffectivePassengers returns the passenger count, defaulting to 1 when the
// slot was never filled.
func (t TripRequest) EffectivePassengers() int {
	if t.Passengers <= 0 {
		return 1
	}
	return t.Passengers
}
