package ai

// SlotCandidates captures the structured output from the model. Every field
// is optional; nil means the message said nothing about that slot.
type SlotCandidates struct {
	// Origin and Destination are IATA codes resolved by the model, or raw
	// city text when it could not resolve one.
	Origin      *string `json:"origin,omitempty"`
	Destination *string `json:"destination,omitempty"`

	// DepartureDate and ReturnDate are calendar dates (YYYY-MM-DD) computed
	// against the current date supplied in the prompt context.
	DepartureDate *string `json:"departure_date,omitempty"`
	ReturnDate    *string `json:"return_date,omitempty"`

	// RoundTrip is set when the user asked for a round trip without naming
	// a return date.
	RoundTrip bool `json:"round_trip"`

	// Passengers is an absolute replacement for the current count.
	Passengers *int `json:"passengers,omitempty"`

	// SizeSteps is a relative aircraft-tier change: +1 for "bigger",
	// -1 for "smaller", 0 when size was not mentioned.
	SizeSteps int `json:"size_steps"`
}
