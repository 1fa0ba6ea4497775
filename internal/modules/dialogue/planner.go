// README: Clarification planner: picks the single next follow-up question.
package dialogue

import (
	"fmt"
	"strings"

	"skyquote/internal/types"
)

const dateLayout = "2006-01-02"

// NextQuestion returns the follow-up question for an incomplete trip
// request, or "" when the request is complete. The same state always yields
// the same text. Priority: origin and destination (asked together when both
// are missing), then departure date. Passenger count defaults to 1 and
// never blocks completeness, so it is summarized rather than asked for.
func NextQuestion(trip types.TripRequest) string {
	if trip.Complete() {
		return ""
	}
	return summarize(trip) + " " + question(trip)
}

func question(trip types.TripRequest) string {
	switch {
	case trip.Origin == "" && trip.Destination == "":
		return "Where are you flying from, and where to?"
	case trip.Origin == "":
		return "Where are you flying from?"
	case trip.Destination == "":
		return "Where are you flying to?"
	default:
		return fmt.Sprintf("When would you like to depart from %s to %s?", trip.Origin, trip.Destination)
	}
}

// summarize reports known fields and the remaining gaps so the user is
// never asked to repeat information.
func summarize(trip types.TripRequest) string {
	var known []string
	if trip.Origin != "" {
		known = append(known, "origin: "+trip.Origin)
	}
	if trip.Destination != "" {
		known = append(known, "destination: "+trip.Destination)
	}
	if !trip.DepartureDate.IsZero() {
		known = append(known, "departure_date: "+trip.DepartureDate.Format(dateLayout))
	}
	if !trip.ReturnDate.IsZero() {
		known = append(known, "return_date: "+trip.ReturnDate.Format(dateLayout))
	}
	known = append(known, fmt.Sprintf("passengers: %d", trip.EffectivePassengers()))

	var missing []string
	if trip.Origin == "" {
		missing = append(missing, "origin")
	}
	if trip.Destination == "" {
		missing = append(missing, "destination")
	}
	if trip.DepartureDate.IsZero() {
		missing = append(missing, "departure_date")
	}

	return fmt.Sprintf("I have some details: %s. I still need: %s.",
		strings.Join(known, ", "), strings.Join(missing, ", "))
}
