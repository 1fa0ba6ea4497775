// README: Response composer: renders questions, quotes, and apologies as text.
package dialogue

import (
	"fmt"
	"strconv"
	"strings"

	"skyquote/internal/modules/pricing"
	"skyquote/internal/types"
)

// composeQuotes renders the top-ranked (smallest eligible, cheapest) option
// with remaining options summarized as alternates.
func composeQuotes(trip types.TripRequest, quotes []pricing.Quote) string {
	top := quotes[0]

	var b strings.Builder
	fmt.Fprintf(&b, "Charter: %d pax on %s from %s to %s, departing %s",
		trip.EffectivePassengers(), top.Aircraft.Name, trip.Origin, trip.Destination,
		trip.DepartureDate.Format(dateLayout))
	if trip.IsRoundTrip() {
		fmt.Fprintf(&b, ", returning %s", trip.ReturnDate.Format(dateLayout))
	}
	fmt.Fprintf(&b, ". Distance: %.0f nm, flight time ~%.1f h. Total: $%s USD.",
		top.DistanceNM, top.FlightTimeHours, formatAmount(top.TotalMoney()))

	if len(quotes) > 1 {
		var alts []string
		for _, q := range quotes[1:] {
			alts = append(alts, fmt.Sprintf("%s $%s", q.Aircraft.Name, formatAmount(q.TotalMoney())))
		}
		fmt.Fprintf(&b, " Alternates: %s.", strings.Join(alts, ", "))
	}
	return b.String()
}

// composeUnknownAirport turns a pricing failure into a clarification re-ask
// naming the unrecognized code. Never a raw error.
func composeUnknownAirport(err *pricing.UnknownAirportError) string {
	return fmt.Sprintf("I don't recognize the airport %q for your %s. Could you give me another airport code or city?",
		err.Code, err.Field)
}

// composeNoAircraft apologizes when no class fits the passenger count.
func composeNoAircraft(passengers int) string {
	return fmt.Sprintf("I'm sorry, none of our aircraft can accommodate %d passengers on a single flight. Could you try a smaller group?",
		passengers)
}

// formatAmount renders a whole-unit amount with thousands separators.
func formatAmount(m types.Money) string {
	s := strconv.FormatInt(m.Amount, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}
