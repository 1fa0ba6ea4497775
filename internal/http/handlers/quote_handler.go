// README: Structured quote endpoint handler.
package handlers

import (
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"skyquote/internal/modules/catalog"
	"skyquote/internal/modules/pricing"
	"skyquote/internal/types"
)

const dateLayout = "2006-01-02"

type QuoteHandler struct {
	cat    *catalog.Catalog
	engine *pricing.Engine
}

func NewQuoteHandler(cat *catalog.Catalog, engine *pricing.Engine) *QuoteHandler {
	return &QuoteHandler{cat: cat, engine: engine}
}

type quoteReq struct {
	Origin        string `json:"origin" binding:"required"`
	Destination   string `json:"destination" binding:"required"`
	DepartureDate string `json:"departure_date" binding:"required"`
	ReturnDate    string `json:"return_date"`
	Passengers    int    `json:"passengers" binding:"required,min=1"`
}

type itineraryView struct {
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	DepartureDate string  `json:"departure_date"`
	ReturnDate    string  `json:"return_date,omitempty"`
	Passengers    int     `json:"passengers"`
	DistanceNM    float64 `json:"distance_nm"`
}

type breakdownView struct {
	BillableNM         float64     `json:"billable_nm"`
	BaseNMRate         float64     `json:"base_nm_rate"`
	BaseCost           types.Money `json:"base_cost"`
	LandingFee         types.Money `json:"landing_fee"`
	SegmentFee         types.Money `json:"segment_fee"`
	LeadTimeMultiplier float64     `json:"lead_time_multiplier"`
	WeekendMultiplier  float64     `json:"weekend_multiplier"`
	Taxes              types.Money `json:"taxes"`
}

type quoteView struct {
	AircraftType    string        `json:"aircraft_type"`
	Capacity        int           `json:"capacity"`
	CruiseSpeedKt   float64       `json:"cruise_speed_kt"`
	Amenities       string        `json:"amenities"`
	FlightTimeHours float64       `json:"flight_time_hours"`
	RoundTrip       bool          `json:"round_trip"`
	Pricing         breakdownView `json:"pricing"`
	Total           types.Money   `json:"total"`
}

type quoteResp struct {
	Itinerary   itineraryView `json:"itinerary"`
	Options     []quoteView   `json:"aircraft_options"`
	Recommended quoteView     `json:"recommended"`
	Currency    string        `json:"currency"`
}

// Quote handles POST /api/quote. Validation failures surface as explicit,
// field-tagged errors (the form path, unlike chat, reports them directly).
func (h *QuoteHandler) Quote(c *gin.Context) {
	var req quoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeFieldErrors(c, http.StatusBadRequest, bindingFieldErrors(err))
		return
	}

	fields := map[string]string{}

	origin, ok := h.cat.FindAirport(req.Origin)
	if !ok {
		fields["origin"] = "unknown airport or city: " + req.Origin
	}
	dest, ok := h.cat.FindAirport(req.Destination)
	if !ok {
		fields["destination"] = "unknown airport or city: " + req.Destination
	}

	departure, err := time.Parse(dateLayout, req.DepartureDate)
	if err != nil {
		fields["departure_date"] = "must be YYYY-MM-DD"
	}
	var returnDate time.Time
	if req.ReturnDate != "" {
		returnDate, err = time.Parse(dateLayout, req.ReturnDate)
		if err != nil {
			fields["return_date"] = "must be YYYY-MM-DD"
		} else if !departure.IsZero() && returnDate.Before(departure) {
			fields["return_date"] = "must not be before departure_date"
		}
	}
	if len(fields) > 0 {
		writeFieldErrors(c, http.StatusUnprocessableEntity, fields)
		return
	}

	trip := types.TripRequest{
		Origin:        origin.Code,
		Destination:   dest.Code,
		DepartureDate: departure,
		ReturnDate:    returnDate,
		Passengers:    req.Passengers,
	}

	quotes, err := h.engine.Price(trip)
	if err != nil {
		writePricingError(c, err)
		return
	}

	options := make([]quoteView, 0, len(quotes))
	for _, q := range quotes {
		options = append(options, newQuoteView(q))
	}
	writeJSON(c, http.StatusOK, quoteResp{
		Itinerary: itineraryView{
			Origin:        trip.Origin,
			Destination:   trip.Destination,
			DepartureDate: trip.DepartureDate.Format(dateLayout),
			ReturnDate:    formatOptionalDate(trip.ReturnDate),
			Passengers:    trip.Passengers,
			DistanceNM:    round1(quotes[0].DistanceNM),
		},
		Options:     options,
		Recommended: options[0],
		Currency:    "USD",
	})
}

func newQuoteView(q pricing.Quote) quoteView {
	return quoteView{
		AircraftType:    q.Aircraft.Name,
		Capacity:        q.Aircraft.Capacity,
		CruiseSpeedKt:   q.Aircraft.CruiseSpeedKt,
		Amenities:       q.Aircraft.Amenities,
		FlightTimeHours: round1(q.FlightTimeHours),
		RoundTrip:       q.RoundTrip,
		Pricing: breakdownView{
			BillableNM:         round1(q.Breakdown.BillableNM),
			BaseNMRate:         q.Breakdown.RatePerNM,
			BaseCost:           types.USD(q.Breakdown.BaseCost),
			LandingFee:         types.USD(q.Breakdown.LandingFee),
			SegmentFee:         types.USD(q.Breakdown.SegmentFee),
			LeadTimeMultiplier: q.Breakdown.LeadTimeMultiplier,
			WeekendMultiplier:  q.Breakdown.WeekendMultiplier,
			Taxes:              types.USD(q.Breakdown.Taxes),
		},
		Total: q.TotalMoney(),
	}
}

// writePricingError maps pricing failures to field-tagged validation errors
// on the structured path.
func writePricingError(c *gin.Context, err error) {
	var unknown *pricing.UnknownAirportError
	switch {
	case errors.As(err, &unknown):
		writeFieldErrors(c, http.StatusUnprocessableEntity, map[string]string{
			unknown.Field: "unknown airport: " + unknown.Code,
		})
	case errors.Is(err, pricing.ErrNoEligibleAircraft):
		writeFieldErrors(c, http.StatusUnprocessableEntity, map[string]string{
			"passengers": "no aircraft class can accommodate this passenger count",
		})
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func formatOptionalDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
