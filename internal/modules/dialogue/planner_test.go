package dialogue

import (
	"testing"
	"time"

	"skyquote/internal/types"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextQuestion(t *testing.T) {
	tests := []struct {
		name string
		trip types.TripRequest
		want string
	}{
		{
			"empty",
			types.TripRequest{},
			"I have some details: passengers: 1. I still need: origin, destination, departure_date. Where are you flying from, and where to?",
		},
		{
			"origin only",
			types.TripRequest{Origin: "BOS"},
			"I have some details: origin: BOS, passengers: 1. I still need: destination, departure_date. Where are you flying to?",
		},
		{
			"destination only",
			types.TripRequest{Destination: "LAX"},
			"I have some details: destination: LAX, passengers: 1. I still need: origin, departure_date. Where are you flying from?",
		},
		{
			"route without date",
			types.TripRequest{Origin: "BOS", Destination: "LAX", Passengers: 4},
			"I have some details: origin: BOS, destination: LAX, passengers: 4. I still need: departure_date. When would you like to depart from BOS to LAX?",
		},
		{
			"complete",
			types.TripRequest{Origin: "BOS", Destination: "LAX", DepartureDate: date(2026, 9, 4), Passengers: 1},
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextQuestion(tt.trip); got != tt.want {
				t.Errorf("NextQuestion() =\n  %q\nwant\n  %q", got, tt.want)
			}
		})
	}
}

func TestNextQuestionDeterministic(t *testing.T) {
	trip := types.TripRequest{Origin: "BOS"}
	if NextQuestion(trip) != NextQuestion(trip) {
		t.Error("same state produced different questions")
	}
}

func TestNextQuestionSummarizesReturnDate(t *testing.T) {
	trip := types.TripRequest{Origin: "BOS", ReturnDate: date(2026, 9, 7)}
	want := "I have some details: origin: BOS, return_date: 2026-09-07, passengers: 1. I still need: destination, departure_date. Where are you flying to?"
	if got := NextQuestion(trip); got != want {
		t.Errorf("NextQuestion() =\n  %q\nwant\n  %q", got, want)
	}
}
