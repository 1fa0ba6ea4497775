package handlers

import "testing"

func TestCamelToSnake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Origin", "origin"},
		{"DepartureDate", "departure_date"},
		{"ReturnDate", "return_date"},
		{"Passengers", "passengers"},
		{"SessionID", "session_id"},
		{"Message", "message"},
		{"HTTPAddr", "http_addr"},
		{"ID", "id"},
	}
	for _, tt := range tests {
		if got := camelToSnake(tt.in); got != tt.want {
			t.Errorf("camelToSnake(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
