package pricing

import (
	"math"
	"testing"
)

// Seed catalog coordinates.
const (
	bosLat, bosLng = 42.3656, -71.0096
	laxLat, laxLng = 33.9416, -118.4085
	jfkLat, jfkLng = 40.6413, -73.7781
)

func TestHaversineKnownDistances(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lng1, lat2, lng2 float64
		want                   float64 // nm
		tolerance              float64
	}{
		{"BOS to LAX", bosLat, bosLng, laxLat, laxLng, 2265, 25},
		{"JFK to LAX", jfkLat, jfkLng, laxLat, laxLng, 2145, 25},
		{"BOS to JFK", bosLat, bosLng, jfkLat, jfkLng, 161, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := haversineNM(tt.lat1, tt.lng1, tt.lat2, tt.lng2)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("haversineNM = %.1f nm, want %.0f ± %.0f", got, tt.want, tt.tolerance)
			}
		})
	}
}

func TestHaversineSymmetry(t *testing.T) {
	ab := haversineNM(bosLat, bosLng, laxLat, laxLng)
	ba := haversineNM(laxLat, laxLng, bosLat, bosLng)
	if math.Abs(ab-ba) > 1e-9 {
		t.Errorf("distance not symmetric: %.9f vs %.9f", ab, ba)
	}
}

func TestHaversineSamePoint(t *testing.T) {
	if got := haversineNM(bosLat, bosLng, bosLat, bosLng); got != 0 {
		t.Errorf("distance from a point to itself = %f, want 0", got)
	}
}

func TestSortBy(t *testing.T) {
	items := []int{5, 1, 4, 1, 3}
	sortBy(items, func(a, b int) bool { return a < b })
	want := []int{1, 1, 3, 4, 5}
	for i := range want {
		if items[i] != want[i] {
			t.Fatalf("sorted = %v, want %v", items, want)
		}
	}
}
