package services

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func TestFirstInt(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"$120-180", 120, true},
		{"USD 15", 15, true},
		{"100", 100, true},
		{"LKR 500 / Free for children", 500, true},
		{"Free", 0, false},
		{"", 0, false},
		{"Contact us", 0, false},
	}

	for _, tc := range cases {
		got, ok := FirstInt(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("FirstInt(%q) = %d,%v; want %d,%v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestAccommodationTotal(t *testing.T) {
	checkIn := date(2024, time.January, 1, 0, 0)
	checkOut := date(2024, time.January, 3, 0, 0)

	// 2 nights x (120 * 1.5) x 2 guests
	if got := AccommodationTotal("$120-180", checkIn, checkOut, 2); got != 720 {
		t.Errorf("expected 720, got %v", got)
	}

	// guests below 1 bill as 1
	if got := AccommodationTotal("$120-180", checkIn, checkOut, 0); got != 360 {
		t.Errorf("expected 360 for zero guests, got %v", got)
	}

	// no digits: flat fallback, no markup
	if got := AccommodationTotal("Contact us", checkIn, checkOut, 1); got != 200 {
		t.Errorf("expected 200 with fallback rate, got %v", got)
	}
}

func TestAccommodationTotalPartialNightRoundsUp(t *testing.T) {
	checkIn := date(2024, time.June, 1, 14, 0)
	checkOut := date(2024, time.June, 1, 14, 1)

	// a one-minute stay bills as a full night
	if got := AccommodationTotal("$80", checkIn, checkOut, 1); got != 120 {
		t.Errorf("expected 120 for one-minute stay, got %v", got)
	}
}

func TestGuideTotalHourly(t *testing.T) {
	start := date(2024, time.March, 10, 10, 0)
	end := date(2024, time.March, 10, 12, 30)

	// ceil(2.5h) = 3 hours x 15
	if got := GuideTotal("hourly", "USD 15", "USD 100", start, end); got != 45 {
		t.Errorf("expected 45, got %v", got)
	}

	// unparsable hourly rate falls back to 15
	if got := GuideTotal("hourly", "negotiable", "USD 100", start, end); got != 45 {
		t.Errorf("expected 45 with fallback rate, got %v", got)
	}
}

func TestGuideTotalDaily(t *testing.T) {
	start := date(2024, time.March, 10, 9, 0)

	// no end date: end = start + 24h exactly, one billable day
	end := GuideBookingEnd(start, nil)
	if want := start.Add(24 * time.Hour); !end.Equal(want) {
		t.Fatalf("expected default end %v, got %v", want, end)
	}
	if got := GuideTotal("daily", "", "$100", start, end); got != 100 {
		t.Errorf("expected 100, got %v", got)
	}

	// 1 day + 1 hour bills as 2 days
	longEnd := start.Add(25 * time.Hour)
	if got := GuideTotal("daily", "", "$100", start, longEnd); got != 200 {
		t.Errorf("expected 200, got %v", got)
	}

	// unknown duration falls through to daily
	if got := GuideTotal("", "USD 15", "USD 80", start, end); got != 80 {
		t.Errorf("expected 80, got %v", got)
	}
}

func TestGuideBookingEndExplicit(t *testing.T) {
	start := date(2024, time.March, 10, 9, 0)
	explicit := start.Add(6 * time.Hour)

	if got := GuideBookingEnd(start, &explicit); !got.Equal(explicit) {
		t.Errorf("expected explicit end to win, got %v", got)
	}
}
