package services

import (
	"math"
	"regexp"
	"strconv"
	"time"

	"taprobane/constants"
)

// Catalog rates are free text ("$120-180", "USD 15"). The estimate takes the
// first integer in the string and ignores the rest of a range.
var rateRe = regexp.MustCompile(`\$?(\d+)`)

// Fallback rates when a rate string has no digits at all.
const (
	defaultNightlyTotal = 100.0
	defaultHourlyRate   = 15.0
	defaultDailyRate    = 100.0
	nightlyMarkupFactor = 1.5
)

// FirstInt extracts the first integer token from a rate string.
func FirstInt(s string) (int, bool) {
	m := rateRe.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Nights counts billable nights between check-in and check-out, rounding
// partial nights up.
func Nights(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}

// AccommodationTotal estimates the charge for a stay. The parsed base rate is
// multiplied by the markup factor; when the rate string has no digits the
// fallback nightly total is used as-is.
func AccommodationTotal(pricePerNight string, checkIn, checkOut time.Time, guests int) float64 {
	nights := Nights(checkIn, checkOut)

	rate := defaultNightlyTotal
	if base, ok := FirstInt(pricePerNight); ok {
		rate = float64(base) * nightlyMarkupFactor
	}

	if guests < 1 {
		guests = 1
	}

	return float64(nights) * rate * float64(guests)
}

// GuideBookingEnd resolves the end of a guide booking, defaulting to
// start + 24h when no end was supplied.
func GuideBookingEnd(start time.Time, end *time.Time) time.Time {
	if end != nil {
		return *end
	}
	return start.Add(24 * time.Hour)
}

// GuideTotal estimates the charge for a guide booking. Hourly bookings bill
// ceil(hours) at the guide's hourly rate, everything else bills ceil(days)
// at the daily rate.
func GuideTotal(duration, hourlyRate, dailyRate string, start, end time.Time) float64 {
	if duration == constants.DurationHourly {
		rate := defaultHourlyRate
		if n, ok := FirstInt(hourlyRate); ok {
			rate = float64(n)
		}
		hours := math.Ceil(end.Sub(start).Hours())
		return hours * rate
	}

	rate := defaultDailyRate
	if n, ok := FirstInt(dailyRate); ok {
		rate = float64(n)
	}
	days := math.Ceil(end.Sub(start).Hours() / 24)
	return days * rate
}
