package solar

import (
	"errors"
	"fmt"
	"time"

	"github.com/nathan-osman/go-sunrise"
)

// Sentinel errors for coordinate and boundary computation.
var (
	// ErrInvalidCoordinates is returned for out-of-range latitude or
	// longitude, and wrapped when the underlying solar math cannot
	// produce a boundary for a day (polar degenerate cases).
	ErrInvalidCoordinates = errors.New("invalid coordinates")
)

// civilElevation is the solar elevation of the civil dawn/dusk boundary:
// the sun 6 degrees below the horizon.
const civilElevation = -6.0

// Coordinates is a validated geographic position in degrees.
// Immutable once built.
type Coordinates struct {
	latitude  float64
	longitude float64
}

// NewCoordinates validates latitude ∈ [-90,90] and longitude ∈ [-180,180].
func NewCoordinates(latitude, longitude float64) (Coordinates, error) {
	if latitude < -90 || latitude > 90 || longitude < -180 || longitude > 180 {
		return Coordinates{}, fmt.Errorf("%w: lat %v long %v", ErrInvalidCoordinates, latitude, longitude)
	}
	return Coordinates{latitude: latitude, longitude: longitude}, nil
}

func (c Coordinates) Latitude() float64  { return c.latitude }
func (c Coordinates) Longitude() float64 { return c.longitude }

// Interval is the half-open window [Start, End) an instant falls in.
// Event names the interval by the boundary that opened it: an Event of
// Dusk means dusk already happened and it is currently dark.
type Interval struct {
	Start time.Time
	End   time.Time
	Event TriggerKind
}

// dayBoundaries computes the four civil-twilight boundaries of the solar
// day containing t (interpreted in UTC).
func dayBoundaries(c Coordinates, t time.Time) (dawn, rise, set, dusk time.Time, err error) {
	year, month, day := t.UTC().Date()
	rise, set = sunrise.SunriseSunset(c.latitude, c.longitude, year, month, day)
	dawn, dusk = sunrise.TimeOfElevation(c.latitude, c.longitude, civilElevation, year, month, day)
	if dawn.IsZero() || rise.IsZero() || set.IsZero() || dusk.IsZero() {
		err = fmt.Errorf("%w: no civil twilight boundary on %04d-%02d-%02d at lat %v long %v",
			ErrInvalidCoordinates, year, month, day, c.latitude, c.longitude)
	}
	return
}

// IntervalAt classifies now into exactly one of five half-open windows,
// first match wins:
//
//  1. (yesterday's dusk, today's dawn)   → Dusk
//  2. [today's dawn, today's sunrise)    → Dawn
//  3. [today's sunrise, today's sunset)  → Sunrise
//  4. [today's sunset, today's dusk)     → Sunset
//  5. [today's dusk, tomorrow's dawn)    → Dusk (fallback, covers the span
//     across midnight)
func IntervalAt(c Coordinates, now time.Time) (Interval, error) {
	now = now.UTC()

	todayDawn, todaySunrise, todaySunset, todayDusk, err := dayBoundaries(c, now)
	if err != nil {
		return Interval{}, err
	}
	_, _, _, yesterdayDusk, err := dayBoundaries(c, now.AddDate(0, 0, -1))
	if err != nil {
		return Interval{}, err
	}
	tomorrowDawn, _, _, _, err := dayBoundaries(c, now.AddDate(0, 0, 1))
	if err != nil {
		return Interval{}, err
	}

	if yesterdayDusk.Before(now) && now.Before(todayDawn) {
		return Interval{Start: yesterdayDusk, End: todayDawn, Event: Dusk}, nil
	}
	if !now.Before(todayDawn) && now.Before(todaySunrise) {
		return Interval{Start: todayDawn, End: todaySunrise, Event: Dawn}, nil
	}
	if !now.Before(todaySunrise) && now.Before(todaySunset) {
		return Interval{Start: todaySunrise, End: todaySunset, Event: Sunrise}, nil
	}
	if !now.Before(todaySunset) && now.Before(todayDusk) {
		return Interval{Start: todaySunset, End: todayDusk, Event: Sunset}, nil
	}
	return Interval{Start: todayDusk, End: tomorrowDawn, Event: Dusk}, nil
}
