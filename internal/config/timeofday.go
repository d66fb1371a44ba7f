package config

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time serialized as "HH:MM:SS" (seconds
// optional on input) in TOML.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// Duration returns the offset from midnight.
func (t TimeOfDay) Duration() time.Duration {
	return time.Duration(t.Hour)*time.Hour +
		time.Duration(t.Minute)*time.Minute +
		time.Duration(t.Second)*time.Second
}

// At anchors the time of day on the date of ref, in UTC.
func (t TimeOfDay) At(ref time.Time) time.Time {
	ref = ref.UTC()
	return time.Date(ref.Year(), ref.Month(), ref.Day(), t.Hour, t.Minute, t.Second, 0, time.UTC)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// MarshalText implements encoding.TextMarshaler.
func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TimeOfDay) UnmarshalText(text []byte) error {
	s := string(text)
	parsed, err := time.Parse("15:04:05", s)
	if err != nil {
		parsed, err = time.Parse("15:04", s)
	}
	if err != nil {
		return fmt.Errorf("invalid time of day %q: want HH:MM[:SS]", s)
	}
	t.Hour, t.Minute, t.Second = parsed.Hour(), parsed.Minute(), parsed.Second()
	return nil
}
