package scheduler

import "time"

// EventCache records the last trigger instant that was fired, so a
// boundary fires at most once across imprecise polling. It is owned
// exclusively by the scheduling goroutine; no locking.
type EventCache struct {
	lastFired time.Time
}

// Fired reports whether at matches the recorded instant, compared at
// second granularity.
func (c *EventCache) Fired(at time.Time) bool {
	if c.lastFired.IsZero() {
		return false
	}
	return c.lastFired.Truncate(time.Second).Equal(at.Truncate(time.Second))
}

// Record stores at as the last fired instant. Called only after a
// successful fire decision.
func (c *EventCache) Record(at time.Time) {
	c.lastFired = at
}

// LastFired returns the recorded instant, if any.
func (c *EventCache) LastFired() (time.Time, bool) {
	return c.lastFired, !c.lastFired.IsZero()
}
