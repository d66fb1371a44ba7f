package scheduler

import (
	"time"

	"github.com/sunwatch/sunwatch/internal/config"
)

// Manual fires triggers at fixed daily times.
type Manual struct {
	stamps  []config.ManualTimeStamp
	actions config.Actions
}

// NewManual wraps a timestamp list and the action map. An empty list is
// a valid source that never schedules anything.
func NewManual(stamps []config.ManualTimeStamp, actions config.Actions) *Manual {
	return &Manual{stamps: stamps, actions: actions}
}

// NextEventAt selects the entry whose time of day is numerically closest
// to now's, by absolute non-cyclic difference, anchored on today's date.
//
// TODO: near midnight the non-cyclic difference makes 23:59 and 00:01
// look ~24h apart instead of ~2 minutes; needs product clarification
// whether cyclic distance was intended before changing the selection.
func (m *Manual) NextEventAt(now time.Time) (*EventInfo, error) {
	if len(m.stamps) == 0 {
		return nil, nil
	}
	nowOffset := offsetFromMidnight(now.UTC())
	best := m.stamps[0]
	bestDelta := absDuration(best.TriggerTime.Duration() - nowOffset)
	for _, stamp := range m.stamps[1:] {
		delta := absDuration(stamp.TriggerTime.Duration() - nowOffset)
		if delta < bestDelta {
			best, bestDelta = stamp, delta
		}
	}
	return &EventInfo{
		At:      best.TriggerTime.At(now),
		Trigger: best.Action,
		Command: m.actions.Get(best.Action),
	}, nil
}

func offsetFromMidnight(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
