package scheduler

import (
	"time"

	"github.com/sunwatch/sunwatch/internal/config"
	"github.com/sunwatch/sunwatch/internal/solar"
)

// Automatic derives triggers from the civil-twilight cycle at a
// location. The next event is the boundary that ends the current
// interval, labeled with that interval's cyclic successor.
type Automatic struct {
	coords  solar.Coordinates
	actions config.Actions
}

// NewAutomatic wraps validated coordinates and the action map.
func NewAutomatic(coords solar.Coordinates, actions config.Actions) *Automatic {
	return &Automatic{coords: coords, actions: actions}
}

// NextEventAt returns the next interval boundary after now. Solar-math
// failures (degenerate polar days) propagate.
func (a *Automatic) NextEventAt(now time.Time) (*EventInfo, error) {
	interval, err := solar.IntervalAt(a.coords, now)
	if err != nil {
		return nil, err
	}
	kind := interval.Event.Next()
	return &EventInfo{
		At:      interval.End,
		Trigger: kind,
		Command: a.actions.Get(kind),
	}, nil
}
