package scheduler

import (
	"errors"
	"time"

	"github.com/sunwatch/sunwatch/internal/config"
	"github.com/sunwatch/sunwatch/internal/solar"
)

var (
	// ErrInvalidConfiguration is returned when a configuration carries
	// neither a manual nor an automatic scheduling section. It is fatal
	// to scheduler construction only, never to the daemon.
	ErrInvalidConfiguration = errors.New("invalid configuration: neither manual nor automatic scheduling present")
)

// Timing constants of the polling policy.
const (
	// FireTolerance is the band around a target instant within which the
	// event counts as "now".
	FireTolerance = 10 * time.Second

	// farWindow is the distance beyond which short naps suffice.
	farWindow = 30 * time.Second

	// nearDelay is the nap taken while the target is still far away.
	nearDelay = 10 * time.Second

	// IdleDelay bounds CPU usage when no target is close or none exists.
	IdleDelay = 25 * time.Second
)

// EventInfo describes the next scheduled trigger: when it fires, which
// boundary it is, and the resolved shell command (empty when no action
// is configured for that kind).
type EventInfo struct {
	At      time.Time
	Trigger solar.TriggerKind
	Command string
}

// Source yields the next scheduled event after an instant. A nil event
// with a nil error means nothing is scheduled (e.g. an empty manual
// list). Errors are propagated solar-math failures.
type Source interface {
	NextEventAt(now time.Time) (*EventInfo, error)
}

// TriggerSource wraps whichever Source the active configuration selects
// and owns the fire decision. Its lifetime is bounded by one
// configuration epoch.
type TriggerSource struct {
	source Source
}

// FromConfig builds the trigger source for a configuration snapshot.
// Automatic wins when both sections are present, matching load order in
// the original configuration schema.
func FromConfig(cfg *config.Configuration) (*TriggerSource, error) {
	switch {
	case cfg.Automatic != nil:
		coords, err := solar.NewCoordinates(cfg.Automatic.Latitude, cfg.Automatic.Longitude)
		if err != nil {
			return nil, err
		}
		return &TriggerSource{source: NewAutomatic(coords, cfg.Actions)}, nil
	case cfg.Manual != nil:
		return &TriggerSource{source: NewManual(cfg.Manual.TimeStamps, cfg.Actions)}, nil
	default:
		return nil, ErrInvalidConfiguration
	}
}

// NextEventAt forwards to the wrapped source.
func (t *TriggerSource) NextEventAt(now time.Time) (*EventInfo, error) {
	return t.source.NextEventAt(now)
}

// ShouldTrigger reports whether the pending event should fire at now.
// It fires at most once per boundary: the target instant is recorded in
// cache before the action lookup, so a boundary with no configured
// action still arms the dedupe and stays a silent no-op.
func (t *TriggerSource) ShouldTrigger(now time.Time, cache *EventCache) (string, bool, error) {
	ev, err := t.source.NextEventAt(now)
	if err != nil || ev == nil {
		return "", false, err
	}
	if absDelta(ev.At, now) > FireTolerance {
		return "", false, nil
	}
	if cache.Fired(ev.At) {
		return "", false, nil
	}
	cache.Record(ev.At)
	if ev.Command == "" {
		return "", false, nil
	}
	return ev.Command, true, nil
}

// PollDelay returns how long the polling loop may sleep before the next
// ShouldTrigger call: short naps while the target is far, no sleep once
// it is inside the tolerance window, an idle nap otherwise.
func (t *TriggerSource) PollDelay(now time.Time) time.Duration {
	ev, err := t.source.NextEventAt(now)
	if err != nil || ev == nil {
		return IdleDelay
	}
	switch until := absDelta(ev.At, now); {
	case until > farWindow:
		return nearDelay
	case until <= FireTolerance:
		return 0
	default:
		return IdleDelay
	}
}

func absDelta(a, b time.Time) time.Duration {
	d := a.Sub(b)
	if d < 0 {
		return -d
	}
	return d
}
