package daemon

import (
	"time"

	"github.com/sunwatch/sunwatch/common"
	"github.com/sunwatch/sunwatch/internal/config"
	"github.com/sunwatch/sunwatch/internal/scheduler"
)

// runTriggers is the scheduling goroutine. It owns the TriggerSource and
// a private EventCache, polls the one-slot config channel without
// blocking, and forwards fired commands as Trigger actions. It never
// touches daemon state directly — all communication runs over the two
// channels.
func (d *Daemon) runTriggers() error {
	var src *scheduler.TriggerSource
	cache := &scheduler.EventCache{}

	for {
		select {
		case <-d.stopPolling:
			return nil
		case cfg := <-d.configCh:
			src = d.rebuildSource(cfg)
			continue
		default:
		}

		delay := scheduler.IdleDelay
		if src != nil {
			cmd, fire, err := src.ShouldTrigger(time.Now().UTC(), cache)
			if err != nil {
				return err
			}
			if fire {
				d.actions <- common.Action{Kind: common.ActionTrigger, Command: cmd}
			}
			delay = src.PollDelay(time.Now().UTC())
		}
		if delay <= 0 {
			continue
		}
		select {
		case <-d.stopPolling:
			return nil
		case cfg := <-d.configCh:
			src = d.rebuildSource(cfg)
		case <-time.After(delay):
		}
	}
}

// rebuildSource constructs the trigger source for a new configuration
// epoch. Construction failure disables scheduling until a valid reload
// arrives; the daemon itself keeps running.
func (d *Daemon) rebuildSource(cfg config.Configuration) *scheduler.TriggerSource {
	src, err := scheduler.FromConfig(&cfg)
	if err != nil {
		d.log.Warning("scheduler construction failed, triggers disabled until a valid reload: %s", err.Error())
		return nil
	}
	return src
}
