package daemon

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sunwatch/sunwatch/common"
)

// notifySignals translates an OS interrupt or terminate signal into a
// Stop action on the shared channel.
func (d *Daemon) notifySignals() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ch
		signal.Stop(ch)
		d.actions <- common.Action{Kind: common.ActionStop}
	}()
}
