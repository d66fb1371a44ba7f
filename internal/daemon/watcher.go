package daemon

import (
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/sunwatch/sunwatch/common"
)

// startWatch begins watching the configuration file and translates
// modification events into ReloadConfig actions. No debouncing: a rapid
// double-fire racing a half-written file is absorbed by the reload
// retry policy.
func (d *Daemon) startWatch() error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config watch create failed: %w", err)
	}
	if err := w.Add(d.configPath); err != nil {
		_ = w.Close()
		return fmt.Errorf("config watch failed (%s): %w", d.configPath, err)
	}
	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					d.actions <- common.Action{Kind: common.ActionReloadConfig}
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				d.log.Warning("config watch error: %s", err.Error())
			}
		}
	}()
	d.watcher = w
	d.log.Info("hot reload watch started on %s", d.configPath)
	return nil
}

func (d *Daemon) stopWatch() {
	if d.watcher == nil {
		return
	}
	_ = d.watcher.Close()
	d.watcher = nil
	d.log.Info("hot reload watch stopped")
}

// reconcileWatcher keeps the watch handle in lockstep with hot_reload:
// present iff true.
func (d *Daemon) reconcileWatcher() error {
	if !d.cfg.HotReload {
		d.stopWatch()
		return nil
	}
	if d.watcher == nil {
		return d.startWatch()
	}
	return nil
}
