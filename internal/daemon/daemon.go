// Package daemon runs the sunwatch control loop. Every input source —
// control socket, scheduling goroutine, config watcher, signal handler —
// only ever produces Actions onto one shared channel; the control loop
// drains it sequentially and is the sole writer of daemon state. That
// single-writer design is the concurrency-safety argument: no locks
// guard the configuration because only one goroutine ever mutates it.
package daemon

import (
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"

	"github.com/sunwatch/sunwatch/common"
	"github.com/sunwatch/sunwatch/internal/config"
	"github.com/sunwatch/sunwatch/internal/server"
	"github.com/sunwatch/sunwatch/pkg/logger"
)

const (
	actionBuffer     = 16
	reloadRetryDelay = 2 * time.Second
)

// SpawnFunc starts a detached shell subprocess for a trigger command.
type SpawnFunc func(command string) error

// Daemon owns the mutable configuration, the scheduling goroutine's
// config slot and the hot-reload watch handle. The watch handle is
// non-nil iff hot_reload is true; reconciled on every config change.
type Daemon struct {
	log        logger.Logger
	fs         afero.Fs
	cfg        config.Configuration
	configPath string

	actions     chan common.Action
	configCh    chan config.Configuration
	stopPolling chan struct{}
	watcher     *fsnotify.Watcher
	srv         *server.Server

	spawn SpawnFunc
	fatal func(error)
}

// New creates a daemon around an initial configuration snapshot.
// Nothing runs until Start.
func New(log logger.Logger, cfg config.Configuration, configPath string) *Daemon {
	return &Daemon{
		log:         log,
		fs:          afero.NewOsFs(),
		cfg:         cfg,
		configPath:  configPath,
		actions:     make(chan common.Action, actionBuffer),
		configCh:    make(chan config.Configuration, 1),
		stopPolling: make(chan struct{}),
		spawn:       spawnShell,
		fatal:       func(error) { os.Exit(1) },
	}
}

// Start wires the input sources: control socket listener, signal
// handler, scheduling goroutine, the initial config snapshot and, when
// configured, the hot-reload watch.
func (d *Daemon) Start() error {
	d.srv = server.New(d.log, d.actions)
	if err := d.srv.Listen(); err != nil {
		return fmt.Errorf("failed to start daemon: %w", err)
	}
	go func() {
		if err := d.srv.Serve(); err != nil {
			d.log.Error("control listener failed: %s", err.Error())
		}
	}()

	d.notifySignals()

	go func() {
		if err := d.runTriggers(); err != nil {
			// An unexpected scheduling failure is fatal to the daemon; a
			// merely invalid scheduler configuration never reaches here.
			d.log.Error("scheduling loop failed: %s", err.Error())
			d.fatal(err)
		}
	}()

	d.pushConfig()
	if d.cfg.HotReload {
		if err := d.startWatch(); err != nil {
			return err
		}
	}
	d.log.Info("daemon started (enabled=%t, hot_reload=%t)", d.cfg.Enabled, d.cfg.HotReload)
	return nil
}

// Run drains the action channel until Stop arrives, then releases
// resources. Stop terminates the loop here, before dispatch: the
// transition table treats it as unreachable.
func (d *Daemon) Run() error {
	for act := range d.actions {
		if act.Kind == common.ActionStop {
			d.log.Info("stop received, shutting down")
			break
		}
		if err := d.handle(act); err != nil {
			d.log.Error("failed to handle %s: %s", act.Kind, err.Error())
		}
	}
	return d.shutdown()
}

// handle applies one action to daemon state.
func (d *Daemon) handle(act common.Action) error {
	d.log.Info("handling action: %s", act.Kind)
	switch act.Kind {
	case common.ActionStop:
		// Only the signal handler or an external command may produce
		// Stop, and Run consumes it before dispatch.
		panic("stop action reached the dispatch table")
	case common.ActionEnable:
		d.cfg.Enabled = true
	case common.ActionDisable:
		d.cfg.Enabled = false
	case common.ActionToggle:
		d.cfg.Enabled = !d.cfg.Enabled
	case common.ActionReloadConfig:
		return d.reload()
	case common.ActionTrigger:
		if !d.cfg.Enabled {
			return nil
		}
		if err := d.spawn(act.Command); err != nil {
			// Reported, not fatal.
			d.log.Error("failed to spawn trigger command: %s", err.Error())
		}
	case common.ActionNothing:
	default:
		return fmt.Errorf("unknown action kind %q", act.Kind)
	}
	return nil
}

// reload re-reads the configuration file and replaces the snapshot
// wholesale. An unreadable file is retried by re-enqueuing ReloadConfig
// after a short delay; the old configuration stays active meanwhile.
func (d *Daemon) reload() error {
	cfg, err := config.Load(d.fs, d.configPath)
	if err != nil {
		d.log.Warning("config reload failed, retrying in %s: %s", reloadRetryDelay, err.Error())
		time.AfterFunc(reloadRetryDelay, func() {
			d.actions <- common.Action{Kind: common.ActionReloadConfig}
		})
		return nil
	}
	d.cfg = cfg
	if err := d.reconcileWatcher(); err != nil {
		d.log.Warning("watch reconcile failed: %s", err.Error())
	}
	d.pushConfig()
	d.log.Info("configuration reloaded (enabled=%t, hot_reload=%t)", d.cfg.Enabled, d.cfg.HotReload)
	return nil
}

// pushConfig places the current snapshot into the one-slot channel for
// the scheduling goroutine, replacing any snapshot it has not yet
// collected.
func (d *Daemon) pushConfig() {
	select {
	case <-d.configCh:
	default:
	}
	d.configCh <- d.cfg
}

func (d *Daemon) shutdown() error {
	close(d.stopPolling)
	d.stopWatch()
	if d.srv != nil {
		_ = d.srv.Shutdown()
	}
	d.log.Info("daemon stopped")
	return nil
}
